package handlers

import (
	"errors"
	"net/http"

	request "gcpanel_ledger/internal/adapter/http/dto/request"
	response "gcpanel_ledger/internal/adapter/http/dto/response"
	"gcpanel_ledger/internal/usecase"
	"gcpanel_ledger/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSnapshotPayload = pkg.NewDomainErrorSimple("INVALID_SNAPSHOT_INPUT", "Invalid billing snapshot payload", http.StatusBadRequest)

// BillingSnapshotHandler handles the monthly billing-application surface.
type BillingSnapshotHandler struct {
	usecase usecase.IBillingSnapshotUseCase
}

func NewBillingSnapshotHandler(uc usecase.IBillingSnapshotUseCase) *BillingSnapshotHandler {
	return &BillingSnapshotHandler{usecase: uc}
}

func (h *BillingSnapshotHandler) Create(c *gin.Context) {
	var payload request.CreateSnapshotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSnapshotPayload.HTTPStatus, errInvalidSnapshotPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.CreateSnapshot(c.Request.Context(), c.Param("project_id"), payload.PeriodID, payload.AsOf)
	if err != nil {
		appErr := mapSnapshotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBillingSnapshot(snap))
}

func (h *BillingSnapshotHandler) Get(c *gin.Context) {
	snap, err := h.usecase.GetSnapshot(c.Request.Context(), c.Param("project_id"), c.Param("period_id"))
	if err != nil {
		appErr := mapSnapshotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillingSnapshot(snap))
}

func (h *BillingSnapshotHandler) List(c *gin.Context) {
	snaps, err := h.usecase.ListSnapshots(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapSnapshotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BillingSnapshotResponse, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, response.FromBillingSnapshot(snap))
	}
	c.JSON(http.StatusOK, out)
}

func mapSnapshotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPeriodID):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "period_id must be YYYY-MM", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicatePeriod):
		return pkg.NewDomainErrorSimple("DUPLICATE_PERIOD", "This billing period already has a snapshot", http.StatusConflict)
	case errors.Is(err, usecase.ErrSnapshotOutOfOrder):
		return pkg.NewDomainErrorSimple("OUT_OF_ORDER_SNAPSHOT", "Billing snapshots must be created in period order", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return pkg.NewDomainErrorSimple("CONCURRENCY_CONFLICT", "Another snapshot was being created for this project; please retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_FOUND", "Billing snapshot not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
