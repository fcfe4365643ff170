package handlers

import (
	"errors"
	"net/http"
	"time"

	request "gcpanel_ledger/internal/adapter/http/dto/request"
	response "gcpanel_ledger/internal/adapter/http/dto/response"
	"gcpanel_ledger/internal/usecase"
	"gcpanel_ledger/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCostEntryPayload = pkg.NewDomainErrorSimple("INVALID_COST_ENTRY_INPUT", "Invalid cost entry payload", http.StatusBadRequest)

// CostEntryHandler handles the inbound cost-impact events and the as-of
// actuals reads.
type CostEntryHandler struct {
	usecase usecase.ICostActualsUseCase
}

func NewCostEntryHandler(uc usecase.ICostActualsUseCase) *CostEntryHandler {
	return &CostEntryHandler{usecase: uc}
}

// Record appends one cost-impact event. A re-delivered event (same
// source_kind + source_ref) answers 200 with already_recorded=true instead
// of 201; duplicates are a no-op success, not an error.
func (h *CostEntryHandler) Record(c *gin.Context) {
	var payload request.RecordCostEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostEntryPayload.HTTPStatus, errInvalidCostEntryPayload.ToHTTPError())
		return
	}

	entry, alreadyRecorded, err := h.usecase.Record(c.Request.Context(), payload.ProjectID, payload.LineID,
		payload.Amount, payload.ResolveSourceKind(), payload.SourceRef, payload.EffectiveDate)
	if err != nil {
		appErr := mapCostEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if alreadyRecorded {
		status = http.StatusOK
	}
	c.JSON(status, response.FromCostEntry(entry, alreadyRecorded))
}

func (h *CostEntryHandler) Offset(c *gin.Context) {
	var payload request.OffsetCostEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostEntryPayload.HTTPStatus, errInvalidCostEntryPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.RecordOffset(c.Request.Context(), payload.ProjectID, c.Param("id"),
		payload.Amount, payload.EffectiveDate)
	if err != nil {
		appErr := mapCostEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCostEntry(entry, false))
}

func (h *CostEntryHandler) ListLineActuals(c *gin.Context) {
	projectID := c.Param("project_id")
	lineID := c.Param("line_id")

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	cumulative, err := h.usecase.CumulativeActual(c.Request.Context(), projectID, lineID, asOf)
	if err != nil {
		appErr := mapCostEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	entries, err := h.usecase.ListByLine(c.Request.Context(), projectID, lineID)
	if err != nil {
		appErr := mapCostEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineActuals(lineID, asOf, cumulative, entries))
}

func mapCostEntryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidLineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownSourceKind):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Unknown cost source kind", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrZeroAmount):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Cost amount must not be zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSourceRef):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "source_ref is required for this source kind", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownLine):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Cost entry references an unknown schedule of values line", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEntryNotFound):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_FOUND", "Cost entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
