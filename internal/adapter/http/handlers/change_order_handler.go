package handlers

import (
	"context"
	"errors"
	"net/http"

	request "gcpanel_ledger/internal/adapter/http/dto/request"
	response "gcpanel_ledger/internal/adapter/http/dto/response"
	"gcpanel_ledger/internal/domain/entities"
	"gcpanel_ledger/internal/usecase"
	"gcpanel_ledger/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)

// ChangeOrderHandler handles HTTP requests for the change-order ledger.
type ChangeOrderHandler struct {
	usecase usecase.IChangeOrderUseCase
}

func NewChangeOrderHandler(uc usecase.IChangeOrderUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

func (h *ChangeOrderHandler) Create(c *gin.Context) {
	var payload request.CreateChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	co, err := h.usecase.Create(c.Request.Context(), payload.ProjectID, payload.LineID,
		payload.Delta, payload.Justification, payload.SubmittedBy)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeOrder(co))
}

func (h *ChangeOrderHandler) Get(c *gin.Context) {
	co, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

func (h *ChangeOrderHandler) ListByLine(c *gin.Context) {
	orders, err := h.usecase.ListByLine(c.Request.Context(), c.Param("project_id"), c.Param("line_id"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ChangeOrderResponse, 0, len(orders))
	for _, co := range orders {
		out = append(out, response.FromChangeOrder(co))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ChangeOrderHandler) Submit(c *gin.Context) {
	h.patchStatus(c, h.usecase.Submit)
}

func (h *ChangeOrderHandler) Approve(c *gin.Context) {
	h.patchStatus(c, h.usecase.Approve)
}

func (h *ChangeOrderHandler) Reject(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reject)
}

func (h *ChangeOrderHandler) patchStatus(
	c *gin.Context,
	transition func(ctx context.Context, id, actorID string) (entities.ChangeOrder, error),
) {
	var payload request.ChangeOrderActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	co, err := transition(c.Request.Context(), c.Param("id"), payload.ActorID)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

func mapChangeOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidLineID),
		errors.Is(err, usecase.ErrInvalidChangeOrderID), errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrZeroDelta):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Change order delta must not be zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Schedule of values line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "This change order cannot make that transition from its current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
