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

var errInvalidSOVLinePayload = pkg.NewDomainErrorSimple("INVALID_SOV_LINE_INPUT", "Invalid schedule of values payload", http.StatusBadRequest)

// SOVLineHandler handles HTTP requests for the schedule-of-values store.
type SOVLineHandler struct {
	usecase usecase.ISOVUseCase
}

func NewSOVLineHandler(uc usecase.ISOVUseCase) *SOVLineHandler {
	return &SOVLineHandler{usecase: uc}
}

func (h *SOVLineHandler) CreateLine(c *gin.Context) {
	var payload request.CreateSOVLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSOVLinePayload.HTTPStatus, errInvalidSOVLinePayload.ToHTTPError())
		return
	}

	line, err := h.usecase.CreateLine(c.Request.Context(), c.Param("project_id"),
		payload.ResolveDescription(), payload.ResolveCategory(), payload.OriginalAmount)
	if err != nil {
		appErr := mapSOVError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSOVLine(line))
}

func (h *SOVLineHandler) ListLines(c *gin.Context) {
	lines, err := h.usecase.ListLines(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapSOVError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.SOVLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, response.FromSOVLine(line))
	}
	c.JSON(http.StatusOK, out)
}

// GetLine returns the line together with its effective budget at as_of
// (query param, RFC3339, defaults to now).
func (h *SOVLineHandler) GetLine(c *gin.Context) {
	projectID := c.Param("project_id")
	lineID := c.Param("line_id")

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	line, err := h.usecase.GetLine(c.Request.Context(), projectID, lineID)
	if err != nil {
		appErr := mapSOVError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	budget, err := h.usecase.EffectiveBudget(c.Request.Context(), projectID, lineID, asOf)
	if err != nil {
		appErr := mapSOVError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	c.JSON(http.StatusOK, response.FromSOVLineWithBudget(line, asOf, budget))
}

func (h *SOVLineHandler) DeactivateLine(c *gin.Context) {
	line, err := h.usecase.DeactivateLine(c.Request.Context(), c.Param("project_id"), c.Param("line_id"))
	if err != nil {
		appErr := mapSOVError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSOVLine(line))
}

func mapSOVError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidLineID),
		errors.Is(err, usecase.ErrInvalidLineInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNegativeOriginalAmount):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Original amount must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Schedule of values line not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// parseAsOf reads the optional as_of query param (RFC3339). A zero time means
// "now" downstream. Writes the error response itself when the value is bad.
func parseAsOf(c *gin.Context) (time.Time, bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Time{}, true
	}
	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AS_OF", "as_of must be RFC3339", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return time.Time{}, false
	}
	return asOf.UTC(), true
}
