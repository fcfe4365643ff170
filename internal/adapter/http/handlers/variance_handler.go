package handlers

import (
	"net/http"

	response "gcpanel_ledger/internal/adapter/http/dto/response"
	"gcpanel_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

// VarianceHandler serves the derived read-only reports consumed by the
// dashboard renderers.
type VarianceHandler struct {
	usecase usecase.IVarianceUseCase
}

func NewVarianceHandler(uc usecase.IVarianceUseCase) *VarianceHandler {
	return &VarianceHandler{usecase: uc}
}

func (h *VarianceHandler) LineVariance(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	v, err := h.usecase.LineVariance(c.Request.Context(), c.Param("project_id"), c.Param("line_id"), asOf)
	if err != nil {
		appErr := mapSOVError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineVariance(v))
}

func (h *VarianceHandler) ProjectRollup(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	rollup, err := h.usecase.ProjectRollup(c.Request.Context(), c.Param("project_id"), asOf)
	if err != nil {
		appErr := mapSOVError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectRollup(rollup))
}
