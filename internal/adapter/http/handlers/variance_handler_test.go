package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gcpanel_ledger/internal/adapter/http/handlers/mocks"
	"gcpanel_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestVarianceHandler_LineVariance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad as_of", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVarianceUseCase(ctrl)
		h := NewVarianceHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/sov-lines/:line_id/variance", h.LineVariance)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/sov-lines/line-1/variance?as_of=last-tuesday", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("line not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVarianceUseCase(ctrl)
		h := NewVarianceHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/sov-lines/:line_id/variance", h.LineVariance)

		uc.EXPECT().LineVariance(gomock.Any(), "proj-1", "line-404", gomock.Any()).
			Return(usecase.LineVariance{}, usecase.ErrLineNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/sov-lines/line-404/variance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVarianceUseCase(ctrl)
		h := NewVarianceHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/sov-lines/:line_id/variance", h.LineVariance)

		asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().LineVariance(gomock.Any(), "proj-1", "line-1", asOf).Return(usecase.LineVariance{
			LineID:           "line-1",
			AsOf:             asOf,
			EffectiveBudget:  decimal.RequireFromString("110000"),
			CumulativeActual: decimal.RequireFromString("120000"),
			Variance:         decimal.RequireFromString("-10000"),
			OverBudget:       true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/sov-lines/line-1/variance?as_of=2024-06-01T00:00:00Z", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["variance"] != "-10000" || body["over_budget"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestVarianceHandler_ProjectRollup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cpi omitted when undefined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVarianceUseCase(ctrl)
		h := NewVarianceHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/variance", h.ProjectRollup)

		uc.EXPECT().ProjectRollup(gomock.Any(), "proj-1", gomock.Any()).Return(usecase.ProjectRollup{
			ProjectID:     "proj-1",
			TotalBudget:   decimal.RequireFromString("150000"),
			TotalActual:   decimal.Zero,
			TotalVariance: decimal.RequireFromString("150000"),
			CPIDefined:    false,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/variance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if _, present := body["cost_performance_index"]; present {
			t.Fatalf("expected CPI to be omitted, got %v", body)
		}
	})

	t.Run("cpi present when defined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVarianceUseCase(ctrl)
		h := NewVarianceHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/variance", h.ProjectRollup)

		uc.EXPECT().ProjectRollup(gomock.Any(), "proj-1", gomock.Any()).Return(usecase.ProjectRollup{
			ProjectID:            "proj-1",
			TotalBudget:          decimal.RequireFromString("150000"),
			TotalActual:          decimal.RequireFromString("75000"),
			TotalVariance:        decimal.RequireFromString("75000"),
			CostPerformanceIndex: decimal.RequireFromString("2"),
			CPIDefined:           true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/variance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["cost_performance_index"] != "2" {
			t.Fatalf("unexpected CPI: %v", body["cost_performance_index"])
		}
	})
}
