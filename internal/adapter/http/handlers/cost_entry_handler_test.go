package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gcpanel_ledger/internal/adapter/http/handlers/mocks"
	"gcpanel_ledger/internal/domain/entities"
	"gcpanel_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCostEntryHandler_Record(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostActualsUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/cost-entries", h.Record)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/cost-entries", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown kind maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostActualsUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/cost-entries", h.Record)

		uc.EXPECT().Record(gomock.Any(), "proj-1", "line-1", gomock.Any(), entities.CostSourceKind("payroll"), "DR-1", gomock.Any()).
			Return(entities.CostActualEntry{}, false, usecase.ErrUnknownSourceKind)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/cost-entries",
			bytes.NewBufferString(`{"project_id":"proj-1","line_id":"line-1","amount":"100","source_kind":"payroll","source_ref":"DR-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("first delivery answers 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostActualsUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/cost-entries", h.Record)

		uc.EXPECT().Record(gomock.Any(), "proj-1", "line-1", gomock.Any(), entities.CostSourceLabor, "DR-2024-05-01", gomock.Any()).DoAndReturn(
			func(_ context.Context, projectID, lineID string, amount decimal.Decimal, kind entities.CostSourceKind, sourceRef string, effectiveDate time.Time) (entities.CostActualEntry, bool, error) {
				return entities.CostActualEntry{ID: "entry-1", ProjectID: projectID, LineID: lineID, Amount: amount, SourceKind: kind, SourceRef: sourceRef, EffectiveDate: effectiveDate, CreatedAt: time.Now().UTC()}, false, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/cost-entries",
			bytes.NewBufferString(`{"project_id":"proj-1","line_id":"line-1","amount":"20000","source_kind":"labor","source_ref":"DR-2024-05-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("redelivery answers 200 with already_recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostActualsUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/cost-entries", h.Record)

		stored := entities.CostActualEntry{ID: "entry-1", ProjectID: "proj-1", LineID: "line-1", Amount: decimal.RequireFromString("20000"), SourceKind: entities.CostSourceLabor, SourceRef: "DR-2024-05-01"}
		uc.EXPECT().Record(gomock.Any(), "proj-1", "line-1", gomock.Any(), entities.CostSourceLabor, "DR-2024-05-01", gomock.Any()).
			Return(stored, true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/cost-entries",
			bytes.NewBufferString(`{"project_id":"proj-1","line_id":"line-1","amount":"20000","source_kind":"labor","source_ref":"DR-2024-05-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["already_recorded"] != true {
			t.Fatalf("expected already_recorded flag, got %v", body)
		}
	})
}

func TestCostEntryHandler_Offset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("original missing maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostActualsUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/cost-entries/:id/offset", h.Offset)

		uc.EXPECT().RecordOffset(gomock.Any(), "proj-1", "entry-404", gomock.Any(), gomock.Any()).
			Return(entities.CostActualEntry{}, usecase.ErrEntryNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/cost-entries/entry-404/offset",
			bytes.NewBufferString(`{"project_id":"proj-1","amount":"-20000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostActualsUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.POST("/v1/cost-entries/:id/offset", h.Offset)

		offset := entities.CostActualEntry{ID: "entry-2", ProjectID: "proj-1", LineID: "line-1", Amount: decimal.RequireFromString("-20000"), SourceKind: entities.CostSourceManual, OffsetsEntryID: "entry-1"}
		uc.EXPECT().RecordOffset(gomock.Any(), "proj-1", "entry-1", gomock.Any(), gomock.Any()).Return(offset, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cost-entries/entry-1/offset",
			bytes.NewBufferString(`{"project_id":"proj-1","amount":"-20000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["offsets_entry_id"] != "entry-1" {
			t.Fatalf("expected offsets_entry_id, got %v", body)
		}
	})
}

func TestCostEntryHandler_ListLineActuals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostActualsUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/sov-lines/:line_id/actuals", h.ListLineActuals)

		asOf := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().CumulativeActual(gomock.Any(), "proj-1", "line-1", asOf).Return(decimal.RequireFromString("20000"), nil)
		uc.EXPECT().ListByLine(gomock.Any(), "proj-1", "line-1").Return([]entities.CostActualEntry{{ID: "e1", LineID: "line-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/sov-lines/line-1/actuals?as_of=2024-05-31T00:00:00Z", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["cumulative_actual"] != "20000" {
			t.Fatalf("unexpected cumulative: %v", body["cumulative_actual"])
		}
	})

	t.Run("unknown line maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostActualsUseCase(ctrl)
		h := NewCostEntryHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id/sov-lines/:line_id/actuals", h.ListLineActuals)

		uc.EXPECT().CumulativeActual(gomock.Any(), "proj-1", "line-404", gomock.Any()).
			Return(decimal.Zero, usecase.ErrUnknownLine)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/sov-lines/line-404/actuals", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
