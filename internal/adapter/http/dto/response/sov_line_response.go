package response

import (
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/domain/entities"
)

type SOVLineResponse struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
}

func FromSOVLine(line entities.ScheduleOfValuesLine) SOVLineResponse {
	return SOVLineResponse{
		ID:             line.ID,
		ProjectID:      line.ProjectID,
		Description:    line.Description,
		Category:       line.Category,
		OriginalAmount: line.OriginalAmount,
		Active:         line.Active,
		CreatedAt:      line.CreatedAt,
	}
}

// SOVLineDetailResponse is the single-line read, which also carries the
// derived effective budget at the requested as-of time.
type SOVLineDetailResponse struct {
	SOVLineResponse
	AsOf            time.Time       `json:"as_of"`
	EffectiveBudget decimal.Decimal `json:"effective_budget"`
}

func FromSOVLineWithBudget(line entities.ScheduleOfValuesLine, asOf time.Time, effectiveBudget decimal.Decimal) SOVLineDetailResponse {
	return SOVLineDetailResponse{
		SOVLineResponse: FromSOVLine(line),
		AsOf:            asOf,
		EffectiveBudget: effectiveBudget,
	}
}
