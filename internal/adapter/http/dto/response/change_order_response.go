package response

import (
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/domain/entities"
)

type ChangeOrderResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	LineID        string          `json:"line_id"`
	Delta         decimal.Decimal `json:"delta"`
	Justification string          `json:"justification,omitempty"`
	Status        string          `json:"status"`
	SubmittedBy   string          `json:"submitted_by"`
	ApprovedBy    string          `json:"approved_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	SubmittedAt   *time.Time      `json:"submitted_at,omitempty"`
	DecidedAt     *time.Time      `json:"decided_at,omitempty"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
}

func FromChangeOrder(co entities.ChangeOrder) ChangeOrderResponse {
	return ChangeOrderResponse{
		ID:            co.ID,
		ProjectID:     co.ProjectID,
		LineID:        co.LineID,
		Delta:         co.Delta,
		Justification: co.Justification,
		Status:        string(co.Status),
		SubmittedBy:   co.SubmittedBy,
		ApprovedBy:    co.ApprovedBy,
		CreatedAt:     co.CreatedAt,
		SubmittedAt:   optionalTime(co.SubmittedAt),
		DecidedAt:     optionalTime(co.DecidedAt),
		ApprovedAt:    optionalTime(co.ApprovedAt),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
