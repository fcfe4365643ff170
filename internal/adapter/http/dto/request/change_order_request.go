package request

import (
	"github.com/shopspring/decimal"
)

// CreateChangeOrderRequest opens a draft change order against one SOV line.
// Delta is signed; budget reductions are negative.
type CreateChangeOrderRequest struct {
	ProjectID     string          `json:"project_id" binding:"required"`
	LineID        string          `json:"line_id" binding:"required"`
	Delta         decimal.Decimal `json:"delta"`
	Justification string          `json:"justification"`
	SubmittedBy   string          `json:"submitted_by" binding:"required"`
}

// ChangeOrderActionRequest carries the acting user for submit/approve/reject.
// Role checks happen upstream; the ledger only records who acted.
type ChangeOrderActionRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}
