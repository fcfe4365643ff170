package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleOfValuesLine is one contract line item of a project's schedule of
// values, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Monetary representation:
//   - OriginalAmount is the contract amount fixed at project setup. It is
//     immutable after creation; only approved change orders move the
//     *effective* budget, which is always derived, never stored here.
//
// Lines are never deleted. Closeout marks them inactive so historic
// snapshots and audit reads keep resolving.
type ScheduleOfValuesLine struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
}
