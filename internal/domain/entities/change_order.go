package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeOrderStatus is the closed lifecycle of a change order.
//
// Transitions are one-directional:
//
//	Draft --submit--> Submitted --approve--> Approved
//	                            --reject--> Rejected
//
// Approved and Rejected are terminal. An approved delta is immutable; undoing
// one means appending a reversing change order, never mutating history.
type ChangeOrderStatus string

const (
	ChangeOrderStatusDraft     ChangeOrderStatus = "draft"
	ChangeOrderStatusSubmitted ChangeOrderStatus = "submitted"
	ChangeOrderStatusApproved  ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected  ChangeOrderStatus = "rejected"
)

// ChangeOrder is a proposed signed adjustment to one SOV line's budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (line_id-index): line_id
//
// Delta only counts toward the line's effective budget while Status is
// Approved, using ApprovedAt for as-of reads. Negative deltas (budget
// reductions) are allowed; a resulting negative effective budget is a
// reported variance condition, not a rejected operation.
type ChangeOrder struct {
	ID            string            `json:"id"`
	ProjectID     string            `json:"project_id"`
	LineID        string            `json:"line_id"`
	Delta         decimal.Decimal   `json:"delta"`
	Justification string            `json:"justification"`
	Status        ChangeOrderStatus `json:"status"`
	SubmittedBy   string            `json:"submitted_by"`
	ApprovedBy    string            `json:"approved_by,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	SubmittedAt   time.Time         `json:"submitted_at,omitempty"`
	DecidedAt     time.Time         `json:"decided_at,omitempty"`
	ApprovedAt    time.Time         `json:"approved_at,omitempty"`
}

// CountsToward reports whether this change order's delta is part of the
// effective budget at asOf.
func (co ChangeOrder) CountsToward(asOf time.Time) bool {
	return co.Status == ChangeOrderStatusApproved && !co.ApprovedAt.IsZero() && !co.ApprovedAt.After(asOf)
}
