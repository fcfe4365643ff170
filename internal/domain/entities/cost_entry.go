package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostSourceKind identifies the external collaborator that produced a cost
// event. Daily reports, material tracking and RFIs write their own tables
// and emit events; only this ledger writes cost entries.
type CostSourceKind string

const (
	CostSourceLabor     CostSourceKind = "labor"
	CostSourceMaterial  CostSourceKind = "material"
	CostSourceRFIImpact CostSourceKind = "rfi-impact"
	CostSourceManual    CostSourceKind = "manual-adjustment"
)

// ValidCostSourceKind reports whether k is one of the closed source kinds.
func ValidCostSourceKind(k CostSourceKind) bool {
	switch k {
	case CostSourceLabor, CostSourceMaterial, CostSourceRFIImpact, CostSourceManual:
		return true
	}
	return false
}

// CostActualEntry is one attributed cost event against an SOV line.
//
// Storage model (DynamoDB):
//   - PK: source_id = "<source_kind>#<source_ref>" (idempotency key)
//   - GSI1 (line_id-index): line_id
//
// Entries are append-only. A wrong amount is corrected by a new offsetting
// entry whose OffsetsEntryID references the original; the original is never
// edited, preserving the audit trail.
type CostActualEntry struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	LineID         string          `json:"line_id"`
	Amount         decimal.Decimal `json:"amount"`
	SourceKind     CostSourceKind  `json:"source_kind"`
	SourceRef      string          `json:"source_ref"`
	EffectiveDate  time.Time       `json:"effective_date"`
	OffsetsEntryID string          `json:"offsets_entry_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// SourceID is the natural idempotency key for the entry.
func (e CostActualEntry) SourceID() string {
	return string(e.SourceKind) + "#" + e.SourceRef
}
