package request

import (
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/domain/entities"
)

// RecordCostEntryRequest is the inbound cost-impact event from daily reports,
// material tracking, RFIs or a manual adjustment.
//
// (source_kind, source_ref) is the event identity used for idempotent
// recording; incremental sources must send a distinct source_ref per event.
type RecordCostEntryRequest struct {
	ProjectID     string          `json:"project_id" binding:"required"`
	LineID        string          `json:"line_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	SourceKind    string          `json:"source_kind" binding:"required"`
	SourceRef     string          `json:"source_ref"`
	EffectiveDate time.Time       `json:"effective_date"`
}

func (r RecordCostEntryRequest) ResolveSourceKind() entities.CostSourceKind {
	return entities.CostSourceKind(r.SourceKind)
}

// OffsetCostEntryRequest posts a correcting entry against an existing one.
type OffsetCostEntryRequest struct {
	ProjectID     string          `json:"project_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveDate time.Time       `json:"effective_date"`
}
