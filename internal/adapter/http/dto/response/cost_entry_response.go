package response

import (
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/domain/entities"
)

type CostEntryResponse struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	LineID         string          `json:"line_id"`
	Amount         decimal.Decimal `json:"amount"`
	SourceKind     string          `json:"source_kind"`
	SourceRef      string          `json:"source_ref"`
	EffectiveDate  time.Time       `json:"effective_date"`
	OffsetsEntryID string          `json:"offsets_entry_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`

	// AlreadyRecorded marks the no-op success of a duplicate event delivery.
	AlreadyRecorded bool `json:"already_recorded,omitempty"`
}

func FromCostEntry(e entities.CostActualEntry, alreadyRecorded bool) CostEntryResponse {
	return CostEntryResponse{
		ID:              e.ID,
		ProjectID:       e.ProjectID,
		LineID:          e.LineID,
		Amount:          e.Amount,
		SourceKind:      string(e.SourceKind),
		SourceRef:       e.SourceRef,
		EffectiveDate:   e.EffectiveDate,
		OffsetsEntryID:  e.OffsetsEntryID,
		CreatedAt:       e.CreatedAt,
		AlreadyRecorded: alreadyRecorded,
	}
}

// LineActualsResponse is the as-of read of a line's recorded costs.
type LineActualsResponse struct {
	LineID           string              `json:"line_id"`
	AsOf             time.Time           `json:"as_of"`
	CumulativeActual decimal.Decimal     `json:"cumulative_actual"`
	Entries          []CostEntryResponse `json:"entries"`
}

func FromLineActuals(lineID string, asOf time.Time, cumulative decimal.Decimal, entries []entities.CostActualEntry) LineActualsResponse {
	out := LineActualsResponse{
		LineID:           lineID,
		AsOf:             asOf,
		CumulativeActual: cumulative,
		Entries:          make([]CostEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, FromCostEntry(e, false))
	}
	return out
}
