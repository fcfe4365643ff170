package response

import (
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/domain/entities"
)

type SnapshotLineResponse struct {
	LineID           string          `json:"line_id"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	EffectiveBudget  decimal.Decimal `json:"effective_budget"`
	CumulativeActual decimal.Decimal `json:"cumulative_actual"`
	PercentComplete  decimal.Decimal `json:"percent_complete"`
	BilledThisPeriod decimal.Decimal `json:"billed_this_period"`
	BalanceToFinish  decimal.Decimal `json:"balance_to_finish"`
	BudgetAnomaly    bool            `json:"budget_anomaly,omitempty"`
}

type BillingSnapshotResponse struct {
	ID        string                 `json:"id"`
	ProjectID string                 `json:"project_id"`
	PeriodID  string                 `json:"period_id"`
	Sequence  int                    `json:"sequence"`
	AsOf      time.Time              `json:"as_of"`
	CreatedAt time.Time              `json:"created_at"`
	Lines     []SnapshotLineResponse `json:"lines"`

	TotalEffectiveBudget decimal.Decimal `json:"total_effective_budget"`
	TotalActual          decimal.Decimal `json:"total_actual"`
	TotalBilled          decimal.Decimal `json:"total_billed"`
	RetainagePct         decimal.Decimal `json:"retainage_pct"`
	RetainageAmount      decimal.Decimal `json:"retainage_amount"`
	PaymentDue           decimal.Decimal `json:"payment_due"`
}

func FromBillingSnapshot(snap entities.BillingSnapshot) BillingSnapshotResponse {
	lines := make([]SnapshotLineResponse, 0, len(snap.Lines))
	for _, ln := range snap.Lines {
		lines = append(lines, SnapshotLineResponse{
			LineID:           ln.LineID,
			Description:      ln.Description,
			Category:         ln.Category,
			EffectiveBudget:  ln.EffectiveBudget,
			CumulativeActual: ln.CumulativeActual,
			PercentComplete:  ln.PercentComplete,
			BilledThisPeriod: ln.BilledThisPeriod,
			BalanceToFinish:  ln.BalanceToFinish,
			BudgetAnomaly:    ln.BudgetAnomaly,
		})
	}
	return BillingSnapshotResponse{
		ID:                   snap.ID,
		ProjectID:            snap.ProjectID,
		PeriodID:             snap.PeriodID,
		Sequence:             snap.Sequence,
		AsOf:                 snap.AsOf,
		CreatedAt:            snap.CreatedAt,
		Lines:                lines,
		TotalEffectiveBudget: snap.TotalEffectiveBudget,
		TotalActual:          snap.TotalActual,
		TotalBilled:          snap.TotalBilled,
		RetainagePct:         snap.RetainagePct,
		RetainageAmount:      snap.RetainageAmount,
		PaymentDue:           snap.PaymentDue,
	}
}
