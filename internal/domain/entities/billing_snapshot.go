package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotLine is the frozen per-line rollup inside a billing snapshot.
//
// PercentComplete is cumulative actual over effective budget, expressed
// 0..100. When the effective budget is zero or negative the percentage is
// reported as 0 with BudgetAnomaly set, mirroring the G703 convention of
// flagging rather than dividing.
type SnapshotLine struct {
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

// BillingSnapshot is the immutable point-in-time rollup produced for one
// billing period (the numeric content of an AIA G702/G703 application).
//
// Storage model (DynamoDB):
//   - PK: id = "<project_id>#<period_id>"
//   - plus one "<project_id>#latest" meta item carrying the newest period,
//     sequence and as-of, used to serialize snapshot creation per project.
//
// Once created the numbers never change: they are computed from ledger state
// at AsOf and stored as a frozen copy. An entry back-dated to on or before
// AsOf after the freeze never appears in any period's billed amount, since
// each period bills the cumulative delta between consecutive as-of instants;
// corrections that must be billed are posted as offset entries dated within
// the open period.
type BillingSnapshot struct {
	ID        string         `json:"id"`
	ProjectID string         `json:"project_id"`
	PeriodID  string         `json:"period_id"`
	Sequence  int            `json:"sequence"`
	AsOf      time.Time      `json:"as_of"`
	CreatedAt time.Time      `json:"created_at"`
	Lines     []SnapshotLine `json:"lines"`

	TotalEffectiveBudget decimal.Decimal `json:"total_effective_budget"`
	TotalActual          decimal.Decimal `json:"total_actual"`
	TotalBilled          decimal.Decimal `json:"total_billed"`
	RetainagePct         decimal.Decimal `json:"retainage_pct"`
	RetainageAmount      decimal.Decimal `json:"retainage_amount"`
	PaymentDue           decimal.Decimal `json:"payment_due"`
}

// SnapshotID builds the composite storage key for a project's period.
func SnapshotID(projectID, periodID string) string {
	return projectID + "#" + periodID
}

// SnapshotPointer is the per-project "latest" meta record. Advancing it with
// an expected-sequence condition is what serializes snapshot creation.
type SnapshotPointer struct {
	ProjectID string    `json:"project_id"`
	PeriodID  string    `json:"period_id"`
	Sequence  int       `json:"sequence"`
	AsOf      time.Time `json:"as_of"`
}
