package response

import (
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/usecase"
)

type LineVarianceResponse struct {
	LineID           string          `json:"line_id"`
	AsOf             time.Time       `json:"as_of"`
	EffectiveBudget  decimal.Decimal `json:"effective_budget"`
	CumulativeActual decimal.Decimal `json:"cumulative_actual"`
	Variance         decimal.Decimal `json:"variance"`
	OverBudget       bool            `json:"over_budget"`
}

func FromLineVariance(v usecase.LineVariance) LineVarianceResponse {
	return LineVarianceResponse{
		LineID:           v.LineID,
		AsOf:             v.AsOf,
		EffectiveBudget:  v.EffectiveBudget,
		CumulativeActual: v.CumulativeActual,
		Variance:         v.Variance,
		OverBudget:       v.OverBudget,
	}
}

type ProjectRollupResponse struct {
	ProjectID            string           `json:"project_id"`
	AsOf                 time.Time        `json:"as_of"`
	TotalBudget          decimal.Decimal  `json:"total_budget"`
	TotalActual          decimal.Decimal  `json:"total_actual"`
	TotalVariance        decimal.Decimal  `json:"total_variance"`
	CostPerformanceIndex *decimal.Decimal `json:"cost_performance_index,omitempty"`
}

// FromProjectRollup reports CPI as null rather than a bogus number when no
// actuals exist yet.
func FromProjectRollup(r usecase.ProjectRollup) ProjectRollupResponse {
	out := ProjectRollupResponse{
		ProjectID:     r.ProjectID,
		AsOf:          r.AsOf,
		TotalBudget:   r.TotalBudget,
		TotalActual:   r.TotalActual,
		TotalVariance: r.TotalVariance,
	}
	if r.CPIDefined {
		cpi := r.CostPerformanceIndex
		out.CostPerformanceIndex = &cpi
	}
	return out
}
