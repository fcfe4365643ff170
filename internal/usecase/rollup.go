package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/domain/entities"
)

// Pure aggregation over committed rows. Effective budget and cumulative
// actuals are never materialized; every read recomputes them, so concurrent
// approvals and appends cannot lose updates (the aggregate is a function of
// whatever the store has committed).

// effectiveBudgetOf returns originalAmount plus every approved change-order
// delta with approval time at or before asOf.
func effectiveBudgetOf(line entities.ScheduleOfValuesLine, orders []entities.ChangeOrder, asOf time.Time) decimal.Decimal {
	total := line.OriginalAmount
	for _, co := range orders {
		if co.LineID != line.ID {
			continue
		}
		if co.CountsToward(asOf) {
			total = total.Add(co.Delta)
		}
	}
	return total
}

// cumulativeActualOf sums every cost entry for the line with effective date
// at or before asOf.
func cumulativeActualOf(lineID string, entries []entities.CostActualEntry, asOf time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.LineID != lineID {
			continue
		}
		if !e.EffectiveDate.After(asOf) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// percentCompleteOf returns cumulative/budget as 0..100 rounded to two
// places. A zero or negative budget is an anomaly and reports 0.
func percentCompleteOf(budget, cumulative decimal.Decimal) (pct decimal.Decimal, anomaly bool) {
	if !budget.IsPositive() {
		return decimal.Zero, true
	}
	return cumulative.Mul(decimal.NewFromInt(100)).Div(budget).Round(2), false
}
