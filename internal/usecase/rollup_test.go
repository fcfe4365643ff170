package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/domain/entities"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEffectiveBudgetOf(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	line := entities.ScheduleOfValuesLine{ID: "line-1", OriginalAmount: d("100000")}

	approved := func(id, delta string, at time.Time) entities.ChangeOrder {
		return entities.ChangeOrder{ID: id, LineID: "line-1", Delta: d(delta), Status: entities.ChangeOrderStatusApproved, ApprovedAt: at}
	}

	t.Run("no change orders", func(t *testing.T) {
		got := effectiveBudgetOf(line, nil, asOf)
		if !got.Equal(d("100000")) {
			t.Fatalf("expected 100000, got %s", got)
		}
	})

	t.Run("sum independent of approval order", func(t *testing.T) {
		early := asOf.Add(-48 * time.Hour)
		late := asOf.Add(-time.Hour)
		a := approved("co-1", "10000", early)
		b := approved("co-2", "-5000", late)

		first := effectiveBudgetOf(line, []entities.ChangeOrder{a, b}, asOf)
		second := effectiveBudgetOf(line, []entities.ChangeOrder{b, a}, asOf)
		if !first.Equal(second) {
			t.Fatalf("order changed the sum: %s vs %s", first, second)
		}
		if !first.Equal(d("105000")) {
			t.Fatalf("expected 105000, got %s", first)
		}
	})

	t.Run("non approved statuses do not count", func(t *testing.T) {
		orders := []entities.ChangeOrder{
			{ID: "co-1", LineID: "line-1", Delta: d("10000"), Status: entities.ChangeOrderStatusDraft},
			{ID: "co-2", LineID: "line-1", Delta: d("10000"), Status: entities.ChangeOrderStatusSubmitted},
			{ID: "co-3", LineID: "line-1", Delta: d("10000"), Status: entities.ChangeOrderStatusRejected, DecidedAt: asOf.Add(-time.Hour)},
		}
		got := effectiveBudgetOf(line, orders, asOf)
		if !got.Equal(d("100000")) {
			t.Fatalf("expected 100000, got %s", got)
		}
	})

	t.Run("approval after asOf does not count", func(t *testing.T) {
		orders := []entities.ChangeOrder{approved("co-1", "10000", asOf.Add(time.Hour))}
		got := effectiveBudgetOf(line, orders, asOf)
		if !got.Equal(d("100000")) {
			t.Fatalf("expected 100000, got %s", got)
		}
	})

	t.Run("approval exactly at asOf counts", func(t *testing.T) {
		orders := []entities.ChangeOrder{approved("co-1", "10000", asOf)}
		got := effectiveBudgetOf(line, orders, asOf)
		if !got.Equal(d("110000")) {
			t.Fatalf("expected 110000, got %s", got)
		}
	})

	t.Run("other lines excluded", func(t *testing.T) {
		orders := []entities.ChangeOrder{
			{ID: "co-1", LineID: "line-2", Delta: d("9999"), Status: entities.ChangeOrderStatusApproved, ApprovedAt: asOf.Add(-time.Hour)},
		}
		got := effectiveBudgetOf(line, orders, asOf)
		if !got.Equal(d("100000")) {
			t.Fatalf("expected 100000, got %s", got)
		}
	})

	t.Run("reductions can push budget negative", func(t *testing.T) {
		orders := []entities.ChangeOrder{approved("co-1", "-150000", asOf.Add(-time.Hour))}
		got := effectiveBudgetOf(line, orders, asOf)
		if !got.Equal(d("-50000")) {
			t.Fatalf("expected -50000, got %s", got)
		}
	})
}

func TestCumulativeActualOf(t *testing.T) {
	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	entries := []entities.CostActualEntry{
		{ID: "e1", LineID: "line-1", Amount: d("20000"), EffectiveDate: asOf.Add(-72 * time.Hour)},
		{ID: "e2", LineID: "line-1", Amount: d("-3000"), EffectiveDate: asOf.Add(-time.Hour)},
		{ID: "e3", LineID: "line-1", Amount: d("5000"), EffectiveDate: asOf.Add(time.Hour)},
		{ID: "e4", LineID: "line-2", Amount: d("77777"), EffectiveDate: asOf.Add(-time.Hour)},
	}

	got := cumulativeActualOf("line-1", entries, asOf)
	if !got.Equal(d("17000")) {
		t.Fatalf("expected 17000, got %s", got)
	}

	if got := cumulativeActualOf("line-3", entries, asOf); !got.IsZero() {
		t.Fatalf("expected zero for unknown line, got %s", got)
	}
}

func TestPercentCompleteOf(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		pct, anomaly := percentCompleteOf(d("110000"), d("20000"))
		if anomaly {
			t.Fatalf("unexpected anomaly")
		}
		if !pct.Equal(d("18.18")) {
			t.Fatalf("expected 18.18, got %s", pct)
		}
	})

	t.Run("zero budget is an anomaly", func(t *testing.T) {
		pct, anomaly := percentCompleteOf(decimal.Zero, d("20000"))
		if !anomaly {
			t.Fatalf("expected anomaly")
		}
		if !pct.IsZero() {
			t.Fatalf("expected 0, got %s", pct)
		}
	})

	t.Run("negative budget is an anomaly", func(t *testing.T) {
		_, anomaly := percentCompleteOf(d("-10"), d("20000"))
		if !anomaly {
			t.Fatalf("expected anomaly")
		}
	})

	t.Run("over 100 percent allowed", func(t *testing.T) {
		pct, anomaly := percentCompleteOf(d("100"), d("150"))
		if anomaly {
			t.Fatalf("unexpected anomaly")
		}
		if !pct.Equal(d("150")) {
			t.Fatalf("expected 150, got %s", pct)
		}
	})
}
