package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gcpanel_ledger/internal/domain/entities"
	"gcpanel_ledger/internal/usecase/interfaces"
	mock_interfaces "gcpanel_ledger/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type snapshotMocks struct {
	repo      *mock_interfaces.MockIBillingSnapshotRepository
	lineRepo  *mock_interfaces.MockISOVLineRepository
	coRepo    *mock_interfaces.MockIChangeOrderRepository
	entryRepo *mock_interfaces.MockICostEntryRepository
}

func newSnapshotUseCase(ctrl *gomock.Controller, retainagePct decimal.Decimal) (*BillingSnapshotUseCase, snapshotMocks) {
	m := snapshotMocks{
		repo:      mock_interfaces.NewMockIBillingSnapshotRepository(ctrl),
		lineRepo:  mock_interfaces.NewMockISOVLineRepository(ctrl),
		coRepo:    mock_interfaces.NewMockIChangeOrderRepository(ctrl),
		entryRepo: mock_interfaces.NewMockICostEntryRepository(ctrl),
	}
	uc := NewBillingSnapshotUseCase(m.repo, m.lineRepo, m.coRepo, m.entryRepo, nil, retainagePct, nil)
	return uc, m
}

func TestBillingSnapshotUseCase_CreateSnapshot_Validation(t *testing.T) {
	t.Run("invalid period format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSnapshotUseCase(ctrl, d("5"))

		for _, period := range []string{"2024", "2024-13", "05-2024", "2024-5", "may"} {
			_, err := uc.CreateSnapshot(context.Background(), "proj-1", period, time.Now())
			if !errors.Is(err, ErrInvalidPeriodID) {
				t.Fatalf("period %q: expected ErrInvalidPeriodID, got %v", period, err)
			}
		}
	})

	t.Run("invalid project id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newSnapshotUseCase(ctrl, d("5"))

		_, err := uc.CreateSnapshot(context.Background(), "  ", "2024-05", time.Now())
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})
}

func TestBillingSnapshotUseCase_CreateSnapshot_Ordering(t *testing.T) {
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	latest := entities.SnapshotPointer{ProjectID: "proj-1", PeriodID: "2024-05", Sequence: 1, AsOf: asOf.AddDate(0, -1, 0)}

	t.Run("duplicate period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(latest, nil)

		_, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-05", asOf)
		if !errors.Is(err, ErrDuplicatePeriod) {
			t.Fatalf("expected ErrDuplicatePeriod, got %v", err)
		}
	})

	t.Run("skipping a period is out of order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(latest, nil)

		_, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-07", asOf)
		if !errors.Is(err, ErrSnapshotOutOfOrder) {
			t.Fatalf("expected ErrSnapshotOutOfOrder, got %v", err)
		}
	})

	t.Run("earlier period without a snapshot is out of order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(latest, nil)
		m.repo.EXPECT().GetByPeriod(gomock.Any(), "proj-1", "2024-04").Return(entities.BillingSnapshot{}, nil)

		_, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-04", asOf)
		if !errors.Is(err, ErrSnapshotOutOfOrder) {
			t.Fatalf("expected ErrSnapshotOutOfOrder, got %v", err)
		}
	})

	t.Run("re-posting an already-frozen earlier period is a duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		// Pointer has moved on to 2024-06; 2024-05 is already frozen.
		m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(
			entities.SnapshotPointer{ProjectID: "proj-1", PeriodID: "2024-06", Sequence: 2, AsOf: asOf}, nil)
		m.repo.EXPECT().GetByPeriod(gomock.Any(), "proj-1", "2024-05").Return(
			entities.BillingSnapshot{ID: "proj-1#2024-05", ProjectID: "proj-1", PeriodID: "2024-05", Sequence: 1}, nil)

		_, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-05", asOf)
		if !errors.Is(err, ErrDuplicatePeriod) {
			t.Fatalf("expected ErrDuplicatePeriod, got %v", err)
		}
	})

	t.Run("asOf before previous snapshot asOf is out of order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(latest, nil)

		_, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-06", latest.AsOf.Add(-time.Hour))
		if !errors.Is(err, ErrSnapshotOutOfOrder) {
			t.Fatalf("expected ErrSnapshotOutOfOrder, got %v", err)
		}
	})

	t.Run("first snapshot may use any period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(entities.SnapshotPointer{}, nil)
		m.lineRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		m.coRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		m.entryRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 0).DoAndReturn(
			func(_ context.Context, snap entities.BillingSnapshot, _ int) (entities.BillingSnapshot, error) {
				return snap, nil
			},
		)

		snap, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-09", asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Sequence != 1 {
			t.Fatalf("expected sequence 1, got %d", snap.Sequence)
		}
	})
}

func TestBillingSnapshotUseCase_CreateSnapshot_Scenario(t *testing.T) {
	// One line at 100k original, a +10k change order approved mid-period,
	// 20k of labor recorded. First application for 2024-05.
	asOf := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)

	line := entities.ScheduleOfValuesLine{ID: "line-1", ProjectID: "proj-1", Description: "Concrete", Category: "03-0000", OriginalAmount: d("100000"), Active: true}
	co := entities.ChangeOrder{ID: "co-1", ProjectID: "proj-1", LineID: "line-1", Delta: d("10000"), Status: entities.ChangeOrderStatusApproved, ApprovedAt: asOf.AddDate(0, 0, -10)}
	labor := entities.CostActualEntry{ID: "e1", ProjectID: "proj-1", LineID: "line-1", Amount: d("20000"), SourceKind: entities.CostSourceLabor, SourceRef: "DR-2024-05-01", EffectiveDate: asOf.AddDate(0, 0, -20)}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSnapshotUseCase(ctrl, d("5"))

	m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(entities.SnapshotPointer{}, nil)
	m.lineRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.ScheduleOfValuesLine{line}, nil)
	m.coRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.ChangeOrder{co}, nil)
	m.entryRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.CostActualEntry{labor}, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 0).DoAndReturn(
		func(_ context.Context, snap entities.BillingSnapshot, _ int) (entities.BillingSnapshot, error) {
			return snap, nil
		},
	)

	snap, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-05", asOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.ID != "proj-1#2024-05" || snap.Sequence != 1 {
		t.Fatalf("unexpected identity: %+v", snap)
	}
	if len(snap.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(snap.Lines))
	}
	ln := snap.Lines[0]
	if !ln.EffectiveBudget.Equal(d("110000")) {
		t.Fatalf("expected budget 110000, got %s", ln.EffectiveBudget)
	}
	if !ln.CumulativeActual.Equal(d("20000")) {
		t.Fatalf("expected cumulative 20000, got %s", ln.CumulativeActual)
	}
	if !ln.PercentComplete.Equal(d("18.18")) {
		t.Fatalf("expected 18.18 pct, got %s", ln.PercentComplete)
	}
	if !ln.BilledThisPeriod.Equal(d("20000")) {
		t.Fatalf("expected billed 20000, got %s", ln.BilledThisPeriod)
	}
	if !ln.BalanceToFinish.Equal(d("90000")) {
		t.Fatalf("expected balance 90000, got %s", ln.BalanceToFinish)
	}

	if !snap.TotalBilled.Equal(d("20000")) {
		t.Fatalf("expected total billed 20000, got %s", snap.TotalBilled)
	}
	if !snap.RetainageAmount.Equal(d("1000")) {
		t.Fatalf("expected retainage 1000, got %s", snap.RetainageAmount)
	}
	if !snap.PaymentDue.Equal(d("19000")) {
		t.Fatalf("expected payment due 19000, got %s", snap.PaymentDue)
	}
}

func TestBillingSnapshotUseCase_CreateSnapshot_SecondPeriodBillsTheDelta(t *testing.T) {
	// Period two bills the cumulative delta between the two as-of instants.
	// An entry back-dated to before the first as-of (recorded after that
	// snapshot froze) raises the cumulative on both sides of the subtraction,
	// so it never shows up in any period's billed amount.
	asOf1 := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	asOf2 := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	line := entities.ScheduleOfValuesLine{ID: "line-1", ProjectID: "proj-1", OriginalAmount: d("110000"), Active: true}
	entries := []entities.CostActualEntry{
		{ID: "e1", LineID: "line-1", Amount: d("20000"), EffectiveDate: asOf1.AddDate(0, 0, -5)},
		{ID: "e2", LineID: "line-1", Amount: d("15000"), EffectiveDate: asOf2.AddDate(0, 0, -5)},
		{ID: "e3", LineID: "line-1", Amount: d("5000"), EffectiveDate: asOf1.AddDate(0, 0, -1)},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSnapshotUseCase(ctrl, d("5"))

	latest := entities.SnapshotPointer{ProjectID: "proj-1", PeriodID: "2024-05", Sequence: 1, AsOf: asOf1}
	m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(latest, nil)
	m.lineRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.ScheduleOfValuesLine{line}, nil)
	m.coRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
	m.entryRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(entries, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 1).DoAndReturn(
		func(_ context.Context, snap entities.BillingSnapshot, _ int) (entities.BillingSnapshot, error) {
			return snap, nil
		},
	)

	snap, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-06", asOf2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Sequence != 2 {
		t.Fatalf("expected sequence 2, got %d", snap.Sequence)
	}
	ln := snap.Lines[0]
	if !ln.CumulativeActual.Equal(d("40000")) {
		t.Fatalf("expected cumulative 40000, got %s", ln.CumulativeActual)
	}
	if !ln.BilledThisPeriod.Equal(d("15000")) {
		t.Fatalf("expected billed 15000, got %s", ln.BilledThisPeriod)
	}
}

func TestBillingSnapshotUseCase_CreateSnapshot_Conflicts(t *testing.T) {
	asOf := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	expectComputeRound := func(m snapshotMocks) {
		m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(entities.SnapshotPointer{}, nil)
		m.lineRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		m.coRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		m.entryRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
	}

	t.Run("store period collision maps to duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		expectComputeRound(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 0).Return(entities.BillingSnapshot{}, interfaces.ErrPeriodAlreadyExists)

		_, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-05", asOf)
		if !errors.Is(err, ErrDuplicatePeriod) {
			t.Fatalf("expected ErrDuplicatePeriod, got %v", err)
		}
	})

	t.Run("sequence conflict retries once against fresh state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		expectComputeRound(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 0).Return(entities.BillingSnapshot{}, interfaces.ErrSequenceConflict)

		// Second round sees the winner's pointer; 2024-05 is now a duplicate.
		m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(entities.SnapshotPointer{ProjectID: "proj-1", PeriodID: "2024-05", Sequence: 1, AsOf: asOf}, nil)

		_, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-05", asOf)
		if !errors.Is(err, ErrDuplicatePeriod) {
			t.Fatalf("expected ErrDuplicatePeriod after retry, got %v", err)
		}
	})

	t.Run("persistent sequence conflict surfaces concurrency error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		expectComputeRound(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 0).Return(entities.BillingSnapshot{}, interfaces.ErrSequenceConflict)
		expectComputeRound(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 0).Return(entities.BillingSnapshot{}, interfaces.ErrSequenceConflict)

		_, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-05", asOf)
		if !errors.Is(err, ErrConcurrencyConflict) {
			t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
		}
	})
}

func TestBillingSnapshotUseCase_Notify(t *testing.T) {
	asOf := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := snapshotMocks{
		repo:      mock_interfaces.NewMockIBillingSnapshotRepository(ctrl),
		lineRepo:  mock_interfaces.NewMockISOVLineRepository(ctrl),
		coRepo:    mock_interfaces.NewMockIChangeOrderRepository(ctrl),
		entryRepo: mock_interfaces.NewMockICostEntryRepository(ctrl),
	}
	notifier := mock_interfaces.NewMockIBillingNotifier(ctrl)
	uc := NewBillingSnapshotUseCase(m.repo, m.lineRepo, m.coRepo, m.entryRepo, notifier, d("5"), nil)

	m.repo.EXPECT().GetLatest(gomock.Any(), "proj-1").Return(entities.SnapshotPointer{}, nil)
	m.lineRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
	m.coRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
	m.entryRepo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), 0).DoAndReturn(
		func(_ context.Context, snap entities.BillingSnapshot, _ int) (entities.BillingSnapshot, error) {
			return snap, nil
		},
	)

	delivered := make(chan struct{})
	notifier.EXPECT().SendSnapshotNotice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snap entities.BillingSnapshot) error {
			if snap.PeriodID != "2024-05" {
				t.Errorf("unexpected period: %s", snap.PeriodID)
			}
			close(delivered)
			return nil
		},
	)

	if _, err := uc.CreateSnapshot(context.Background(), "proj-1", "2024-05", asOf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatalf("billing notice was never delivered")
	}
}

func TestBillingSnapshotUseCase_GetSnapshot(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		m.repo.EXPECT().GetByPeriod(gomock.Any(), "proj-1", "2024-05").Return(entities.BillingSnapshot{}, nil)

		_, err := uc.GetSnapshot(context.Background(), "proj-1", "2024-05")
		if !errors.Is(err, ErrSnapshotNotFound) {
			t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("returns the frozen copy untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSnapshotUseCase(ctrl, d("5"))

		frozen := entities.BillingSnapshot{
			ID: "proj-1#2024-05", ProjectID: "proj-1", PeriodID: "2024-05", Sequence: 1,
			Lines: []entities.SnapshotLine{{LineID: "line-1", EffectiveBudget: d("110000"), CumulativeActual: d("20000")}},
		}
		m.repo.EXPECT().GetByPeriod(gomock.Any(), "proj-1", "2024-05").Return(frozen, nil)

		// A change order approved after the freeze must not alter the stored
		// numbers; reads never recompute snapshot content.
		snap, err := uc.GetSnapshot(context.Background(), "proj-1", "2024-05")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !snap.Lines[0].EffectiveBudget.Equal(d("110000")) {
			t.Fatalf("frozen budget changed: %s", snap.Lines[0].EffectiveBudget)
		}
	})
}
