package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/domain/entities"
	"gcpanel_ledger/internal/infrastructure/logger"
	"gcpanel_ledger/internal/usecase/interfaces"
)

var (
	ErrInvalidPeriodID     = errors.New("invalid billing period id")
	ErrDuplicatePeriod     = errors.New("billing period already has a snapshot")
	ErrSnapshotOutOfOrder  = errors.New("billing snapshots must be created in period order")
	ErrSnapshotNotFound    = errors.New("billing snapshot not found")
	ErrConcurrencyConflict = errors.New("concurrent snapshot creation conflict")
)

const periodLayout = "2006-01"

// notifyAttempts bounds the fire-and-forget billing notice retries.
const notifyAttempts = 3

// IBillingSnapshotUseCase freezes one billing period into an immutable
// record (the numeric content of an AIA G702/G703 application).
//
// Snapshots are requested in period order, one per calendar month. The
// amount billed this period is the cumulative actual at this period's as-of
// minus the cumulative at the previous snapshot's as-of, so the chronology
// pointer, not wall-clock creation order, decides "previous". Creation is
// serialized per project through that pointer; a concurrent create for the
// same period fails instead of producing a second frozen record.
type IBillingSnapshotUseCase interface {
	CreateSnapshot(ctx context.Context, projectID, periodID string, asOf time.Time) (entities.BillingSnapshot, error)
	GetSnapshot(ctx context.Context, projectID, periodID string) (entities.BillingSnapshot, error)
	ListSnapshots(ctx context.Context, projectID string) ([]entities.BillingSnapshot, error)
}

type BillingSnapshotUseCase struct {
	repo         interfaces.IBillingSnapshotRepository
	lineRepo     interfaces.ISOVLineRepository
	coRepo       interfaces.IChangeOrderRepository
	entryRepo    interfaces.ICostEntryRepository
	notifier     interfaces.IBillingNotifier
	retainagePct decimal.Decimal
	log          *logger.Logger
}

var _ IBillingSnapshotUseCase = (*BillingSnapshotUseCase)(nil)

func NewBillingSnapshotUseCase(
	repo interfaces.IBillingSnapshotRepository,
	lineRepo interfaces.ISOVLineRepository,
	coRepo interfaces.IChangeOrderRepository,
	entryRepo interfaces.ICostEntryRepository,
	notifier interfaces.IBillingNotifier,
	retainagePct decimal.Decimal,
	log *logger.Logger,
) *BillingSnapshotUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BillingSnapshotUseCase{
		repo:         repo,
		lineRepo:     lineRepo,
		coRepo:       coRepo,
		entryRepo:    entryRepo,
		notifier:     notifier,
		retainagePct: retainagePct,
		log:          log,
	}
}

func (u *BillingSnapshotUseCase) CreateSnapshot(ctx context.Context, projectID, periodID string, asOf time.Time) (entities.BillingSnapshot, error) {
	projectID = strings.TrimSpace(projectID)
	periodID = strings.TrimSpace(periodID)
	if projectID == "" {
		return entities.BillingSnapshot{}, ErrInvalidProjectID
	}
	if _, err := time.Parse(periodLayout, periodID); err != nil {
		return entities.BillingSnapshot{}, ErrInvalidPeriodID
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	asOf = asOf.UTC()

	u.log.Info("[snapshot][usecase] create start", "project_id", projectID, "period_id", periodID, "as_of", asOf)

	snap, err := u.create(ctx, projectID, periodID, asOf)
	if errors.Is(err, interfaces.ErrSequenceConflict) {
		// Another snapshot committed between our pointer read and write.
		// Recompute once against fresh state; the ordering checks then
		// decide whether this request is still valid.
		u.log.Warn("[snapshot][usecase] sequence conflict, retrying once", "project_id", projectID, "period_id", periodID)
		snap, err = u.create(ctx, projectID, periodID, asOf)
		if errors.Is(err, interfaces.ErrSequenceConflict) {
			return entities.BillingSnapshot{}, ErrConcurrencyConflict
		}
	}
	if err != nil {
		return entities.BillingSnapshot{}, err
	}

	u.log.Info("[snapshot][usecase] create success",
		"project_id", projectID, "period_id", periodID, "sequence", snap.Sequence,
		"total_billed", snap.TotalBilled.String(), "payment_due", snap.PaymentDue.String())
	u.notify(snap)
	return snap, nil
}

func (u *BillingSnapshotUseCase) create(ctx context.Context, projectID, periodID string, asOf time.Time) (entities.BillingSnapshot, error) {
	latest, err := u.repo.GetLatest(ctx, projectID)
	if err != nil {
		return entities.BillingSnapshot{}, err
	}

	hasPrevious := latest.Sequence > 0
	if hasPrevious {
		if periodID == latest.PeriodID {
			return entities.BillingSnapshot{}, ErrDuplicatePeriod
		}
		if periodID != nextPeriod(latest.PeriodID) {
			// An earlier period may already hold a frozen snapshot; a re-post
			// of it is a duplicate, not an ordering violation.
			if periodID < latest.PeriodID {
				existing, err := u.repo.GetByPeriod(ctx, projectID, periodID)
				if err != nil {
					return entities.BillingSnapshot{}, err
				}
				if existing.ID != "" {
					return entities.BillingSnapshot{}, ErrDuplicatePeriod
				}
			}
			return entities.BillingSnapshot{}, ErrSnapshotOutOfOrder
		}
		if asOf.Before(latest.AsOf) {
			return entities.BillingSnapshot{}, ErrSnapshotOutOfOrder
		}
	}

	lines, err := u.lineRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.BillingSnapshot{}, err
	}
	orders, err := u.coRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.BillingSnapshot{}, err
	}
	entries, err := u.entryRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.BillingSnapshot{}, err
	}

	snap := entities.BillingSnapshot{
		ID:                   entities.SnapshotID(projectID, periodID),
		ProjectID:            projectID,
		PeriodID:             periodID,
		Sequence:             latest.Sequence + 1,
		AsOf:                 asOf,
		CreatedAt:            time.Now().UTC(),
		TotalEffectiveBudget: decimal.Zero,
		TotalActual:          decimal.Zero,
		TotalBilled:          decimal.Zero,
		RetainagePct:         u.retainagePct,
	}

	for _, line := range lines {
		if !line.Active {
			continue
		}
		budget := effectiveBudgetOf(line, orders, asOf)
		cumulative := cumulativeActualOf(line.ID, entries, asOf)

		billed := cumulative
		if hasPrevious {
			billed = cumulative.Sub(cumulativeActualOf(line.ID, entries, latest.AsOf))
		}
		pct, anomaly := percentCompleteOf(budget, cumulative)

		snap.Lines = append(snap.Lines, entities.SnapshotLine{
			LineID:           line.ID,
			Description:      line.Description,
			Category:         line.Category,
			EffectiveBudget:  budget,
			CumulativeActual: cumulative,
			PercentComplete:  pct,
			BilledThisPeriod: billed,
			BalanceToFinish:  budget.Sub(cumulative),
			BudgetAnomaly:    anomaly,
		})
		snap.TotalEffectiveBudget = snap.TotalEffectiveBudget.Add(budget)
		snap.TotalActual = snap.TotalActual.Add(cumulative)
		snap.TotalBilled = snap.TotalBilled.Add(billed)
	}

	snap.RetainageAmount = snap.TotalBilled.Mul(u.retainagePct).Div(decimal.NewFromInt(100)).Round(2)
	snap.PaymentDue = snap.TotalBilled.Sub(snap.RetainageAmount)

	created, err := u.repo.Create(ctx, snap, latest.Sequence)
	if errors.Is(err, interfaces.ErrPeriodAlreadyExists) {
		return entities.BillingSnapshot{}, ErrDuplicatePeriod
	}
	if err != nil {
		return entities.BillingSnapshot{}, err
	}
	return created, nil
}

// notify delivers the billing notice outside the request path. The snapshot
// is already committed; a delivery failure is logged, never propagated.
func (u *BillingSnapshotUseCase) notify(snap entities.BillingSnapshot) {
	if u.notifier == nil {
		return
	}
	go func() {
		for attempt := 1; attempt <= notifyAttempts; attempt++ {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err := u.notifier.SendSnapshotNotice(ctx, snap)
			cancel()
			if err == nil {
				return
			}
			u.log.Warn("[snapshot][usecase] billing notice failed",
				"project_id", snap.ProjectID, "period_id", snap.PeriodID, "attempt", attempt, "err", err)
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}()
}

func (u *BillingSnapshotUseCase) GetSnapshot(ctx context.Context, projectID, periodID string) (entities.BillingSnapshot, error) {
	projectID = strings.TrimSpace(projectID)
	periodID = strings.TrimSpace(periodID)
	if projectID == "" {
		return entities.BillingSnapshot{}, ErrInvalidProjectID
	}
	if periodID == "" {
		return entities.BillingSnapshot{}, ErrInvalidPeriodID
	}

	snap, err := u.repo.GetByPeriod(ctx, projectID, periodID)
	if err != nil {
		return entities.BillingSnapshot{}, err
	}
	if snap.ID == "" {
		return entities.BillingSnapshot{}, ErrSnapshotNotFound
	}
	return snap, nil
}

func (u *BillingSnapshotUseCase) ListSnapshots(ctx context.Context, projectID string) ([]entities.BillingSnapshot, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// nextPeriod returns the calendar month after a YYYY-MM period id.
func nextPeriod(periodID string) string {
	t, err := time.Parse(periodLayout, periodID)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 1, 0).Format(periodLayout)
}
