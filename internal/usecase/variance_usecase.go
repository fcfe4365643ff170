package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/usecase/interfaces"
)

// LineVariance is the derived budget position of one SOV line.
type LineVariance struct {
	LineID           string          `json:"line_id"`
	AsOf             time.Time       `json:"as_of"`
	EffectiveBudget  decimal.Decimal `json:"effective_budget"`
	CumulativeActual decimal.Decimal `json:"cumulative_actual"`
	Variance         decimal.Decimal `json:"variance"`
	OverBudget       bool            `json:"over_budget"`
}

// ProjectRollup is the derived project-level position.
//
// CPIDefined is false when no actuals exist yet; the index is then reported
// as undefined instead of dividing by zero.
type ProjectRollup struct {
	ProjectID            string          `json:"project_id"`
	AsOf                 time.Time       `json:"as_of"`
	TotalBudget          decimal.Decimal `json:"total_budget"`
	TotalActual          decimal.Decimal `json:"total_actual"`
	TotalVariance        decimal.Decimal `json:"total_variance"`
	CostPerformanceIndex decimal.Decimal `json:"cost_performance_index"`
	CPIDefined           bool            `json:"cpi_defined"`
}

// IVarianceUseCase derives reports from current ledger state. Nothing here
// persists anything; every call recomputes from committed rows, except when
// the same math is frozen inside a billing snapshot.
type IVarianceUseCase interface {
	LineVariance(ctx context.Context, projectID, lineID string, asOf time.Time) (LineVariance, error)
	ProjectRollup(ctx context.Context, projectID string, asOf time.Time) (ProjectRollup, error)
}

type VarianceUseCase struct {
	lineRepo  interfaces.ISOVLineRepository
	coRepo    interfaces.IChangeOrderRepository
	entryRepo interfaces.ICostEntryRepository
}

var _ IVarianceUseCase = (*VarianceUseCase)(nil)

func NewVarianceUseCase(lineRepo interfaces.ISOVLineRepository, coRepo interfaces.IChangeOrderRepository, entryRepo interfaces.ICostEntryRepository) *VarianceUseCase {
	return &VarianceUseCase{lineRepo: lineRepo, coRepo: coRepo, entryRepo: entryRepo}
}

func (u *VarianceUseCase) LineVariance(ctx context.Context, projectID, lineID string, asOf time.Time) (LineVariance, error) {
	projectID = strings.TrimSpace(projectID)
	lineID = strings.TrimSpace(lineID)
	if projectID == "" {
		return LineVariance{}, ErrInvalidProjectID
	}
	if lineID == "" {
		return LineVariance{}, ErrInvalidLineID
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	line, err := u.lineRepo.GetByID(ctx, projectID, lineID)
	if err != nil {
		return LineVariance{}, err
	}
	if line.ID == "" {
		return LineVariance{}, ErrLineNotFound
	}

	orders, err := u.coRepo.ListByLineID(ctx, lineID)
	if err != nil {
		return LineVariance{}, err
	}
	entries, err := u.entryRepo.ListByLineID(ctx, lineID)
	if err != nil {
		return LineVariance{}, err
	}

	budget := effectiveBudgetOf(line, orders, asOf)
	cumulative := cumulativeActualOf(lineID, entries, asOf)
	variance := budget.Sub(cumulative)
	return LineVariance{
		LineID:           lineID,
		AsOf:             asOf,
		EffectiveBudget:  budget,
		CumulativeActual: cumulative,
		Variance:         variance,
		OverBudget:       variance.IsNegative(),
	}, nil
}

func (u *VarianceUseCase) ProjectRollup(ctx context.Context, projectID string, asOf time.Time) (ProjectRollup, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ProjectRollup{}, ErrInvalidProjectID
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	lines, err := u.lineRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return ProjectRollup{}, err
	}
	orders, err := u.coRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return ProjectRollup{}, err
	}
	entries, err := u.entryRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return ProjectRollup{}, err
	}

	rollup := ProjectRollup{
		ProjectID:   projectID,
		AsOf:        asOf,
		TotalBudget: decimal.Zero,
		TotalActual: decimal.Zero,
	}
	for _, line := range lines {
		if !line.Active {
			continue
		}
		rollup.TotalBudget = rollup.TotalBudget.Add(effectiveBudgetOf(line, orders, asOf))
		rollup.TotalActual = rollup.TotalActual.Add(cumulativeActualOf(line.ID, entries, asOf))
	}
	rollup.TotalVariance = rollup.TotalBudget.Sub(rollup.TotalActual)
	if !rollup.TotalActual.IsZero() {
		rollup.CostPerformanceIndex = rollup.TotalBudget.Div(rollup.TotalActual).Round(4)
		rollup.CPIDefined = true
	}
	return rollup, nil
}
