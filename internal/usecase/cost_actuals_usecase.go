package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gcpanel_ledger/internal/domain/entities"
	"gcpanel_ledger/internal/infrastructure/logger"
	"gcpanel_ledger/internal/usecase/interfaces"
)

var (
	ErrUnknownLine       = errors.New("cost entry references an unknown sov line")
	ErrUnknownSourceKind = errors.New("unknown cost source kind")
	ErrZeroAmount        = errors.New("cost amount must not be zero")
	ErrInvalidSourceRef  = errors.New("invalid source ref")
	ErrEntryNotFound     = errors.New("cost entry not found")
)

// ICostActualsUseCase folds external cost-impact events into the ledger.
//
// Daily reports, material deliveries and RFI cost impacts each deliver with
// a (sourceKind, sourceRef) identity. Recording is idempotent on that pair:
// a re-delivered event is a no-op success returning the stored entry, never
// a double count and never an error. Incremental sources (several deliveries
// on one purchase order) use a distinct sourceRef per delivery.
//
// Entries are append-only; RecordOffset posts a correcting entry referencing
// the original instead of editing it.
type ICostActualsUseCase interface {
	Record(ctx context.Context, projectID, lineID string, amount decimal.Decimal, kind entities.CostSourceKind, sourceRef string, effectiveDate time.Time) (entry entities.CostActualEntry, alreadyRecorded bool, err error)
	RecordOffset(ctx context.Context, projectID, originalEntryID string, amount decimal.Decimal, effectiveDate time.Time) (entities.CostActualEntry, error)
	CumulativeActual(ctx context.Context, projectID, lineID string, asOf time.Time) (decimal.Decimal, error)
	ListByLine(ctx context.Context, projectID, lineID string) ([]entities.CostActualEntry, error)
}

type CostActualsUseCase struct {
	repo     interfaces.ICostEntryRepository
	lineRepo interfaces.ISOVLineRepository
	log      *logger.Logger
}

var _ ICostActualsUseCase = (*CostActualsUseCase)(nil)

func NewCostActualsUseCase(repo interfaces.ICostEntryRepository, lineRepo interfaces.ISOVLineRepository, log *logger.Logger) *CostActualsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CostActualsUseCase{repo: repo, lineRepo: lineRepo, log: log}
}

func (u *CostActualsUseCase) Record(ctx context.Context, projectID, lineID string, amount decimal.Decimal, kind entities.CostSourceKind, sourceRef string, effectiveDate time.Time) (entities.CostActualEntry, bool, error) {
	projectID = strings.TrimSpace(projectID)
	lineID = strings.TrimSpace(lineID)
	sourceRef = strings.TrimSpace(sourceRef)
	if projectID == "" {
		return entities.CostActualEntry{}, false, ErrInvalidProjectID
	}
	if lineID == "" {
		return entities.CostActualEntry{}, false, ErrInvalidLineID
	}
	if amount.IsZero() {
		return entities.CostActualEntry{}, false, ErrZeroAmount
	}
	if !entities.ValidCostSourceKind(kind) {
		return entities.CostActualEntry{}, false, ErrUnknownSourceKind
	}
	if sourceRef == "" {
		// Manual adjustments may omit the ref; each then gets its own
		// identity. External events must carry the source's ref.
		if kind != entities.CostSourceManual {
			return entities.CostActualEntry{}, false, ErrInvalidSourceRef
		}
		sourceRef = uuid.NewString()
	}
	if effectiveDate.IsZero() {
		effectiveDate = time.Now().UTC()
	}

	line, err := u.lineRepo.GetByID(ctx, projectID, lineID)
	if err != nil {
		return entities.CostActualEntry{}, false, err
	}
	if line.ID == "" {
		return entities.CostActualEntry{}, false, ErrUnknownLine
	}

	e := entities.CostActualEntry{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		LineID:        lineID,
		Amount:        amount,
		SourceKind:    kind,
		SourceRef:     sourceRef,
		EffectiveDate: effectiveDate.UTC(),
		CreatedAt:     time.Now().UTC(),
	}
	stored, created, err := u.repo.Put(ctx, e)
	if err != nil {
		return entities.CostActualEntry{}, false, err
	}
	if !created {
		u.log.Info("[actuals][usecase] duplicate event ignored",
			"project_id", projectID, "source_kind", string(kind), "source_ref", sourceRef, "entry_id", stored.ID)
		return stored, true, nil
	}
	u.log.Info("[actuals][usecase] entry recorded",
		"project_id", projectID, "line_id", lineID, "entry_id", stored.ID,
		"source_kind", string(kind), "source_ref", sourceRef, "amount", amount.String())
	return stored, false, nil
}

func (u *CostActualsUseCase) RecordOffset(ctx context.Context, projectID, originalEntryID string, amount decimal.Decimal, effectiveDate time.Time) (entities.CostActualEntry, error) {
	projectID = strings.TrimSpace(projectID)
	originalEntryID = strings.TrimSpace(originalEntryID)
	if projectID == "" {
		return entities.CostActualEntry{}, ErrInvalidProjectID
	}
	if originalEntryID == "" {
		return entities.CostActualEntry{}, ErrEntryNotFound
	}
	if amount.IsZero() {
		return entities.CostActualEntry{}, ErrZeroAmount
	}

	original, err := u.repo.GetByEntryID(ctx, originalEntryID)
	if err != nil {
		return entities.CostActualEntry{}, err
	}
	if original.ID == "" || original.ProjectID != projectID {
		return entities.CostActualEntry{}, ErrEntryNotFound
	}
	if effectiveDate.IsZero() {
		effectiveDate = time.Now().UTC()
	}

	offset := entities.CostActualEntry{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		LineID:         original.LineID,
		Amount:         amount,
		SourceKind:     entities.CostSourceManual,
		SourceRef:      uuid.NewString(),
		EffectiveDate:  effectiveDate.UTC(),
		OffsetsEntryID: original.ID,
		CreatedAt:      time.Now().UTC(),
	}
	stored, _, err := u.repo.Put(ctx, offset)
	if err != nil {
		return entities.CostActualEntry{}, err
	}
	u.log.Info("[actuals][usecase] offset recorded",
		"project_id", projectID, "line_id", original.LineID, "entry_id", stored.ID,
		"offsets_entry_id", original.ID, "amount", amount.String())
	return stored, nil
}

func (u *CostActualsUseCase) CumulativeActual(ctx context.Context, projectID, lineID string, asOf time.Time) (decimal.Decimal, error) {
	projectID = strings.TrimSpace(projectID)
	lineID = strings.TrimSpace(lineID)
	if projectID == "" {
		return decimal.Zero, ErrInvalidProjectID
	}
	if lineID == "" {
		return decimal.Zero, ErrInvalidLineID
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	line, err := u.lineRepo.GetByID(ctx, projectID, lineID)
	if err != nil {
		return decimal.Zero, err
	}
	if line.ID == "" {
		return decimal.Zero, ErrUnknownLine
	}

	entries, err := u.repo.ListByLineID(ctx, lineID)
	if err != nil {
		return decimal.Zero, err
	}
	return cumulativeActualOf(lineID, entries, asOf), nil
}

func (u *CostActualsUseCase) ListByLine(ctx context.Context, projectID, lineID string) ([]entities.CostActualEntry, error) {
	projectID = strings.TrimSpace(projectID)
	lineID = strings.TrimSpace(lineID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	if lineID == "" {
		return nil, ErrInvalidLineID
	}

	line, err := u.lineRepo.GetByID(ctx, projectID, lineID)
	if err != nil {
		return nil, err
	}
	if line.ID == "" {
		return nil, ErrUnknownLine
	}
	return u.repo.ListByLineID(ctx, lineID)
}
