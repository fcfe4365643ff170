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
	ErrInvalidProjectID       = errors.New("invalid project id")
	ErrInvalidLineID          = errors.New("invalid sov line id")
	ErrInvalidLineInput       = errors.New("invalid sov line input")
	ErrNegativeOriginalAmount = errors.New("original amount must not be negative")
	ErrLineNotFound           = errors.New("sov line not found")
)

// ISOVUseCase exposes the schedule-of-values store.
//
// Lines are created once per contract category at project setup and never
// deleted; closeout deactivates them. The original amount is immutable;
// the only way budget moves is through approved change orders, which is why
// EffectiveBudget lives here as a derived as-of read.
type ISOVUseCase interface {
	CreateLine(ctx context.Context, projectID, description, category string, originalAmount decimal.Decimal) (entities.ScheduleOfValuesLine, error)
	GetLine(ctx context.Context, projectID, lineID string) (entities.ScheduleOfValuesLine, error)
	ListLines(ctx context.Context, projectID string) ([]entities.ScheduleOfValuesLine, error)
	DeactivateLine(ctx context.Context, projectID, lineID string) (entities.ScheduleOfValuesLine, error)
	EffectiveBudget(ctx context.Context, projectID, lineID string, asOf time.Time) (decimal.Decimal, error)
}

type SOVUseCase struct {
	repo   interfaces.ISOVLineRepository
	coRepo interfaces.IChangeOrderRepository
	log    *logger.Logger
}

var _ ISOVUseCase = (*SOVUseCase)(nil)

func NewSOVUseCase(repo interfaces.ISOVLineRepository, coRepo interfaces.IChangeOrderRepository, log *logger.Logger) *SOVUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SOVUseCase{repo: repo, coRepo: coRepo, log: log}
}

func (u *SOVUseCase) CreateLine(ctx context.Context, projectID, description, category string, originalAmount decimal.Decimal) (entities.ScheduleOfValuesLine, error) {
	projectID = strings.TrimSpace(projectID)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)
	if projectID == "" {
		return entities.ScheduleOfValuesLine{}, ErrInvalidProjectID
	}
	if description == "" || category == "" {
		return entities.ScheduleOfValuesLine{}, ErrInvalidLineInput
	}
	if originalAmount.IsNegative() {
		return entities.ScheduleOfValuesLine{}, ErrNegativeOriginalAmount
	}

	line := entities.ScheduleOfValuesLine{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		Description:    description,
		Category:       category,
		OriginalAmount: originalAmount,
		Active:         true,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, line)
	if err != nil {
		return entities.ScheduleOfValuesLine{}, err
	}
	u.log.Info("[sov][usecase] line created",
		"project_id", projectID, "line_id", created.ID, "category", category, "original_amount", originalAmount.String())
	return created, nil
}

func (u *SOVUseCase) GetLine(ctx context.Context, projectID, lineID string) (entities.ScheduleOfValuesLine, error) {
	projectID = strings.TrimSpace(projectID)
	lineID = strings.TrimSpace(lineID)
	if projectID == "" {
		return entities.ScheduleOfValuesLine{}, ErrInvalidProjectID
	}
	if lineID == "" {
		return entities.ScheduleOfValuesLine{}, ErrInvalidLineID
	}

	line, err := u.repo.GetByID(ctx, projectID, lineID)
	if err != nil {
		return entities.ScheduleOfValuesLine{}, err
	}
	if line.ID == "" {
		return entities.ScheduleOfValuesLine{}, ErrLineNotFound
	}
	return line, nil
}

func (u *SOVUseCase) ListLines(ctx context.Context, projectID string) ([]entities.ScheduleOfValuesLine, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *SOVUseCase) DeactivateLine(ctx context.Context, projectID, lineID string) (entities.ScheduleOfValuesLine, error) {
	projectID = strings.TrimSpace(projectID)
	lineID = strings.TrimSpace(lineID)
	if projectID == "" {
		return entities.ScheduleOfValuesLine{}, ErrInvalidProjectID
	}
	if lineID == "" {
		return entities.ScheduleOfValuesLine{}, ErrInvalidLineID
	}

	updated, err := u.repo.Deactivate(ctx, projectID, lineID)
	if err != nil {
		return entities.ScheduleOfValuesLine{}, err
	}
	if updated.ID == "" {
		return entities.ScheduleOfValuesLine{}, ErrLineNotFound
	}
	u.log.Info("[sov][usecase] line deactivated", "project_id", projectID, "line_id", lineID)
	return updated, nil
}

func (u *SOVUseCase) EffectiveBudget(ctx context.Context, projectID, lineID string, asOf time.Time) (decimal.Decimal, error) {
	line, err := u.GetLine(ctx, projectID, lineID)
	if err != nil {
		return decimal.Zero, err
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	orders, err := u.coRepo.ListByLineID(ctx, line.ID)
	if err != nil {
		return decimal.Zero, err
	}
	return effectiveBudgetOf(line, orders, asOf), nil
}
