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
	ErrInvalidChangeOrderID = errors.New("invalid change order id")
	ErrChangeOrderNotFound  = errors.New("change order not found")
	ErrZeroDelta            = errors.New("change order delta must not be zero")
	ErrInvalidActorID       = errors.New("invalid actor id")
	ErrInvalidTransition    = errors.New("change order transition not allowed from current status")
)

// IChangeOrderUseCase is the change-order ledger.
//
// Submit/Approve/Reject are guarded one-way transitions. Approval is the only
// thing that moves a line's effective budget, and the approved delta is
// immutable afterwards; a wrong approval is undone by a reversing change
// order, never by editing history. Two approvals racing on the same change
// order resolve to exactly one winner via a conditional status flip in
// storage; the loser sees the transition error, same as any stale caller.
type IChangeOrderUseCase interface {
	Create(ctx context.Context, projectID, lineID string, delta decimal.Decimal, justification, submittedBy string) (entities.ChangeOrder, error)
	Submit(ctx context.Context, id, actorID string) (entities.ChangeOrder, error)
	Approve(ctx context.Context, id, actorID string) (entities.ChangeOrder, error)
	Reject(ctx context.Context, id, actorID string) (entities.ChangeOrder, error)
	Get(ctx context.Context, id string) (entities.ChangeOrder, error)
	ListByLine(ctx context.Context, projectID, lineID string) ([]entities.ChangeOrder, error)
}

type ChangeOrderUseCase struct {
	repo     interfaces.IChangeOrderRepository
	lineRepo interfaces.ISOVLineRepository
	log      *logger.Logger
}

var _ IChangeOrderUseCase = (*ChangeOrderUseCase)(nil)

func NewChangeOrderUseCase(repo interfaces.IChangeOrderRepository, lineRepo interfaces.ISOVLineRepository, log *logger.Logger) *ChangeOrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ChangeOrderUseCase{repo: repo, lineRepo: lineRepo, log: log}
}

func (u *ChangeOrderUseCase) Create(ctx context.Context, projectID, lineID string, delta decimal.Decimal, justification, submittedBy string) (entities.ChangeOrder, error) {
	projectID = strings.TrimSpace(projectID)
	lineID = strings.TrimSpace(lineID)
	submittedBy = strings.TrimSpace(submittedBy)
	if projectID == "" {
		return entities.ChangeOrder{}, ErrInvalidProjectID
	}
	if lineID == "" {
		return entities.ChangeOrder{}, ErrInvalidLineID
	}
	if delta.IsZero() {
		return entities.ChangeOrder{}, ErrZeroDelta
	}
	if submittedBy == "" {
		return entities.ChangeOrder{}, ErrInvalidActorID
	}

	line, err := u.lineRepo.GetByID(ctx, projectID, lineID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if line.ID == "" {
		return entities.ChangeOrder{}, ErrLineNotFound
	}

	co := entities.ChangeOrder{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		LineID:        lineID,
		Delta:         delta,
		Justification: strings.TrimSpace(justification),
		Status:        entities.ChangeOrderStatusDraft,
		SubmittedBy:   submittedBy,
		CreatedAt:     time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, co)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	u.log.Info("[changeorder][usecase] created",
		"project_id", projectID, "line_id", lineID, "change_order_id", created.ID, "delta", delta.String())
	return created, nil
}

func (u *ChangeOrderUseCase) Submit(ctx context.Context, id, actorID string) (entities.ChangeOrder, error) {
	return u.transition(ctx, id, actorID, entities.ChangeOrderStatusDraft, entities.ChangeOrderStatusSubmitted)
}

func (u *ChangeOrderUseCase) Approve(ctx context.Context, id, actorID string) (entities.ChangeOrder, error) {
	return u.transition(ctx, id, actorID, entities.ChangeOrderStatusSubmitted, entities.ChangeOrderStatusApproved)
}

func (u *ChangeOrderUseCase) Reject(ctx context.Context, id, actorID string) (entities.ChangeOrder, error) {
	return u.transition(ctx, id, actorID, entities.ChangeOrderStatusSubmitted, entities.ChangeOrderStatusRejected)
}

func (u *ChangeOrderUseCase) transition(ctx context.Context, id, actorID string, from, to entities.ChangeOrderStatus) (entities.ChangeOrder, error) {
	id = strings.TrimSpace(id)
	actorID = strings.TrimSpace(actorID)
	if id == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderID
	}
	if actorID == "" {
		return entities.ChangeOrder{}, ErrInvalidActorID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if current.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	if current.Status != from {
		return entities.ChangeOrder{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, from, to, actorID, time.Now().UTC())
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if updated.ID == "" {
		// Condition failed: someone else moved the status between our read
		// and write. Same outcome as reading the stale status.
		return entities.ChangeOrder{}, ErrInvalidTransition
	}
	u.log.Info("[changeorder][usecase] transition",
		"change_order_id", id, "from", string(from), "to", string(to), "actor_id", actorID)
	return updated, nil
}

func (u *ChangeOrderUseCase) Get(ctx context.Context, id string) (entities.ChangeOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderID
	}

	co, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	return co, nil
}

func (u *ChangeOrderUseCase) ListByLine(ctx context.Context, projectID, lineID string) ([]entities.ChangeOrder, error) {
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
		return nil, ErrLineNotFound
	}
	return u.repo.ListByLineID(ctx, lineID)
}
