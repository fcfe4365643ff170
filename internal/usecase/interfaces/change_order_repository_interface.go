package interfaces

import (
	"context"
	"time"

	"gcpanel_ledger/internal/domain/entities"
)

// IChangeOrderRepository abstracts DynamoDB persistence for ChangeOrder.
//
// UpdateStatus flips status only when the stored status still equals `from`
// (conditional update). A lost race or a missing id returns the zero value
// with a nil error, so concurrent double-approval has exactly one winner.
type IChangeOrderRepository interface {
	Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error)
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	ListByLineID(ctx context.Context, lineID string) ([]entities.ChangeOrder, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ChangeOrder, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ChangeOrderStatus, actorID string, at time.Time) (entities.ChangeOrder, error)
}
