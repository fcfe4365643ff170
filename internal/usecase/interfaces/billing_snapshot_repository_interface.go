package interfaces

import (
	"context"
	"errors"

	"gcpanel_ledger/internal/domain/entities"
)

var (
	// ErrPeriodAlreadyExists reports that the period already holds a frozen
	// snapshot (including the concurrent-create race).
	ErrPeriodAlreadyExists = errors.New("billing period already has a snapshot")

	// ErrSequenceConflict reports that the project's latest pointer moved
	// between read and write; the caller may retry against fresh state.
	ErrSequenceConflict = errors.New("snapshot sequence conflict")
)

// IBillingSnapshotRepository abstracts DynamoDB persistence for
// BillingSnapshot plus the per-project latest pointer.
//
// Create stores the frozen snapshot and advances the latest pointer
// atomically: it fails with ErrPeriodAlreadyExists if the period key is
// taken, and with ErrSequenceConflict when the pointer moved past
// expectedSequence because another writer got there first; either failure
// persists nothing. GetLatest returns the zero pointer when the project has
// no snapshots yet.
type IBillingSnapshotRepository interface {
	Create(ctx context.Context, snap entities.BillingSnapshot, expectedSequence int) (entities.BillingSnapshot, error)
	GetByPeriod(ctx context.Context, projectID, periodID string) (entities.BillingSnapshot, error)
	GetLatest(ctx context.Context, projectID string) (entities.SnapshotPointer, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.BillingSnapshot, error)
}
