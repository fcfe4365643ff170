package interfaces

import (
	"context"

	"gcpanel_ledger/internal/domain/entities"
)

// ICostEntryRepository abstracts DynamoDB persistence for CostActualEntry.
//
// Put is idempotent on the entry's (sourceKind, sourceRef) key: when that key
// is already stored, the existing entry comes back with created=false and the
// new one is discarded. Entries are append-only; there is no update path.
type ICostEntryRepository interface {
	Put(ctx context.Context, e entities.CostActualEntry) (stored entities.CostActualEntry, created bool, err error)
	GetByEntryID(ctx context.Context, entryID string) (entities.CostActualEntry, error)
	ListByLineID(ctx context.Context, lineID string) ([]entities.CostActualEntry, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.CostActualEntry, error)
}
