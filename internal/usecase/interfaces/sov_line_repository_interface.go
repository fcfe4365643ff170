package interfaces

import (
	"context"

	"gcpanel_ledger/internal/domain/entities"
)

// ISOVLineRepository abstracts DynamoDB persistence for ScheduleOfValuesLine.
//
// Lookups that miss return the zero value with a nil error; use cases decide
// what absence means. Lines are never deleted, only deactivated.
type ISOVLineRepository interface {
	Create(ctx context.Context, line entities.ScheduleOfValuesLine) (entities.ScheduleOfValuesLine, error)
	GetByID(ctx context.Context, projectID, lineID string) (entities.ScheduleOfValuesLine, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ScheduleOfValuesLine, error)
	Deactivate(ctx context.Context, projectID, lineID string) (entities.ScheduleOfValuesLine, error)
}
