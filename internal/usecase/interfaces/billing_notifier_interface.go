package interfaces

import (
	"context"

	"gcpanel_ledger/internal/domain/entities"
)

// IBillingNotifier notifies external collaborators (e.g. the owner's billing
// contact) that a period snapshot was frozen. Delivery is best-effort and
// decoupled from snapshot creation; a failed notice never rolls back a
// committed snapshot.
type IBillingNotifier interface {
	SendSnapshotNotice(ctx context.Context, snap entities.BillingSnapshot) error
}
