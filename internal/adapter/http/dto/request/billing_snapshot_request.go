package request

import "time"

// CreateSnapshotRequest freezes one billing period. PeriodID is YYYY-MM;
// AsOf defaults to the request time when omitted.
type CreateSnapshotRequest struct {
	PeriodID string    `json:"period_id" binding:"required"`
	AsOf     time.Time `json:"as_of"`
}
