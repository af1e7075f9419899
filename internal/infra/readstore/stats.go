package readstore

import (
	"context"

	"flexin/internal/infra"
	"flexin/internal/infra/db"
	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(dbtx db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: dbtx}
}

// UserStats aggregates a user's booking and swap history. A user with no
// history gets an all-zero view, not an error.
func (s *StatsReadStore) UserStats(ctx context.Context, userID uuid.UUID) (*queries.UserStatsView, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM bookings WHERE user_id = $1),
			(SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND status = 'confirmed'),
			(SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND status = 'pending'),
			(SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND status = 'cancelled'),
			(SELECT COUNT(*) FROM swap_requests WHERE requester_id = $1),
			(SELECT COUNT(*) FROM swap_requests WHERE target_user_id = $1),
			(SELECT COUNT(*) FROM swap_requests WHERE requester_id = $1 AND status = 'approved'),
			(SELECT COUNT(*) FROM swap_requests WHERE requester_id = $1 AND status = 'rejected')`

	v := queries.UserStatsView{UserID: userID}
	err := s.db.QueryRow(ctx, q, userID).Scan(
		&v.TotalBookings,
		&v.ConfirmedBookings,
		&v.PendingBookings,
		&v.CancelledBookings,
		&v.SwapsRequested,
		&v.SwapsReceived,
		&v.SwapsApproved,
		&v.SwapsRejected,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate user stats", err)
	}
	return &v, nil
}
