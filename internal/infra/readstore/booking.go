package readstore

import (
	"context"
	"time"

	"flexin/internal/infra"
	"flexin/internal/infra/db"
	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewColumns = `
	b.id, b.user_id, u.name, b.date, b.status, b.needs_approval, b.created_at`

func (s *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	const q = `
		SELECT` + bookingViewColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.user_id = $1
		ORDER BY b.date DESC, b.created_at DESC`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return collectBookingViews(rows)
}

// ListActiveByDay returns the confirmed and pending bookings occupying a day.
func (s *BookingReadStore) ListActiveByDay(ctx context.Context, day time.Time) ([]*queries.BookingView, error) {
	const q = `
		SELECT` + bookingViewColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.date = $1 AND b.status IN ('confirmed', 'pending')
		ORDER BY b.created_at`

	rows, err := s.db.Query(ctx, q, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list day bookings", err)
	}
	return collectBookingViews(rows)
}

func (s *BookingReadStore) ListPendingApproval(ctx context.Context) ([]*queries.BookingView, error) {
	const q = `
		SELECT` + bookingViewColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.status = 'pending'
		ORDER BY b.date, b.created_at`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending bookings", err)
	}
	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		var (
			v    queries.BookingView
			date time.Time
		)
		if err := rows.Scan(&v.ID, &v.UserID, &v.UserName, &date, &v.Status, &v.NeedsApproval, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		v.Date = date.Format("2006-01-02")
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking views", err)
	}
	return views, nil
}
