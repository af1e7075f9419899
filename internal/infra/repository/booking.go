package repository

import (
	"context"
	"errors"
	"time"

	"flexin/internal/domain/booking"
	"flexin/internal/infra"
	"flexin/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const q = `
		INSERT INTO bookings (id, user_id, date, status, needs_approval)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q, b.ID(), b.UserID(), b.Day().Time(), b.Status().String(), b.NeedsApproval()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// FindByIDForUpdate locks the row for the remainder of the transaction.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	const q = `
		SELECT id, user_id, date, status, needs_approval, created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	return scanBooking(tx.QueryRow(ctx, q, id))
}

// FindActiveByUserAndDayForUpdate resolves the booking a swap approval
// transfers, locking it so a concurrent approval cannot move it twice.
func (r *BookingRepository) FindActiveByUserAndDayForUpdate(ctx context.Context, tx db.DBTX, userID uuid.UUID, day booking.Day) (*booking.Booking, error) {
	const q = `
		SELECT id, user_id, date, status, needs_approval, created_at, updated_at
		FROM bookings
		WHERE user_id = $1 AND date = $2 AND status IN ('confirmed', 'pending')
		FOR UPDATE`

	return scanBooking(tx.QueryRow(ctx, q, userID, day.Time()))
}

func (r *BookingRepository) CountActiveByDay(ctx context.Context, tx db.DBTX, day booking.Day) (int, error) {
	const q = `
		SELECT COUNT(*) FROM bookings
		WHERE date = $1 AND status IN ('confirmed', 'pending')`

	var count int
	if err := tx.QueryRow(ctx, q, day.Time()).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count day bookings", err)
	}
	return count, nil
}

func (r *BookingRepository) ExistsActiveByUserAndDay(ctx context.Context, tx db.DBTX, userID uuid.UUID, day booking.Day) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND date = $2 AND status IN ('confirmed', 'pending')
		)`

	var exists bool
	if err := tx.QueryRow(ctx, q, userID, day.Time()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check duplicate booking", err)
	}
	return exists, nil
}

// CountConfirmedInRange counts confirmed bookings in [from, to) for the
// weekly-limit rule.
func (r *BookingRepository) CountConfirmedInRange(ctx context.Context, tx db.DBTX, userID uuid.UUID, from, to booking.Day) (int, error) {
	const q = `
		SELECT COUNT(*) FROM bookings
		WHERE user_id = $1 AND status = 'confirmed' AND date >= $2 AND date < $3`

	var count int
	if err := tx.QueryRow(ctx, q, userID, from.Time(), to.Time()).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count weekly bookings", err)
	}
	return count, nil
}

// Save persists status, owner, and approval-flag changes made by the domain.
func (r *BookingRepository) Save(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const q = `
		UPDATE bookings
		SET user_id = $2, status = $3, needs_approval = $4, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, b.ID(), b.UserID(), b.Status().String(), b.NeedsApproval())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

// Delete removes the row entirely. Used by admin rejection only; cancels flip
// the status and keep the row.
func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id            uuid.UUID
		userID        uuid.UUID
		date          time.Time
		statusStr     string
		needsApproval bool
		createdAt     time.Time
		updatedAt     time.Time
	)
	if err := row.Scan(&id, &userID, &date, &statusStr, &needsApproval, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	status, err := booking.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status in store", err)
	}

	return booking.ReconstructBooking(id, userID, booking.NewDay(date), status, needsApproval, createdAt, updatedAt), nil
}
