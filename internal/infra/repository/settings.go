package repository

import (
	"context"
	"errors"

	"flexin/internal/domain/booking"
	"flexin/internal/domain/settings"
	"flexin/internal/infra"
	"flexin/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SettingsRepository struct{}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Get reads the single settings row. The migration seeds it, so an empty
// table means defaults rather than an error.
func (r *SettingsRepository) Get(ctx context.Context, tx db.DBTX) (settings.AppSettings, error) {
	const q = `
		SELECT max_bookings_per_day, max_bookings_per_week_per_user, allowed_days, require_approval_for_bookings
		FROM app_settings
		LIMIT 1`

	var s settings.AppSettings
	err := tx.QueryRow(ctx, q).Scan(
		&s.MaxBookingsPerDay,
		&s.MaxBookingsPerWeekPerUser,
		&s.AllowedDays,
		&s.RequireApprovalForBookings,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Default(), nil
		}
		return settings.AppSettings{}, infra.WrapRepoErr("failed to load settings", err)
	}
	return s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, tx db.DBTX, s settings.AppSettings) error {
	const q = `
		UPDATE app_settings
		SET max_bookings_per_day = $1,
		    max_bookings_per_week_per_user = $2,
		    allowed_days = $3,
		    require_approval_for_bookings = $4,
		    updated_at = now()`

	_, err := tx.Exec(ctx, q,
		s.MaxBookingsPerDay,
		s.MaxBookingsPerWeekPerUser,
		s.AllowedDays,
		s.RequireApprovalForBookings,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update settings", err)
	}
	return nil
}

func (r *SettingsRepository) IsDayBlocked(ctx context.Context, tx db.DBTX, day booking.Day) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM blocked_dates WHERE date = $1)`

	var blocked bool
	if err := tx.QueryRow(ctx, q, day.Time()).Scan(&blocked); err != nil {
		return false, infra.WrapRepoErr("failed to check blocked date", err)
	}
	return blocked, nil
}

// BlockDate is idempotent; blocking an already-blocked date succeeds.
func (r *SettingsRepository) BlockDate(ctx context.Context, tx db.DBTX, day booking.Day) error {
	const q = `
		INSERT INTO blocked_dates (id, date)
		VALUES ($1, $2)
		ON CONFLICT (date) DO NOTHING`

	if _, err := tx.Exec(ctx, q, uuid.New(), day.Time()); err != nil {
		return infra.WrapRepoErr("failed to block date", err)
	}
	return nil
}

func (r *SettingsRepository) UnblockDate(ctx context.Context, tx db.DBTX, day booking.Day) error {
	tag, err := tx.Exec(ctx, `DELETE FROM blocked_dates WHERE date = $1`, day.Time())
	if err != nil {
		return infra.WrapRepoErr("failed to unblock date", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "blocked date not found")
	}
	return nil
}

func (r *SettingsRepository) DeactivateAnnouncements(ctx context.Context, tx db.DBTX) error {
	if _, err := tx.Exec(ctx, `UPDATE admin_announcements SET active = false, updated_at = now() WHERE active`); err != nil {
		return infra.WrapRepoErr("failed to deactivate announcements", err)
	}
	return nil
}

func (r *SettingsRepository) InsertAnnouncement(ctx context.Context, tx db.DBTX, message string) (uuid.UUID, error) {
	const q = `
		INSERT INTO admin_announcements (id, message, active)
		VALUES ($1, $2, true)
		RETURNING id`

	var id uuid.UUID
	if err := tx.QueryRow(ctx, q, uuid.New(), message).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert announcement", err)
	}
	return id, nil
}
