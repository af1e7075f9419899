package readstore

import (
	"context"
	"errors"
	"time"

	"flexin/internal/domain/settings"
	"flexin/internal/infra"
	"flexin/internal/infra/db"
	"flexin/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(dbtx db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: dbtx}
}

// Get assembles the settings row, the blocked-date list, and the active
// announcement into one view.
func (s *SettingsReadStore) Get(ctx context.Context) (*queries.SettingsView, error) {
	const settingsQ = `
		SELECT max_bookings_per_day, max_bookings_per_week_per_user, allowed_days, require_approval_for_bookings
		FROM app_settings
		LIMIT 1`

	var v queries.SettingsView
	err := s.db.QueryRow(ctx, settingsQ).Scan(
		&v.MaxBookingsPerDay,
		&v.MaxBookingsPerWeekPerUser,
		&v.AllowedDays,
		&v.RequireApprovalForBookings,
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("failed to load settings view", err)
		}
		def := settings.Default()
		v.MaxBookingsPerDay = def.MaxBookingsPerDay
		v.MaxBookingsPerWeekPerUser = def.MaxBookingsPerWeekPerUser
		v.AllowedDays = def.AllowedDays
		v.RequireApprovalForBookings = def.RequireApprovalForBookings
	}

	blocked, err := s.listBlockedDates(ctx)
	if err != nil {
		return nil, err
	}
	v.BlockedDates = blocked

	ann, err := s.activeAnnouncement(ctx)
	if err != nil {
		return nil, err
	}
	v.Announcement = ann

	return &v, nil
}

func (s *SettingsReadStore) listBlockedDates(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT date FROM blocked_dates ORDER BY date`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked dates", err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked date", err)
		}
		dates = append(dates, d.Format("2006-01-02"))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blocked dates", err)
	}
	return dates, nil
}

func (s *SettingsReadStore) activeAnnouncement(ctx context.Context) (*queries.AnnouncementView, error) {
	const q = `
		SELECT id, message, active, created_at
		FROM admin_announcements
		WHERE active
		ORDER BY created_at DESC
		LIMIT 1`

	var a queries.AnnouncementView
	err := s.db.QueryRow(ctx, q).Scan(&a.ID, &a.Message, &a.Active, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load announcement", err)
	}
	return &a, nil
}
