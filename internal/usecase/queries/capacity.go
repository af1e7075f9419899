package queries

import (
	"context"

	"flexin/internal/domain/booking"
)

type CapacityQueries interface {
	GetDayCapacity(ctx context.Context, day booking.Day) (*DayCapacityView, error)
}

type capacityQueriesImpl struct {
	bookings BookingViewRepo
	settings SettingsViewRepo
}

func NewCapacityQueries(bookings BookingViewRepo, settings SettingsViewRepo) CapacityQueries {
	return &capacityQueriesImpl{bookings: bookings, settings: settings}
}

// GetDayCapacity is a read-side snapshot: occupancy and capacity may move the
// moment it is returned, and admission is decided transactionally elsewhere.
func (q *capacityQueriesImpl) GetDayCapacity(ctx context.Context, day booking.Day) (*DayCapacityView, error) {
	cfg, err := q.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	occupants, err := q.bookings.ListActiveByDay(ctx, day.Time())
	if err != nil {
		return nil, err
	}

	available := cfg.MaxBookingsPerDay - len(occupants)
	if available < 0 {
		// Capacity may have been lowered below current occupancy.
		available = 0
	}

	return &DayCapacityView{
		Date:      day.String(),
		Bookings:  occupants,
		Capacity:  cfg.MaxBookingsPerDay,
		Available: available,
	}, nil
}
