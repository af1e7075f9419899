package request

import (
	"flexin/internal/domain/booking"
	"flexin/internal/domain/settings"
)

// UpdateSettingsRequest is a partial update; omitted fields keep their stored
// values. ClearWeeklyLimit removes the weekly limit entirely and wins over
// MaxBookingsPerWeekPerUser.
type UpdateSettingsRequest struct {
	MaxBookingsPerDay          *int  `json:"max_bookings_per_day,omitempty"`
	MaxBookingsPerWeekPerUser  *int  `json:"max_bookings_per_week_per_user,omitempty"`
	ClearWeeklyLimit           bool  `json:"clear_weekly_limit,omitempty"`
	AllowedDays                []int `json:"allowed_days,omitempty"`
	RequireApprovalForBookings *bool `json:"require_approval_for_bookings,omitempty"`
}

func (r UpdateSettingsRequest) ToPatch() settings.Patch {
	p := settings.Patch{
		MaxBookingsPerDay:          r.MaxBookingsPerDay,
		AllowedDays:                r.AllowedDays,
		RequireApprovalForBookings: r.RequireApprovalForBookings,
	}
	if r.ClearWeeklyLimit {
		p.WeeklyLimitSet = true
		p.MaxBookingsPerWeekPerUser = nil
	} else if r.MaxBookingsPerWeekPerUser != nil {
		p.WeeklyLimitSet = true
		p.MaxBookingsPerWeekPerUser = r.MaxBookingsPerWeekPerUser
	}
	return p
}

type BlockDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (r BlockDateRequest) ToDay() (booking.Day, error) {
	return booking.ParseDay(r.Date)
}

type AnnouncementRequest struct {
	Message string `json:"message" binding:"required"`
}
