//go:build unit || e2e

package builder

import (
	dombooking "flexin/internal/domain/booking"
	"flexin/internal/domain/settings"
	reqdto "flexin/internal/handler/dto/request"
	"flexin/internal/usecase/queries"
)

func dayFromString(s string) (dombooking.Day, error) {
	return dombooking.ParseDay(s)
}

type SettingsBuilder struct {
	MaxBookingsPerDay          int
	MaxBookingsPerWeekPerUser  *int
	AllowedDays                []int
	RequireApprovalForBookings bool
	BlockedDates               []string
}

func NewSettingsBuilder() *SettingsBuilder {
	weekly := settings.DefaultWeeklyLimit
	return &SettingsBuilder{
		MaxBookingsPerDay:         settings.DefaultBookingsPerDay,
		MaxBookingsPerWeekPerUser: &weekly,
		AllowedDays:               []int{1, 2, 3, 4, 5},
	}
}

func (b *SettingsBuilder) With(mutate func(*SettingsBuilder)) *SettingsBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SettingsBuilder) BuildDomain() settings.AppSettings {
	return settings.AppSettings{
		MaxBookingsPerDay:          b.MaxBookingsPerDay,
		MaxBookingsPerWeekPerUser:  b.MaxBookingsPerWeekPerUser,
		AllowedDays:                b.AllowedDays,
		RequireApprovalForBookings: b.RequireApprovalForBookings,
	}
}

func (b *SettingsBuilder) BuildView() *queries.SettingsView {
	return &queries.SettingsView{
		MaxBookingsPerDay:          b.MaxBookingsPerDay,
		MaxBookingsPerWeekPerUser:  b.MaxBookingsPerWeekPerUser,
		AllowedDays:                b.AllowedDays,
		RequireApprovalForBookings: b.RequireApprovalForBookings,
		BlockedDates:               b.BlockedDates,
	}
}

func (b *SettingsBuilder) BuildUpdateRequestDTO() reqdto.UpdateSettingsRequest {
	capacity := b.MaxBookingsPerDay
	approval := b.RequireApprovalForBookings
	return reqdto.UpdateSettingsRequest{
		MaxBookingsPerDay:          &capacity,
		MaxBookingsPerWeekPerUser:  b.MaxBookingsPerWeekPerUser,
		AllowedDays:                b.AllowedDays,
		RequireApprovalForBookings: &approval,
	}
}

// Fluent builder methods
func (b *SettingsBuilder) WithMaxBookingsPerDay(n int) *SettingsBuilder {
	b.MaxBookingsPerDay = n
	return b
}

func (b *SettingsBuilder) WithWeeklyLimit(n int) *SettingsBuilder {
	b.MaxBookingsPerWeekPerUser = &n
	return b
}

func (b *SettingsBuilder) WithoutWeeklyLimit() *SettingsBuilder {
	b.MaxBookingsPerWeekPerUser = nil
	return b
}

func (b *SettingsBuilder) WithAllowedDays(days ...int) *SettingsBuilder {
	b.AllowedDays = days
	return b
}

func (b *SettingsBuilder) WithRequireApproval() *SettingsBuilder {
	b.RequireApprovalForBookings = true
	return b
}

func (b *SettingsBuilder) WithBlockedDates(dates ...string) *SettingsBuilder {
	b.BlockedDates = dates
	return b
}
