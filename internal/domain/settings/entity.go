package settings

import "errors"

var (
	ErrInvalidDailyCapacity = errors.New("daily capacity must be between 1 and 10")
	ErrInvalidWeeklyLimit   = errors.New("weekly limit must be between 1 and 5")
	ErrInvalidWeekday       = errors.New("allowed days must be ISO weekdays 1-7")
	ErrNoAllowedDays        = errors.New("at least one weekday must be allowed")
)

const (
	MinBookingsPerDay = 1
	MaxBookingsPerDay = 10
	MinWeeklyLimit    = 1
	MaxWeeklyLimit    = 5

	DefaultBookingsPerDay = 3
	DefaultWeeklyLimit    = 2
)

// AppSettings is the single-row configuration every capacity decision reads.
// It is fetched inside the transaction that enforces it, never cached in
// process, so ledger decisions are reproducible against the persisted state.
type AppSettings struct {
	MaxBookingsPerDay          int
	MaxBookingsPerWeekPerUser  *int  // nil disables the weekly limit
	AllowedDays                []int // ISO weekdays, 1=Monday .. 7=Sunday
	RequireApprovalForBookings bool
}

func Default() AppSettings {
	weekly := DefaultWeeklyLimit
	return AppSettings{
		MaxBookingsPerDay:         DefaultBookingsPerDay,
		MaxBookingsPerWeekPerUser: &weekly,
		AllowedDays:               []int{1, 2, 3, 4, 5},
	}
}

func (s AppSettings) Validate() error {
	if s.MaxBookingsPerDay < MinBookingsPerDay || s.MaxBookingsPerDay > MaxBookingsPerDay {
		return ErrInvalidDailyCapacity
	}
	if s.MaxBookingsPerWeekPerUser != nil {
		if *s.MaxBookingsPerWeekPerUser < MinWeeklyLimit || *s.MaxBookingsPerWeekPerUser > MaxWeeklyLimit {
			return ErrInvalidWeeklyLimit
		}
	}
	if len(s.AllowedDays) == 0 {
		return ErrNoAllowedDays
	}
	for _, d := range s.AllowedDays {
		if d < 1 || d > 7 {
			return ErrInvalidWeekday
		}
	}
	return nil
}

// AllowsWeekday reports whether the ISO weekday (1=Monday) is bookable.
func (s AppSettings) AllowsWeekday(isoWeekday int) bool {
	for _, d := range s.AllowedDays {
		if d == isoWeekday {
			return true
		}
	}
	return false
}

// Patch carries a partial settings update; nil fields are left unchanged.
// WeeklyLimitSet distinguishes "leave as is" from "clear the weekly limit".
type Patch struct {
	MaxBookingsPerDay          *int
	MaxBookingsPerWeekPerUser  *int
	WeeklyLimitSet             bool
	AllowedDays                []int
	RequireApprovalForBookings *bool
}

// Apply merges p into s and validates the result.
func (s AppSettings) Apply(p Patch) (AppSettings, error) {
	merged := s
	if p.MaxBookingsPerDay != nil {
		merged.MaxBookingsPerDay = *p.MaxBookingsPerDay
	}
	if p.WeeklyLimitSet {
		merged.MaxBookingsPerWeekPerUser = p.MaxBookingsPerWeekPerUser
	}
	if p.AllowedDays != nil {
		merged.AllowedDays = p.AllowedDays
	}
	if p.RequireApprovalForBookings != nil {
		merged.RequireApprovalForBookings = *p.RequireApprovalForBookings
	}
	if err := merged.Validate(); err != nil {
		return AppSettings{}, err
	}
	return merged, nil
}
