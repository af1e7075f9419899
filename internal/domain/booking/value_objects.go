package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDay    = errors.New("invalid day format")
	ErrInvalidStatus = errors.New("invalid booking status")
)

const dayLayout = "2006-01-02"

// Day is a calendar date with no time component. All capacity accounting
// compares bookings by Day, never by timestamps.
type Day struct {
	value time.Time
}

func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{value: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return NewDay(t), nil
}

func (d Day) Time() time.Time {
	return d.value
}

func (d Day) String() string {
	return d.value.Format(dayLayout)
}

func (d Day) Equal(other Day) bool {
	return d.value.Equal(other.value)
}

func (d Day) AddDays(n int) Day {
	return NewDay(d.value.AddDate(0, 0, n))
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func (d Day) ISOWeekday() int {
	wd := int(d.value.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// WeekStart returns the Monday of the ISO week containing d. The weekly
// booking limit is accounted over [WeekStart, WeekStart+7).
func (d Day) WeekStart() Day {
	return d.AddDays(1 - d.ISOWeekday())
}

// InWeekOf reports whether d falls in the ISO week containing ref.
func (d Day) InWeekOf(ref Day) bool {
	start := ref.WeekStart()
	end := start.AddDays(7)
	return !d.value.Before(start.value) && d.value.Before(end.value)
}
