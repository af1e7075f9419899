//go:build unit

package booking_test

import (
	"testing"
	"time"

	"flexin/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	t.Run("parses calendar dates", func(t *testing.T) {
		day, err := booking.ParseDay("2026-09-02")
		require.NoError(t, err)

		assert.Equal(t, "2026-09-02", day.String())
		assert.Equal(t, time.UTC, day.Time().Location())
		assert.Equal(t, 0, day.Time().Hour())
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, s := range []string{"", "2026-9-2", "02-09-2026", "2026/09/02", "not-a-date", "2026-13-01"} {
			_, err := booking.ParseDay(s)
			assert.ErrorIs(t, err, booking.ErrInvalidDay, "input: %q", s)
		}
	})

	t.Run("drops the time component", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*3600)
		late := time.Date(2026, 9, 2, 23, 45, 0, 0, loc)

		day := booking.NewDay(late)
		assert.Equal(t, "2026-09-02", day.String())
	})

	t.Run("equality and arithmetic", func(t *testing.T) {
		day, err := booking.ParseDay("2026-09-02")
		require.NoError(t, err)
		same, err := booking.ParseDay("2026-09-02")
		require.NoError(t, err)

		assert.True(t, day.Equal(same))
		assert.Equal(t, "2026-09-03", day.AddDays(1).String())
		assert.Equal(t, "2026-08-31", day.AddDays(-2).String())
	})
}

func TestDayWeekMath(t *testing.T) {
	t.Run("ISO weekday maps Monday to 1 and Sunday to 7", func(t *testing.T) {
		cases := []struct {
			date string
			want int
		}{
			{"2026-08-31", 1}, // Monday
			{"2026-09-02", 3}, // Wednesday
			{"2026-09-05", 6}, // Saturday
			{"2026-09-06", 7}, // Sunday
		}
		for _, tc := range cases {
			day, err := booking.ParseDay(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, day.ISOWeekday(), "date: %s", tc.date)
		}
	})

	t.Run("week starts on Monday", func(t *testing.T) {
		cases := []struct {
			date string
			want string
		}{
			{"2026-08-31", "2026-08-31"}, // Monday is its own week start
			{"2026-09-02", "2026-08-31"},
			{"2026-09-06", "2026-08-31"}, // Sunday closes the same week
			{"2026-09-07", "2026-09-07"}, // next Monday opens a new one
		}
		for _, tc := range cases {
			day, err := booking.ParseDay(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, day.WeekStart().String(), "date: %s", tc.date)
		}
	})

	t.Run("InWeekOf covers Monday through Sunday", func(t *testing.T) {
		ref, err := booking.ParseDay("2026-09-02")
		require.NoError(t, err)

		cases := []struct {
			date string
			want bool
		}{
			{"2026-08-31", true},
			{"2026-09-06", true},
			{"2026-08-30", false}, // previous Sunday
			{"2026-09-07", false}, // next Monday
		}
		for _, tc := range cases {
			day, err := booking.ParseDay(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, day.InWeekOf(ref), "date: %s", tc.date)
		}
	})

	t.Run("week boundary across a year change", func(t *testing.T) {
		// 2027-01-01 is a Friday; its week starts on 2026-12-28.
		day, err := booking.ParseDay("2027-01-01")
		require.NoError(t, err)

		assert.Equal(t, "2026-12-28", day.WeekStart().String())
	})
}
