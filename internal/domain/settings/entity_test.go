//go:build unit

package settings_test

import (
	"testing"

	"flexin/internal/domain/settings"
	"flexin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SettingsBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := builder.NewSettingsBuilder().With(tc.mutate).BuildDomain()
			err := s.Validate()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAppSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := settings.Default()
		require.NoError(t, s.Validate())

		assert.Equal(t, 3, s.MaxBookingsPerDay)
		require.NotNil(t, s.MaxBookingsPerWeekPerUser)
		assert.Equal(t, 2, *s.MaxBookingsPerWeekPerUser)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, s.AllowedDays)
		assert.False(t, s.RequireApprovalForBookings)
	})

	t.Run("daily capacity bounds", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum capacity",
				mutate: func(b *builder.SettingsBuilder) { b.WithMaxBookingsPerDay(1) },
			},
			{
				name:   "maximum capacity",
				mutate: func(b *builder.SettingsBuilder) { b.WithMaxBookingsPerDay(10) },
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.SettingsBuilder) { b.WithMaxBookingsPerDay(0) },
				errIs:  settings.ErrInvalidDailyCapacity,
			},
			{
				name:   "capacity above maximum",
				mutate: func(b *builder.SettingsBuilder) { b.WithMaxBookingsPerDay(11) },
				errIs:  settings.ErrInvalidDailyCapacity,
			},
		})
	})

	t.Run("weekly limit bounds", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no weekly limit",
				mutate: func(b *builder.SettingsBuilder) { b.WithoutWeeklyLimit() },
			},
			{
				name:   "minimum limit",
				mutate: func(b *builder.SettingsBuilder) { b.WithWeeklyLimit(1) },
			},
			{
				name:   "maximum limit",
				mutate: func(b *builder.SettingsBuilder) { b.WithWeeklyLimit(5) },
			},
			{
				name:   "zero limit",
				mutate: func(b *builder.SettingsBuilder) { b.WithWeeklyLimit(0) },
				errIs:  settings.ErrInvalidWeeklyLimit,
			},
			{
				name:   "limit above maximum",
				mutate: func(b *builder.SettingsBuilder) { b.WithWeeklyLimit(6) },
				errIs:  settings.ErrInvalidWeeklyLimit,
			},
		})
	})

	t.Run("allowed days validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "every weekday including the weekend",
				mutate: func(b *builder.SettingsBuilder) { b.WithAllowedDays(1, 2, 3, 4, 5, 6, 7) },
			},
			{
				name:   "single day",
				mutate: func(b *builder.SettingsBuilder) { b.WithAllowedDays(3) },
			},
			{
				name:   "no days at all",
				mutate: func(b *builder.SettingsBuilder) { b.WithAllowedDays() },
				errIs:  settings.ErrNoAllowedDays,
			},
			{
				name:   "day below range",
				mutate: func(b *builder.SettingsBuilder) { b.WithAllowedDays(0, 1) },
				errIs:  settings.ErrInvalidWeekday,
			},
			{
				name:   "day above range",
				mutate: func(b *builder.SettingsBuilder) { b.WithAllowedDays(1, 8) },
				errIs:  settings.ErrInvalidWeekday,
			},
		})
	})
}

func TestAllowsWeekday(t *testing.T) {
	s := builder.NewSettingsBuilder().WithAllowedDays(1, 3, 5).BuildDomain()

	assert.True(t, s.AllowsWeekday(1))
	assert.True(t, s.AllowsWeekday(3))
	assert.False(t, s.AllowsWeekday(2))
	assert.False(t, s.AllowsWeekday(6))
	assert.False(t, s.AllowsWeekday(7))
}

func TestApply(t *testing.T) {
	base := settings.Default()

	t.Run("empty patch keeps everything", func(t *testing.T) {
		merged, err := base.Apply(settings.Patch{})
		require.NoError(t, err)
		assert.Equal(t, base, merged)
	})

	t.Run("patches individual fields", func(t *testing.T) {
		capacity := 5
		approval := true
		merged, err := base.Apply(settings.Patch{
			MaxBookingsPerDay:          &capacity,
			AllowedDays:                []int{1, 2},
			RequireApprovalForBookings: &approval,
		})
		require.NoError(t, err)

		assert.Equal(t, 5, merged.MaxBookingsPerDay)
		assert.Equal(t, []int{1, 2}, merged.AllowedDays)
		assert.True(t, merged.RequireApprovalForBookings)
		// untouched field survives
		require.NotNil(t, merged.MaxBookingsPerWeekPerUser)
		assert.Equal(t, 2, *merged.MaxBookingsPerWeekPerUser)
	})

	t.Run("clears the weekly limit only when the patch says so", func(t *testing.T) {
		merged, err := base.Apply(settings.Patch{WeeklyLimitSet: true, MaxBookingsPerWeekPerUser: nil})
		require.NoError(t, err)
		assert.Nil(t, merged.MaxBookingsPerWeekPerUser)

		// a nil limit without the flag means "leave as is"
		merged, err = base.Apply(settings.Patch{MaxBookingsPerWeekPerUser: nil})
		require.NoError(t, err)
		require.NotNil(t, merged.MaxBookingsPerWeekPerUser)
	})

	t.Run("sets a new weekly limit", func(t *testing.T) {
		limit := 4
		merged, err := base.Apply(settings.Patch{WeeklyLimitSet: true, MaxBookingsPerWeekPerUser: &limit})
		require.NoError(t, err)
		require.NotNil(t, merged.MaxBookingsPerWeekPerUser)
		assert.Equal(t, 4, *merged.MaxBookingsPerWeekPerUser)
	})

	t.Run("rejects an invalid merge result", func(t *testing.T) {
		capacity := 0
		_, err := base.Apply(settings.Patch{MaxBookingsPerDay: &capacity})
		assert.ErrorIs(t, err, settings.ErrInvalidDailyCapacity)

		_, err = base.Apply(settings.Patch{AllowedDays: []int{9}})
		assert.ErrorIs(t, err, settings.ErrInvalidWeekday)
	})
}
