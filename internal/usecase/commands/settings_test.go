//go:build unit

package commands_test

import (
	"context"
	"testing"

	"flexin/internal/domain/settings"
	"flexin/internal/infra"
	"flexin/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("success: patch merges into the stored settings", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		f.settings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(settings.Default(), nil)
		f.settings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, merged settings.AppSettings) error {
				assert.Equal(t, 5, merged.MaxBookingsPerDay)
				// Untouched fields keep their stored values
				require.NotNil(t, merged.MaxBookingsPerWeekPerUser)
				assert.Equal(t, settings.DefaultWeeklyLimit, *merged.MaxBookingsPerWeekPerUser)
				return nil
			})

		err := uc.UpdateSettings(ctx, adminActor(), settings.Patch{MaxBookingsPerDay: intPtr(5)})
		require.NoError(t, err)
	})

	t.Run("error: members cannot change settings", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		err := uc.UpdateSettings(ctx, memberActor(), settings.Patch{MaxBookingsPerDay: intPtr(5)})
		assert.ErrorIs(t, err, commands.ErrAdminRequired)
	})

	t.Run("error: a patch that breaks validation is refused", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		f.settings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(settings.Default(), nil)

		err := uc.UpdateSettings(ctx, adminActor(), settings.Patch{MaxBookingsPerDay: intPtr(0)})
		assert.ErrorIs(t, err, commands.ErrInvalidSettings)
	})
}

func TestBlockDate(t *testing.T) {
	ctx := context.Background()
	day := mustDay(t, "2026-09-02")

	t.Run("success: date is closed to new bookings", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		f.settings.EXPECT().BlockDate(gomock.Any(), gomock.Any(), day).Return(nil)

		require.NoError(t, uc.BlockDate(ctx, adminActor(), day))
	})

	t.Run("error: members cannot block dates", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		err := uc.BlockDate(ctx, memberActor(), day)
		assert.ErrorIs(t, err, commands.ErrAdminRequired)
	})
}

func TestUnblockDate(t *testing.T) {
	ctx := context.Background()
	day := mustDay(t, "2026-09-02")

	t.Run("success: blocked date is reopened", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		f.settings.EXPECT().UnblockDate(gomock.Any(), gomock.Any(), day).Return(nil)

		require.NoError(t, uc.UnblockDate(ctx, adminActor(), day))
	})

	t.Run("error: date was never blocked", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		f.settings.EXPECT().UnblockDate(gomock.Any(), gomock.Any(), day).
			Return(infra.NewRepoErr(infra.KindNotFound, "blocked date not found"))

		err := uc.UnblockDate(ctx, adminActor(), day)
		assert.ErrorIs(t, err, commands.ErrBlockedDateNotFound)
	})
}

func TestPublishAnnouncement(t *testing.T) {
	ctx := context.Background()

	t.Run("success: publishing retires the previous announcement first", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		gomock.InOrder(
			f.settings.EXPECT().DeactivateAnnouncements(gomock.Any(), gomock.Any()).Return(nil),
			f.settings.EXPECT().InsertAnnouncement(gomock.Any(), gomock.Any(), "Office closed Friday").Return(uuid.New(), nil),
		)

		require.NoError(t, uc.PublishAnnouncement(ctx, adminActor(), "Office closed Friday"))
	})

	t.Run("success: message is trimmed before publishing", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		f.settings.EXPECT().DeactivateAnnouncements(gomock.Any(), gomock.Any()).Return(nil)
		f.settings.EXPECT().InsertAnnouncement(gomock.Any(), gomock.Any(), "Power maintenance").Return(uuid.New(), nil)

		require.NoError(t, uc.PublishAnnouncement(ctx, adminActor(), "  Power maintenance  "))
	})

	t.Run("error: blank message", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		err := uc.PublishAnnouncement(ctx, adminActor(), "   ")
		assert.ErrorIs(t, err, commands.ErrEmptyAnnouncement)
	})

	t.Run("error: members cannot publish", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		err := uc.PublishAnnouncement(ctx, memberActor(), "Office closed Friday")
		assert.ErrorIs(t, err, commands.ErrAdminRequired)
	})
}

func TestClearAnnouncement(t *testing.T) {
	ctx := context.Background()

	t.Run("success: active announcement is retired", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		f.settings.EXPECT().DeactivateAnnouncements(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, uc.ClearAnnouncement(ctx, adminActor()))
	})

	t.Run("error: members cannot clear", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSettingsUseCase(f.uow)

		err := uc.ClearAnnouncement(ctx, memberActor())
		assert.ErrorIs(t, err, commands.ErrAdminRequired)
	})
}
