package commands

import (
	"context"
	"strings"

	"flexin/internal/domain/booking"
	"flexin/internal/domain/settings"
	"flexin/internal/infra"
	"flexin/internal/pkg/errs"
	"flexin/internal/usecase/shared"
)

var (
	ErrInvalidSettings     = errs.New("settings validation failed")
	ErrBlockedDateNotFound = errs.New("blocked date not found")
	ErrEmptyAnnouncement   = errs.New("announcement message is empty")
)

type SettingsCommands interface {
	UpdateSettings(ctx context.Context, actor shared.Actor, patch settings.Patch) error
	BlockDate(ctx context.Context, actor shared.Actor, day booking.Day) error
	UnblockDate(ctx context.Context, actor shared.Actor, day booking.Day) error
	PublishAnnouncement(ctx context.Context, actor shared.Actor, message string) error
	ClearAnnouncement(ctx context.Context, actor shared.Actor) error
}

type settingsUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewSettingsUseCase(uow shared.UnitOfWork) SettingsCommands {
	return &settingsUseCaseImpl{uow: uow}
}

// UpdateSettings merges the patch into the stored settings. Existing bookings
// are never revisited; new rules apply to admissions from here on.
func (u *settingsUseCaseImpl) UpdateSettings(ctx context.Context, actor shared.Actor, patch settings.Patch) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Settings().Get(ctx, tx.DB())
		if err != nil {
			return err
		}

		merged, err := current.Apply(patch)
		if err != nil {
			return errs.Mark(err, ErrInvalidSettings)
		}
		return tx.Settings().Update(ctx, tx.DB(), merged)
	})
}

// BlockDate closes a date to new bookings. Bookings already on the date are
// left standing; cancelling them is a separate, deliberate act.
func (u *settingsUseCaseImpl) BlockDate(ctx context.Context, actor shared.Actor, day booking.Day) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().BlockDate(ctx, tx.DB(), day)
	})
}

func (u *settingsUseCaseImpl) UnblockDate(ctx context.Context, actor shared.Actor, day booking.Day) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Settings().UnblockDate(ctx, tx.DB(), day)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBlockedDateNotFound
		}
		return err
	})
}

// PublishAnnouncement replaces the active announcement; at most one is active
// at a time.
func (u *settingsUseCaseImpl) PublishAnnouncement(ctx context.Context, actor shared.Actor, message string) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyAnnouncement
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Settings().DeactivateAnnouncements(ctx, tx.DB()); err != nil {
			return err
		}
		_, err := tx.Settings().InsertAnnouncement(ctx, tx.DB(), message)
		return err
	})
}

func (u *settingsUseCaseImpl) ClearAnnouncement(ctx context.Context, actor shared.Actor) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().DeactivateAnnouncements(ctx, tx.DB())
	})
}
