package commands

import (
	"context"
	"errors"

	"flexin/internal/domain/booking"
	"flexin/internal/infra"
	"flexin/internal/pkg/errs"
	"flexin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDateBlocked        = errs.New("date is blocked for bookings")
	ErrDayNotAllowed      = errs.New("weekday is not open for bookings")
	ErrDayFull            = errs.New("day is fully booked")
	ErrDuplicateBooking   = errs.New("an active booking for this day already exists")
	ErrWeeklyLimitReached = errs.New("weekly booking limit reached")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrNotBookingOwner    = errs.New("booking belongs to another user")
	ErrBookingNotPending  = errs.New("booking is not pending approval")
	ErrBookingCancelled   = errs.New("booking is already cancelled")
	ErrAdminRequired      = errs.New("admin privileges required")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor shared.Actor, day booking.Day) (uuid.UUID, error)
	CancelBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error
	ApproveBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error
	RejectBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBookingUseCase(uow shared.UnitOfWork) BookingCommands {
	return &bookingUseCaseImpl{uow: uow}
}

// CreateBooking runs every admission rule and the insert in one serializable
// transaction, so two racing requests cannot both pass the capacity check.
// Rules fire in a fixed order: blocked date, closed weekday, day full,
// duplicate, weekly limit.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, actor shared.Actor, day booking.Day) (uuid.UUID, error) {
	var bookingID uuid.UUID

	err := u.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.Settings().Get(ctx, tx.DB())
		if err != nil {
			return err
		}

		blocked, err := tx.Settings().IsDayBlocked(ctx, tx.DB(), day)
		if err != nil {
			return err
		}
		if blocked {
			return ErrDateBlocked
		}

		if !cfg.AllowsWeekday(day.ISOWeekday()) {
			return ErrDayNotAllowed
		}

		occupied, err := tx.Bookings().CountActiveByDay(ctx, tx.DB(), day)
		if err != nil {
			return err
		}
		if occupied >= cfg.MaxBookingsPerDay {
			return ErrDayFull
		}

		exists, err := tx.Bookings().ExistsActiveByUserAndDay(ctx, tx.DB(), actor.ID, day)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateBooking
		}

		if cfg.MaxBookingsPerWeekPerUser != nil {
			weekStart := day.WeekStart()
			confirmed, err := tx.Bookings().CountConfirmedInRange(ctx, tx.DB(), actor.ID, weekStart, weekStart.AddDays(7))
			if err != nil {
				return err
			}
			if confirmed >= *cfg.MaxBookingsPerWeekPerUser {
				return ErrWeeklyLimitReached
			}
		}

		b := booking.NewBooking(actor.ID, day, cfg.RequireApprovalForBookings)
		bookingID, err = tx.Bookings().Create(ctx, tx.DB(), b)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrDuplicateBooking
		}
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

// CancelBooking flips the booking to cancelled, keeping the row for history.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if !b.IsOwnedBy(actor.ID) && !actor.IsAdmin() {
			return ErrNotBookingOwner
		}

		if err := b.Cancel(); err != nil {
			if errors.Is(err, booking.ErrAlreadyCancelled) {
				return ErrBookingCancelled
			}
			return err
		}
		return tx.Bookings().Save(ctx, tx.DB(), b)
	})
}

func (u *bookingUseCaseImpl) ApproveBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := b.Approve(); err != nil {
			return ErrBookingNotPending
		}
		return tx.Bookings().Save(ctx, tx.DB(), b)
	})
}

// RejectBooking removes the pending booking outright, releasing the slot it
// held while awaiting approval.
func (u *bookingUseCaseImpl) RejectBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if b.Status() != booking.StatusPending {
			return ErrBookingNotPending
		}
		return tx.Bookings().Delete(ctx, tx.DB(), b.ID())
	})
}
