package commands

import (
	"context"
	"errors"

	"flexin/internal/domain/booking"
	"flexin/internal/domain/swap"
	"flexin/internal/infra"
	"flexin/internal/pkg/errs"
	"flexin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSwapNotFound        = errs.New("swap request not found")
	ErrSwapSelfTarget      = errs.New("cannot request a swap with yourself")
	ErrSwapTargetNotBooked = errs.New("target user has no active booking on that day")
	ErrSwapAlreadyResolved = errs.New("swap request is already resolved")
	ErrNotSwapRequester    = errs.New("swap request belongs to another requester")
	ErrNotSwapTarget       = errs.New("swap request is addressed to another user")
)

type SwapCommands interface {
	CreateSwapRequest(ctx context.Context, actor shared.Actor, targetUserID uuid.UUID, targetDay booking.Day, message *string) (uuid.UUID, error)
	WithdrawSwapRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error
	ApproveSwapRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error
	RejectSwapRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error
}

type swapUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewSwapUseCase(uow shared.UnitOfWork) SwapCommands {
	return &swapUseCaseImpl{uow: uow}
}

// CreateSwapRequest records a pending proposal to take over the target's
// booked day. It validates against current state but reserves nothing; the
// booking only moves on approval.
func (u *swapUseCaseImpl) CreateSwapRequest(ctx context.Context, actor shared.Actor, targetUserID uuid.UUID, targetDay booking.Day, message *string) (uuid.UUID, error) {
	var requestID uuid.UUID

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := swap.NewRequest(actor.ID, targetUserID, targetDay, message)
		if err != nil {
			if errors.Is(err, swap.ErrSelfSwap) {
				return ErrSwapSelfTarget
			}
			return err
		}

		booked, err := tx.Bookings().ExistsActiveByUserAndDay(ctx, tx.DB(), targetUserID, targetDay)
		if err != nil {
			return err
		}
		if !booked {
			return ErrSwapTargetNotBooked
		}

		// The requester must be admissible on that day; a swap must not
		// become a side door around the duplicate rule.
		dup, err := tx.Bookings().ExistsActiveByUserAndDay(ctx, tx.DB(), actor.ID, targetDay)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateBooking
		}

		// Same goes for the weekly cap: the request is refused up front
		// rather than left to fail at approval time.
		cfg, err := tx.Settings().Get(ctx, tx.DB())
		if err != nil {
			return err
		}
		if cfg.MaxBookingsPerWeekPerUser != nil {
			weekStart := targetDay.WeekStart()
			confirmed, err := tx.Bookings().CountConfirmedInRange(ctx, tx.DB(), actor.ID, weekStart, weekStart.AddDays(7))
			if err != nil {
				return err
			}
			if confirmed >= *cfg.MaxBookingsPerWeekPerUser {
				return ErrWeeklyLimitReached
			}
		}

		requestID, err = tx.Swaps().Create(ctx, tx.DB(), req)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return requestID, nil
}

// WithdrawSwapRequest deletes a pending request. Resolved requests stay for
// the stats rollups and cannot be withdrawn.
func (u *swapUseCaseImpl) WithdrawSwapRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Swaps().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSwapNotFound
			}
			return err
		}

		if !req.IsRequestedBy(actor.ID) {
			return ErrNotSwapRequester
		}
		if !req.IsPending() {
			return ErrSwapAlreadyResolved
		}
		return tx.Swaps().Delete(ctx, tx.DB(), req.ID())
	})
}

// ApproveSwapRequest resolves the request and moves the booking to the
// requester in one serializable transaction. If the underlying booking is
// gone the whole approval fails and the request stays pending.
func (u *swapUseCaseImpl) ApproveSwapRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error {
	return u.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Swaps().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSwapNotFound
			}
			return err
		}

		if !req.IsAddressedTo(actor.ID) {
			return ErrNotSwapTarget
		}
		if err := req.Approve(); err != nil {
			return ErrSwapAlreadyResolved
		}

		b, err := tx.Bookings().FindActiveByUserAndDayForUpdate(ctx, tx.DB(), req.TargetUserID(), req.TargetDay())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSwapTargetNotBooked
			}
			return err
		}

		// The requester may have booked the day on their own since the
		// request was made.
		dup, err := tx.Bookings().ExistsActiveByUserAndDay(ctx, tx.DB(), req.RequesterID(), req.TargetDay())
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateBooking
		}

		if err := b.TransferTo(req.RequesterID()); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
			return err
		}
		return tx.Swaps().UpdateStatus(ctx, tx.DB(), req)
	})
}

// RejectSwapRequest flips the request to rejected; the booking is untouched.
func (u *swapUseCaseImpl) RejectSwapRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Swaps().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSwapNotFound
			}
			return err
		}

		if !req.IsAddressedTo(actor.ID) {
			return ErrNotSwapTarget
		}
		if err := req.Reject(); err != nil {
			return ErrSwapAlreadyResolved
		}
		return tx.Swaps().UpdateStatus(ctx, tx.DB(), req)
	})
}
