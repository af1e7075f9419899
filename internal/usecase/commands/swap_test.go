//go:build unit

package commands_test

import (
	"context"
	"testing"

	"flexin/internal/domain/settings"
	"flexin/internal/domain/swap"
	"flexin/internal/infra"
	"flexin/internal/usecase/commands"
	"flexin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingRequest(t *testing.T, requesterID, targetID uuid.UUID) *swap.Request {
	t.Helper()
	req, err := builder.NewSwapRequestBuilder().
		WithRequesterID(requesterID).
		WithTargetUserID(targetID).
		BuildDomain()
	require.NoError(t, err)
	return req
}

func TestCreateSwapRequest(t *testing.T) {
	ctx := context.Background()
	day := mustDay(t, "2026-09-02")

	t.Run("success: records a pending request", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		actor := memberActor()
		targetID := uuid.New()
		wantID := uuid.New()

		f.bookings.EXPECT().ExistsActiveByUserAndDay(gomock.Any(), gomock.Any(), targetID, day).Return(true, nil)
		f.bookings.EXPECT().ExistsActiveByUserAndDay(gomock.Any(), gomock.Any(), actor.ID, day).Return(false, nil)
		f.settings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(settings.Default(), nil)
		f.bookings.EXPECT().CountConfirmedInRange(gomock.Any(), gomock.Any(), actor.ID, gomock.Any(), gomock.Any()).Return(1, nil)
		f.swaps.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, req *swap.Request) (uuid.UUID, error) {
				assert.Equal(t, actor.ID, req.RequesterID())
				assert.Equal(t, targetID, req.TargetUserID())
				assert.True(t, req.IsPending())
				return wantID, nil
			})

		id, err := uc.CreateSwapRequest(ctx, actor, targetID, day, nil)
		require.NoError(t, err)
		assert.Equal(t, wantID, id)
	})

	t.Run("error: targeting yourself", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		actor := memberActor()

		_, err := uc.CreateSwapRequest(ctx, actor, actor.ID, day, nil)
		assert.ErrorIs(t, err, commands.ErrSwapSelfTarget)
	})

	t.Run("error: target has no booking on that day", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		actor := memberActor()
		targetID := uuid.New()

		f.bookings.EXPECT().ExistsActiveByUserAndDay(gomock.Any(), gomock.Any(), targetID, day).Return(false, nil)

		_, err := uc.CreateSwapRequest(ctx, actor, targetID, day, nil)
		assert.ErrorIs(t, err, commands.ErrSwapTargetNotBooked)
	})

	t.Run("error: requester already booked that day", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		actor := memberActor()
		targetID := uuid.New()

		f.bookings.EXPECT().ExistsActiveByUserAndDay(gomock.Any(), gomock.Any(), targetID, day).Return(true, nil)
		f.bookings.EXPECT().ExistsActiveByUserAndDay(gomock.Any(), gomock.Any(), actor.ID, day).Return(true, nil)

		_, err := uc.CreateSwapRequest(ctx, actor, targetID, day, nil)
		assert.ErrorIs(t, err, commands.ErrDuplicateBooking)
	})

	t.Run("error: weekly cap refuses a new request up front", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		actor := memberActor()
		targetID := uuid.New()

		f.bookings.EXPECT().ExistsActiveByUserAndDay(gomock.Any(), gomock.Any(), targetID, day).Return(true, nil)
		f.bookings.EXPECT().ExistsActiveByUserAndDay(gomock.Any(), gomock.Any(), actor.ID, day).Return(false, nil)
		f.settings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(settings.Default(), nil)
		f.bookings.EXPECT().CountConfirmedInRange(gomock.Any(), gomock.Any(), actor.ID, mustDay(t, "2026-08-31"), mustDay(t, "2026-09-07")).Return(2, nil)

		_, err := uc.CreateSwapRequest(ctx, actor, targetID, day, nil)
		assert.ErrorIs(t, err, commands.ErrWeeklyLimitReached)
	})
}

func TestApproveSwapRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("success: booking moves to the requester with the request resolution", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		target := memberActor()
		requesterID := uuid.New()
		req := pendingRequest(t, requesterID, target.ID)
		b, err := builder.NewBookingBuilder().WithUserID(target.ID).BuildDomain()
		require.NoError(t, err)

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		f.bookings.EXPECT().FindActiveByUserAndDayForUpdate(gomock.Any(), gomock.Any(), target.ID, req.TargetDay()).Return(b, nil)
		f.bookings.EXPECT().ExistsActiveByUserAndDay(gomock.Any(), gomock.Any(), requesterID, req.TargetDay()).Return(false, nil)
		f.bookings.EXPECT().Save(gomock.Any(), gomock.Any(), b).Return(nil)
		f.swaps.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), req).Return(nil)

		require.NoError(t, uc.ApproveSwapRequest(ctx, target, req.ID()))
		assert.Equal(t, requesterID, b.UserID(), "ownership transfers on approval")
		assert.Equal(t, swap.StatusApproved, req.Status())
	})

	t.Run("error: only the target can approve", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		req := pendingRequest(t, uuid.New(), uuid.New())

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)

		err := uc.ApproveSwapRequest(ctx, memberActor(), req.ID())
		assert.ErrorIs(t, err, commands.ErrNotSwapTarget)
	})

	t.Run("error: request already resolved", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		target := memberActor()
		req := pendingRequest(t, uuid.New(), target.ID)
		require.NoError(t, req.Reject())

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)

		err := uc.ApproveSwapRequest(ctx, target, req.ID())
		assert.ErrorIs(t, err, commands.ErrSwapAlreadyResolved)
	})

	t.Run("error: the booked day is gone", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		target := memberActor()
		req := pendingRequest(t, uuid.New(), target.ID)

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		f.bookings.EXPECT().FindActiveByUserAndDayForUpdate(gomock.Any(), gomock.Any(), target.ID, req.TargetDay()).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "booking not found"))

		err := uc.ApproveSwapRequest(ctx, target, req.ID())
		assert.ErrorIs(t, err, commands.ErrSwapTargetNotBooked)
	})

	t.Run("error: requester booked the day on their own since", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		target := memberActor()
		requesterID := uuid.New()
		req := pendingRequest(t, requesterID, target.ID)
		b, err := builder.NewBookingBuilder().WithUserID(target.ID).BuildDomain()
		require.NoError(t, err)

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		f.bookings.EXPECT().FindActiveByUserAndDayForUpdate(gomock.Any(), gomock.Any(), target.ID, req.TargetDay()).Return(b, nil)
		f.bookings.EXPECT().ExistsActiveByUserAndDay(gomock.Any(), gomock.Any(), requesterID, req.TargetDay()).Return(true, nil)

		err = uc.ApproveSwapRequest(ctx, target, req.ID())
		assert.ErrorIs(t, err, commands.ErrDuplicateBooking)
		assert.Equal(t, target.ID, b.UserID(), "booking stays with the target")
	})
}

func TestWithdrawSwapRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("success: requester withdraws a pending request", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		actor := memberActor()
		req := pendingRequest(t, actor.ID, uuid.New())

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		f.swaps.EXPECT().Delete(gomock.Any(), gomock.Any(), req.ID()).Return(nil)

		require.NoError(t, uc.WithdrawSwapRequest(ctx, actor, req.ID()))
	})

	t.Run("error: only the requester can withdraw", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		req := pendingRequest(t, uuid.New(), uuid.New())

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)

		err := uc.WithdrawSwapRequest(ctx, memberActor(), req.ID())
		assert.ErrorIs(t, err, commands.ErrNotSwapRequester)
	})

	t.Run("error: resolved requests stay for the records", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		actor := memberActor()
		req := pendingRequest(t, actor.ID, uuid.New())
		require.NoError(t, req.Approve())

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)

		err := uc.WithdrawSwapRequest(ctx, actor, req.ID())
		assert.ErrorIs(t, err, commands.ErrSwapAlreadyResolved)
	})

	t.Run("error: request not found", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		id := uuid.New()

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "swap request not found"))

		err := uc.WithdrawSwapRequest(ctx, memberActor(), id)
		assert.ErrorIs(t, err, commands.ErrSwapNotFound)
	})
}

func TestRejectSwapRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("success: target rejects, booking untouched", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		target := memberActor()
		req := pendingRequest(t, uuid.New(), target.ID)

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)
		f.swaps.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), req).Return(nil)

		require.NoError(t, uc.RejectSwapRequest(ctx, target, req.ID()))
		assert.Equal(t, swap.StatusRejected, req.Status())
	})

	t.Run("error: only the target can reject", func(t *testing.T) {
		f := newTxFixture(t)
		uc := commands.NewSwapUseCase(f.uow)
		req := pendingRequest(t, uuid.New(), uuid.New())

		f.swaps.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), req.ID()).Return(req, nil)

		err := uc.RejectSwapRequest(ctx, memberActor(), req.ID())
		assert.ErrorIs(t, err, commands.ErrNotSwapTarget)
	})
}
