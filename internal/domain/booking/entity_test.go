//go:build unit

package booking_test

import (
	"testing"

	"flexin/internal/domain/booking"
	"flexin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.False(t, actual.NeedsApproval())
		assert.True(t, actual.IsActive())
		assert.Equal(t, "2026-09-02", actual.Day().String())
	})

	t.Run("starts pending when approval is required", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithRequireApproval().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.True(t, actual.NeedsApproval())
		assert.True(t, actual.IsActive(), "a pending booking still holds a slot")
	})

	t.Run("ownership", func(t *testing.T) {
		ownerID := uuid.New()
		actual, err := builder.NewBookingBuilder().WithUserID(ownerID).BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsOwnedBy(ownerID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
	})
}

func TestBookingApprove(t *testing.T) {
	t.Run("approves a pending booking", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithRequireApproval().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Approve())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.False(t, b.NeedsApproval())
	})

	t.Run("rejects approval of a confirmed booking", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.Approve(), booking.ErrNotPending)
	})

	t.Run("rejects approval of a cancelled booking", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithRequireApproval().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel())

		assert.ErrorIs(t, b.Approve(), booking.ErrNotPending)
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("cancels confirmed and pending bookings", func(t *testing.T) {
		for _, mutate := range []func(*builder.BookingBuilder){
			func(*builder.BookingBuilder) {},
			func(b *builder.BookingBuilder) { b.WithRequireApproval() },
		} {
			b, err := builder.NewBookingBuilder().With(mutate).BuildDomain()
			require.NoError(t, err)

			require.NoError(t, b.Cancel())
			assert.Equal(t, booking.StatusCancelled, b.Status())
			assert.False(t, b.IsActive())
		}
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel())

		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	})
}

func TestBookingTransfer(t *testing.T) {
	t.Run("transfers an active booking to a new owner", func(t *testing.T) {
		newOwner := uuid.New()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.TransferTo(newOwner))
		assert.Equal(t, newOwner, b.UserID())
		assert.Equal(t, booking.StatusConfirmed, b.Status(), "status travels with the slot")
	})

	t.Run("pending booking keeps pending status after transfer", func(t *testing.T) {
		newOwner := uuid.New()
		b, err := builder.NewBookingBuilder().WithRequireApproval().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.TransferTo(newOwner))
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("rejects transfer of a cancelled booking", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel())

		assert.ErrorIs(t, b.TransferTo(uuid.New()), booking.ErrNotActive)
	})
}

func TestStatus(t *testing.T) {
	t.Run("parses valid statuses", func(t *testing.T) {
		for _, s := range []string{"confirmed", "pending", "cancelled"} {
			status, err := booking.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := booking.NewStatus("approved")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("only confirmed and pending count as active", func(t *testing.T) {
		assert.True(t, booking.StatusConfirmed.IsActive())
		assert.True(t, booking.StatusPending.IsActive())
		assert.False(t, booking.StatusCancelled.IsActive())
	})
}
