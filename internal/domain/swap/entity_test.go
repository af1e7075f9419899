//go:build unit

package swap_test

import (
	"testing"

	"flexin/internal/domain/swap"
	"flexin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SwapRequestBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewSwapRequestBuilder().With(tc.mutate)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSwapRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, swap.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		assert.Equal(t, "2026-09-02", actual.TargetDay().String())
		require.NotNil(t, actual.Message())
		assert.Equal(t, "Could I take this day?", *actual.Message())
	})

	t.Run("target validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "distinct requester and target",
				mutate: func(*builder.SwapRequestBuilder) {},
			},
			{
				name:   "requester targeting themselves",
				mutate: func(b *builder.SwapRequestBuilder) { b.AsSelfSwap() },
				errIs:  swap.ErrSelfSwap,
			},
		})
	})

	t.Run("message is optional", func(t *testing.T) {
		actual, err := builder.NewSwapRequestBuilder().WithMessage(nil).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.Message())
	})

	t.Run("addressing", func(t *testing.T) {
		requesterID := uuid.New()
		targetID := uuid.New()
		actual, err := builder.NewSwapRequestBuilder().
			WithRequesterID(requesterID).
			WithTargetUserID(targetID).
			BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsRequestedBy(requesterID))
		assert.False(t, actual.IsRequestedBy(targetID))
		assert.True(t, actual.IsAddressedTo(targetID))
		assert.False(t, actual.IsAddressedTo(requesterID))
	})
}

func TestRequestResolution(t *testing.T) {
	t.Run("approve resolves a pending request", func(t *testing.T) {
		req, err := builder.NewSwapRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Approve())
		assert.Equal(t, swap.StatusApproved, req.Status())
		assert.False(t, req.IsPending())
	})

	t.Run("reject resolves a pending request", func(t *testing.T) {
		req, err := builder.NewSwapRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Reject())
		assert.Equal(t, swap.StatusRejected, req.Status())
	})

	t.Run("a resolved request stays resolved", func(t *testing.T) {
		req, err := builder.NewSwapRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Approve())

		assert.ErrorIs(t, req.Approve(), swap.ErrAlreadyResolved)
		assert.ErrorIs(t, req.Reject(), swap.ErrAlreadyResolved)
		assert.Equal(t, swap.StatusApproved, req.Status())
	})
}

func TestSwapStatus(t *testing.T) {
	t.Run("parses valid statuses", func(t *testing.T) {
		for _, s := range []string{"pending", "approved", "rejected"} {
			status, err := swap.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := swap.NewStatus("withdrawn")
		assert.ErrorIs(t, err, swap.ErrInvalidStatus)
	})
}
