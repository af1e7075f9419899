package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotPending       = errors.New("booking is not pending approval")
	ErrNotActive        = errors.New("booking is not active")
)

// Booking is one claim on a day slot. Its status machine:
// pending -> confirmed (approval, or immediately when approval is off),
// pending|confirmed -> cancelled (owner or admin),
// pending -> removed (admin reject deletes the row).
// A confirmed booking never returns to pending.
type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	day           Day
	status        Status
	needsApproval bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a claim for userID on day. When requireApproval is set
// the booking starts pending and holds a slot until an admin decides.
func NewBooking(userID uuid.UUID, day Day, requireApproval bool) *Booking {
	status := StatusConfirmed
	if requireApproval {
		status = StatusPending
	}
	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		day:           day,
		status:        status,
		needsApproval: requireApproval,
	}
}

func ReconstructBooking(
	id, userID uuid.UUID,
	day Day,
	status Status,
	needsApproval bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		day:           day,
		status:        status,
		needsApproval: needsApproval,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) UserID() uuid.UUID   { return b.userID }
func (b *Booking) Day() Day            { return b.day }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) NeedsApproval() bool { return b.needsApproval }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) Approve() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	b.needsApproval = false
	return nil
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

// TransferTo reassigns the slot to a new owner. Only active bookings can be
// transferred; the status travels with the slot.
func (b *Booking) TransferTo(userID uuid.UUID) error {
	if !b.IsActive() {
		return ErrNotActive
	}
	b.userID = userID
	return nil
}
