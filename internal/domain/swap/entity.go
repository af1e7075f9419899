package swap

import (
	"errors"
	"time"

	"flexin/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrSelfSwap        = errors.New("cannot request a swap with yourself")
	ErrInvalidStatus   = errors.New("invalid swap request status")
	ErrAlreadyResolved = errors.New("swap request is already resolved")
)

// Request is a proposal to take over the target user's booked day. While
// pending it reserves nothing; it only becomes effective when the target
// approves and the underlying booking is transferred in the same transaction.
// Once resolved the request is immutable apart from its timestamps.
type Request struct {
	id           uuid.UUID
	requesterID  uuid.UUID
	targetUserID uuid.UUID
	targetDay    booking.Day
	status       Status
	message      *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRequest(requesterID, targetUserID uuid.UUID, targetDay booking.Day, message *string) (*Request, error) {
	if requesterID == targetUserID {
		return nil, ErrSelfSwap
	}
	return &Request{
		id:           uuid.New(),
		requesterID:  requesterID,
		targetUserID: targetUserID,
		targetDay:    targetDay,
		status:       StatusPending,
		message:      message,
	}, nil
}

func ReconstructRequest(
	id, requesterID, targetUserID uuid.UUID,
	targetDay booking.Day,
	status Status,
	message *string,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:           id,
		requesterID:  requesterID,
		targetUserID: targetUserID,
		targetDay:    targetDay,
		status:       status,
		message:      message,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) RequesterID() uuid.UUID  { return r.requesterID }
func (r *Request) TargetUserID() uuid.UUID { return r.targetUserID }
func (r *Request) TargetDay() booking.Day  { return r.targetDay }
func (r *Request) Status() Status          { return r.status }
func (r *Request) Message() *string        { return r.message }
func (r *Request) CreatedAt() time.Time    { return r.createdAt }
func (r *Request) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Request) IsPending() bool {
	return r.status == StatusPending
}

func (r *Request) IsAddressedTo(userID uuid.UUID) bool {
	return r.targetUserID == userID
}

func (r *Request) IsRequestedBy(userID uuid.UUID) bool {
	return r.requesterID == userID
}

func (r *Request) Approve() error {
	if r.status != StatusPending {
		return ErrAlreadyResolved
	}
	r.status = StatusApproved
	return nil
}

func (r *Request) Reject() error {
	if r.status != StatusPending {
		return ErrAlreadyResolved
	}
	r.status = StatusRejected
	return nil
}
