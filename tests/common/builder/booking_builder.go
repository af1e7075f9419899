//go:build unit || e2e

package builder

import (
	"time"

	dombooking "flexin/internal/domain/booking"
	reqdto "flexin/internal/handler/dto/request"
	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID          uuid.UUID
	UserName        string
	Date            string
	RequireApproval bool
	Status          dombooking.Status
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:   uuid.New(),
		UserName: "Taro Yamada",
		// A Wednesday, inside the default allowed weekdays.
		Date:      "2026-09-02",
		Status:    dombooking.StatusConfirmed,
		CreatedAt: time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	day, err := dombooking.ParseDay(b.Date)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.UserID, day, b.RequireApproval), nil
}

func (b *BookingBuilder) BuildDay() (dombooking.Day, error) {
	return dombooking.ParseDay(b.Date)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Date: b.Date,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		UserID:        b.UserID,
		UserName:      b.UserName,
		Date:          b.Date,
		Status:        b.Status.String(),
		NeedsApproval: b.RequireApproval,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildDayCapacityView(capacity int, occupants ...*queries.BookingView) *queries.DayCapacityView {
	available := capacity - len(occupants)
	if available < 0 {
		available = 0
	}
	return &queries.DayCapacityView{
		Date:      b.Date,
		Bookings:  occupants,
		Capacity:  capacity,
		Available: available,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithUserName(name string) *BookingBuilder {
	b.UserName = name
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithRequireApproval() *BookingBuilder {
	b.RequireApproval = true
	b.Status = dombooking.StatusPending
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = dombooking.StatusCancelled
	return b
}
