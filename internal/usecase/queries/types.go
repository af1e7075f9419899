package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	NeedsApproval bool      `json:"needs_approval"`
	CreatedAt     time.Time `json:"created_at"`
}

type DayCapacityView struct {
	Date      string         `json:"date"`
	Bookings  []*BookingView `json:"bookings"`
	Capacity  int            `json:"capacity"`
	Available int            `json:"available"`
}

type SwapRequestView struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	TargetUserID  uuid.UUID `json:"target_user_id"`
	TargetName    string    `json:"target_name"`
	TargetDate    string    `json:"target_date"`
	Status        string    `json:"status"`
	Message       *string   `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UserStatsView struct {
	UserID            uuid.UUID `json:"user_id"`
	TotalBookings     int       `json:"total_bookings"`
	ConfirmedBookings int       `json:"confirmed_bookings"`
	PendingBookings   int       `json:"pending_bookings"`
	CancelledBookings int       `json:"cancelled_bookings"`
	SwapsRequested    int       `json:"swaps_requested"`
	SwapsReceived     int       `json:"swaps_received"`
	SwapsApproved     int       `json:"swaps_approved"`
	SwapsRejected     int       `json:"swaps_rejected"`
}

type AnnouncementView struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type SettingsView struct {
	MaxBookingsPerDay          int               `json:"max_bookings_per_day"`
	MaxBookingsPerWeekPerUser  *int              `json:"max_bookings_per_week_per_user,omitempty"`
	AllowedDays                []int             `json:"allowed_days"`
	RequireApprovalForBookings bool              `json:"require_approval_for_bookings"`
	BlockedDates               []string          `json:"blocked_dates"`
	Announcement               *AnnouncementView `json:"announcement,omitempty"`
}

type UserView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	IsAdmin        bool       `json:"is_admin"`
	DepartmentID   *uuid.UUID `json:"department_id,omitempty"`
	DepartmentName *string    `json:"department_name,omitempty"`
	AvatarURL      *string    `json:"avatar_url,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AuthorizedUserView is the minimal identity the auth flow needs.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Verified bool      `json:"verified"`
}
