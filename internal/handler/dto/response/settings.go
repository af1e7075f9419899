package response

import (
	"time"

	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnnouncementResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type SettingsResponse struct {
	MaxBookingsPerDay          int                   `json:"maxBookingsPerDay"`
	MaxBookingsPerWeekPerUser  *int                  `json:"maxBookingsPerWeekPerUser,omitempty"`
	AllowedDays                []int                 `json:"allowedDays"`
	RequireApprovalForBookings bool                  `json:"requireApprovalForBookings"`
	BlockedDates               []string              `json:"blockedDates"`
	Announcement               *AnnouncementResponse `json:"announcement,omitempty"`
}

func FromSettingsView(rm *queries.SettingsView) *SettingsResponse {
	resp := &SettingsResponse{
		MaxBookingsPerDay:          rm.MaxBookingsPerDay,
		MaxBookingsPerWeekPerUser:  rm.MaxBookingsPerWeekPerUser,
		AllowedDays:                rm.AllowedDays,
		RequireApprovalForBookings: rm.RequireApprovalForBookings,
		BlockedDates:               rm.BlockedDates,
	}
	if rm.Announcement != nil {
		resp.Announcement = &AnnouncementResponse{
			ID:        rm.Announcement.ID,
			Message:   rm.Announcement.Message,
			CreatedAt: rm.Announcement.CreatedAt,
		}
	}
	return resp
}
