package response

import (
	"time"

	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SwapRequestResponse struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   uuid.UUID `json:"requesterId"`
	RequesterName string    `json:"requesterName"`
	TargetUserID  uuid.UUID `json:"targetUserId"`
	TargetName    string    `json:"targetName"`
	TargetDate    string    `json:"targetDate"`
	Status        string    `json:"status"`
	Message       *string   `json:"message,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromSwapRequestView(rm *queries.SwapRequestView) *SwapRequestResponse {
	var resp SwapRequestResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromSwapRequestViews(rms []*queries.SwapRequestView) []*SwapRequestResponse {
	resp := make([]*SwapRequestResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromSwapRequestView(rm)
	}
	return resp
}
