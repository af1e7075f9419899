//go:build unit || e2e

package builder

import (
	"time"

	domswap "flexin/internal/domain/swap"
	reqdto "flexin/internal/handler/dto/request"
	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
)

type SwapRequestBuilder struct {
	RequesterID   uuid.UUID
	RequesterName string
	TargetUserID  uuid.UUID
	TargetName    string
	TargetDate    string
	Message       *string
	Status        domswap.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewSwapRequestBuilder() *SwapRequestBuilder {
	now := time.Now()
	msg := "Could I take this day?"
	return &SwapRequestBuilder{
		RequesterID:   uuid.New(),
		RequesterName: "Taro Yamada",
		TargetUserID:  uuid.New(),
		TargetName:    "Hanako Sato",
		TargetDate:    "2026-09-02",
		Message:       &msg,
		Status:        domswap.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *SwapRequestBuilder) With(mutate func(*SwapRequestBuilder)) *SwapRequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SwapRequestBuilder) BuildDomain() (*domswap.Request, error) {
	day, err := dayFromString(b.TargetDate)
	if err != nil {
		return nil, err
	}
	return domswap.NewRequest(b.RequesterID, b.TargetUserID, day, b.Message)
}

func (b *SwapRequestBuilder) BuildCreateRequestDTO() reqdto.CreateSwapRequest {
	return reqdto.CreateSwapRequest{
		TargetUserID: b.TargetUserID,
		Date:         b.TargetDate,
		Message:      b.Message,
	}
}

func (b *SwapRequestBuilder) BuildView() *queries.SwapRequestView {
	return &queries.SwapRequestView{
		ID:            uuid.New(),
		RequesterID:   b.RequesterID,
		RequesterName: b.RequesterName,
		TargetUserID:  b.TargetUserID,
		TargetName:    b.TargetName,
		TargetDate:    b.TargetDate,
		Status:        b.Status.String(),
		Message:       b.Message,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *SwapRequestBuilder) WithRequesterID(id uuid.UUID) *SwapRequestBuilder {
	b.RequesterID = id
	return b
}

func (b *SwapRequestBuilder) WithTargetUserID(id uuid.UUID) *SwapRequestBuilder {
	b.TargetUserID = id
	return b
}

func (b *SwapRequestBuilder) WithTargetDate(date string) *SwapRequestBuilder {
	b.TargetDate = date
	return b
}

func (b *SwapRequestBuilder) WithMessage(message *string) *SwapRequestBuilder {
	b.Message = message
	return b
}

func (b *SwapRequestBuilder) WithStatus(status domswap.Status) *SwapRequestBuilder {
	b.Status = status
	return b
}

func (b *SwapRequestBuilder) AsSelfSwap() *SwapRequestBuilder {
	b.TargetUserID = b.RequesterID
	return b
}
