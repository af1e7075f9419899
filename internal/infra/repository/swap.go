package repository

import (
	"context"
	"errors"
	"time"

	"flexin/internal/domain/booking"
	"flexin/internal/domain/swap"
	"flexin/internal/infra"
	"flexin/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SwapRepository struct{}

func NewSwapRepository() *SwapRepository {
	return &SwapRepository{}
}

func (r *SwapRepository) Create(ctx context.Context, tx db.DBTX, req *swap.Request) (uuid.UUID, error) {
	const q = `
		INSERT INTO swap_requests (id, requester_id, target_user_id, target_date, status, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		req.ID(), req.RequesterID(), req.TargetUserID(), req.TargetDay().Time(), req.Status().String(), req.Message(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create swap request", err)
	}
	return id, nil
}

func (r *SwapRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*swap.Request, error) {
	const q = `
		SELECT id, requester_id, target_user_id, target_date, status, message, created_at, updated_at
		FROM swap_requests
		WHERE id = $1`

	return scanSwapRequest(tx.QueryRow(ctx, q, id))
}

// FindByIDForUpdate locks the request so two responders cannot resolve it
// concurrently.
func (r *SwapRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*swap.Request, error) {
	const q = `
		SELECT id, requester_id, target_user_id, target_date, status, message, created_at, updated_at
		FROM swap_requests
		WHERE id = $1
		FOR UPDATE`

	return scanSwapRequest(tx.QueryRow(ctx, q, id))
}

func (r *SwapRepository) UpdateStatus(ctx context.Context, tx db.DBTX, req *swap.Request) error {
	const q = `
		UPDATE swap_requests
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, req.ID(), req.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update swap request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "swap request not found")
	}
	return nil
}

// Delete removes a withdrawn request. Resolved requests are kept for the
// stats rollups.
func (r *SwapRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM swap_requests WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete swap request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "swap request not found")
	}
	return nil
}

func scanSwapRequest(row pgx.Row) (*swap.Request, error) {
	var (
		id           uuid.UUID
		requesterID  uuid.UUID
		targetUserID uuid.UUID
		targetDate   time.Time
		statusStr    string
		message      *string
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &requesterID, &targetUserID, &targetDate, &statusStr, &message, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "swap request not found")
		}
		return nil, infra.WrapRepoErr("failed to scan swap request", err)
	}

	status, err := swap.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid swap request status in store", err)
	}

	return swap.ReconstructRequest(id, requesterID, targetUserID, booking.NewDay(targetDate), status, message, createdAt, updatedAt), nil
}
