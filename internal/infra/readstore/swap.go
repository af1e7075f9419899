package readstore

import (
	"context"
	"errors"
	"time"

	"flexin/internal/infra"
	"flexin/internal/infra/db"
	"flexin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SwapReadStore struct {
	db db.DBTX
}

func NewSwapReadStore(dbtx db.DBTX) *SwapReadStore {
	return &SwapReadStore{db: dbtx}
}

const swapViewQuery = `
	SELECT sr.id, sr.requester_id, req.name, sr.target_user_id, tgt.name,
	       sr.target_date, sr.status, sr.message, sr.created_at, sr.updated_at
	FROM swap_requests sr
	JOIN users req ON req.id = sr.requester_id
	JOIN users tgt ON tgt.id = sr.target_user_id`

func (s *SwapReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SwapRequestView, error) {
	rows, err := s.db.Query(ctx, swapViewQuery+` WHERE sr.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find swap request", err)
	}
	views, err := collectSwapViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.NewRepoErr(infra.KindNotFound, "swap request not found")
	}
	return views[0], nil
}

// ListForUser returns every request the user is party to, newest first.
func (s *SwapReadStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]*queries.SwapRequestView, error) {
	const cond = ` WHERE sr.requester_id = $1 OR sr.target_user_id = $1
	ORDER BY sr.created_at DESC`

	rows, err := s.db.Query(ctx, swapViewQuery+cond, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list swap requests", err)
	}
	return collectSwapViews(rows)
}

// ListPendingForTarget returns the requests awaiting the user's answer.
func (s *SwapReadStore) ListPendingForTarget(ctx context.Context, userID uuid.UUID) ([]*queries.SwapRequestView, error) {
	const cond = ` WHERE sr.target_user_id = $1 AND sr.status = 'pending'
	ORDER BY sr.created_at`

	rows, err := s.db.Query(ctx, swapViewQuery+cond, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending swap requests", err)
	}
	return collectSwapViews(rows)
}

func collectSwapViews(rows pgx.Rows) ([]*queries.SwapRequestView, error) {
	defer rows.Close()

	views := make([]*queries.SwapRequestView, 0)
	for rows.Next() {
		var (
			v          queries.SwapRequestView
			targetDate time.Time
		)
		err := rows.Scan(
			&v.ID, &v.RequesterID, &v.RequesterName, &v.TargetUserID, &v.TargetName,
			&targetDate, &v.Status, &v.Message, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, infra.NewRepoErr(infra.KindNotFound, "swap request not found")
			}
			return nil, infra.WrapRepoErr("failed to scan swap request view", err)
		}
		v.TargetDate = targetDate.Format("2006-01-02")
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read swap request views", err)
	}
	return views, nil
}
