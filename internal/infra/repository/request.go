package repository

import (
	"context"

	"itemshare/internal/domain/request"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertRequestQuery = `
INSERT INTO requests (id, requester_id, description, created_at)
VALUES ($1, $2, $3, $4)`

	existsRequestQuery = `SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`
)

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	_, err := r.pool.Exec(ctx, insertRequestQuery,
		req.ID(), req.RequesterID(), req.Description(), pgconv.TimeToPgtype(req.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert request", err)
	}
	return nil
}

func (r *RequestRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, existsRequestQuery, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check request existence", err)
	}
	return exists, nil
}
