package readstore

import (
	"context"

	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestViewColumns = `id, requester_id, description, created_at FROM requests`

const (
	selectRequestViewQuery = `SELECT ` + requestViewColumns + ` WHERE id = $1`

	selectRequestsByRequesterQuery = `SELECT ` + requestViewColumns + `
WHERE requester_id = $1 ORDER BY created_at DESC`

	selectRequestsExceptQuery = `SELECT ` + requestViewColumns + `
WHERE requester_id <> $1 ORDER BY created_at DESC`
)

type RequestReadStore struct {
	pool *pgxpool.Pool
}

func NewRequestReadStore(pool *pgxpool.Pool) *RequestReadStore {
	return &RequestReadStore{pool: pool}
}

func (s *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row := s.pool.QueryRow(ctx, selectRequestViewQuery, id)
	view, err := scanRequestView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by id", err)
	}
	return view, nil
}

func (s *RequestReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	return s.findMany(ctx, selectRequestsByRequesterQuery, requesterID)
}

func (s *RequestReadStore) FindAllExcept(ctx context.Context, userID uuid.UUID) ([]*queries.RequestView, error) {
	return s.findMany(ctx, selectRequestsExceptQuery, userID)
}

func (s *RequestReadStore) findMany(ctx context.Context, query string, arg any) ([]*queries.RequestView, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query requests", err)
	}
	defer rows.Close()

	views := make([]*queries.RequestView, 0)
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}
	return views, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var view queries.RequestView
	err := row.Scan(&view.ID, &view.RequesterID, &view.Description, &view.CreatedAt)
	if err != nil {
		return nil, err
	}
	view.Items = make([]*queries.ItemView, 0)
	return &view, nil
}
