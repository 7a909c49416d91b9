package readstore

import (
	"context"

	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemViewColumns = `id, owner_id, name, description, available, request_id FROM items`

const (
	selectItemViewQuery = `SELECT ` + itemViewColumns + ` WHERE id = $1`

	selectItemsByOwnerQuery = `SELECT ` + itemViewColumns + ` WHERE owner_id = $1 ORDER BY id`

	searchItemsQuery = `SELECT ` + itemViewColumns + `
WHERE available AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')`

	selectItemsByRequestIDsQuery = `SELECT ` + itemViewColumns + ` WHERE request_id = ANY($1)`
)

type ItemReadStore struct {
	pool *pgxpool.Pool
}

func NewItemReadStore(pool *pgxpool.Pool) *ItemReadStore {
	return &ItemReadStore{pool: pool}
}

func (s *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row := s.pool.QueryRow(ctx, selectItemViewQuery, id)
	view, err := scanItemView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return view, nil
}

func (s *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	return s.findMany(ctx, selectItemsByOwnerQuery, ownerID)
}

func (s *ItemReadStore) Search(ctx context.Context, text string) ([]*queries.ItemView, error) {
	return s.findMany(ctx, searchItemsQuery, text)
}

func (s *ItemReadStore) FindByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*queries.ItemView, error) {
	return s.findMany(ctx, selectItemsByRequestIDsQuery, requestIDs)
}

func (s *ItemReadStore) findMany(ctx context.Context, query string, arg any) ([]*queries.ItemView, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query items", err)
	}
	defer rows.Close()

	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return views, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var (
		view      queries.ItemView
		requestID pgtype.UUID
	)
	err := row.Scan(&view.ID, &view.OwnerID, &view.Name, &view.Description, &view.Available, &requestID)
	if err != nil {
		return nil, err
	}
	view.RequestID = pgconv.UUIDPtrFromPgtype(requestID)
	return &view, nil
}
