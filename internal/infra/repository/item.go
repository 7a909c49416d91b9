package repository

import (
	"context"

	"itemshare/internal/domain/item"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertItemQuery = `
INSERT INTO items (id, owner_id, name, description, available, request_id)
VALUES ($1, $2, $3, $4, $5, $6)`

	updateItemQuery = `
UPDATE items SET name = $2, description = $3, available = $4 WHERE id = $1`

	selectItemQuery = `
SELECT id, owner_id, name, description, available, request_id
FROM items WHERE id = $1`
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) error {
	_, err := r.pool.Exec(ctx, insertItemQuery,
		i.ID(), i.OwnerID(), i.Name(), i.Description(), i.Available(),
		pgconv.UUIDPtrToPgtype(i.RequestID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	tag, err := r.pool.Exec(ctx, updateItemQuery,
		i.ID(), i.Name(), i.Description(), i.Available(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	var (
		iid, ownerID      uuid.UUID
		name, description string
		available         bool
		requestID         pgtype.UUID
	)
	err := r.pool.QueryRow(ctx, selectItemQuery, id).
		Scan(&iid, &ownerID, &name, &description, &available, &requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return item.Reconstruct(iid, ownerID, name, description, available, pgconv.UUIDPtrFromPgtype(requestID)), nil
}
