package readstore

import (
	"context"

	"itemshare/internal/infra"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectCommentsByItemIDsQuery = `
SELECT c.id, c.item_id, c.text, u.name AS author_name, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = ANY($1)
ORDER BY c.created_at`

type CommentReadStore struct {
	pool *pgxpool.Pool
}

func NewCommentReadStore(pool *pgxpool.Pool) *CommentReadStore {
	return &CommentReadStore{pool: pool}
}

func (s *CommentReadStore) FindByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := s.pool.Query(ctx, selectCommentsByItemIDsQuery, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query comments", err)
	}
	defer rows.Close()

	views := make([]*queries.CommentView, 0)
	for rows.Next() {
		var view queries.CommentView
		if err := rows.Scan(&view.ID, &view.ItemID, &view.Text, &view.AuthorName, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return views, nil
}
