package repository

import (
	"context"

	"itemshare/internal/domain/comment"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

const insertCommentQuery = `
INSERT INTO comments (id, item_id, author_id, text, created_at)
VALUES ($1, $2, $3, $4, $5)`

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	_, err := r.pool.Exec(ctx, insertCommentQuery,
		c.ID(), c.ItemID(), c.AuthorID(), c.Text(), pgconv.TimeToPgtype(c.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert comment", err)
	}
	return nil
}
