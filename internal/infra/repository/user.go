package repository

import (
	"context"

	"itemshare/internal/domain/user"
	"itemshare/internal/infra"
	"itemshare/internal/infra/db"
	"itemshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertUserQuery = `INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`

	updateUserQuery = `UPDATE users SET name = $2, email = $3 WHERE id = $1`

	deleteUserQuery = `DELETE FROM users WHERE id = $1`

	selectUserQuery = `SELECT id, name, email FROM users WHERE id = $1`

	existsUserQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx, insertUserQuery, u.ID(), u.Name(), u.Email())
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already in use", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.pool.Exec(ctx, updateUserQuery, u.ID(), u.Name(), u.Email())
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already in use", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var (
		uid         uuid.UUID
		name, email string
	)
	err := r.pool.QueryRow(ctx, selectUserQuery, id).Scan(&uid, &name, &email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return user.Reconstruct(uid, name, email), nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, existsUserQuery, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}
