package commands

import (
	"context"

	"itemshare/internal/domain/user"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateUserCommand struct {
	Name  string
	Email string
}

type PatchUserCommand struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, cmd CreateUserCommand) (*queries.UserView, error)
	Update(ctx context.Context, userID uuid.UUID, cmd PatchUserCommand) (*queries.UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	users UserRepository
}

func NewUserCommands(users UserRepository) UserCommands {
	return &userCommandsImpl{users: users}
}

func (c *userCommandsImpl) Create(ctx context.Context, cmd CreateUserCommand) (*queries.UserView, error) {
	entity, err := user.New(cmd.Name, cmd.Email)
	if err != nil {
		return nil, err
	}

	if err := c.users.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrDuplicateEmail
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return userToView(entity), nil
}

func (c *userCommandsImpl) Update(ctx context.Context, userID uuid.UUID, cmd PatchUserCommand) (*queries.UserView, error) {
	entity, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	if err := entity.Patch(cmd.Name, cmd.Email); err != nil {
		return nil, err
	}

	if err := c.users.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrDuplicateEmail
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return userToView(entity), nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := c.users.Delete(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

func userToView(entity *user.User) *queries.UserView {
	return &queries.UserView{
		ID:    entity.ID(),
		Name:  entity.Name(),
		Email: entity.Email(),
	}
}
