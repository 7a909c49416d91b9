package commands

import (
	"context"

	"itemshare/internal/domain/request"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	requests RequestRepository
	users    UserRepository
	clock    clock.Clock
}

func NewRequestCommands(requests RequestRepository, users UserRepository, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{requests: requests, users: users, clock: clk}
}

func (c *requestCommandsImpl) Create(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error) {
	exists, err := c.users.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	entity, err := request.New(requesterID, description, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.requests.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	return &queries.RequestView{
		ID:          entity.ID(),
		RequesterID: entity.RequesterID(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
		Items:       []*queries.ItemView{},
	}, nil
}
