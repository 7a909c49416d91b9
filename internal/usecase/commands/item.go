package commands

import (
	"context"

	"itemshare/internal/domain/comment"
	"itemshare/internal/domain/item"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateItemCommand struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type PatchItemCommand struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, cmd CreateItemCommand, ownerID uuid.UUID) (*queries.ItemView, error)
	Update(ctx context.Context, itemID uuid.UUID, cmd PatchItemCommand, actorID uuid.UUID) (*queries.ItemView, error)
	AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	items    ItemRepository
	users    UserRepository
	comments CommentRepository
	requests RequestRepository
	gate     *comment.EligibilityGate
	clock    clock.Clock
}

func NewItemCommands(
	items ItemRepository,
	users UserRepository,
	comments CommentRepository,
	requests RequestRepository,
	bookings BookingRepository,
	clk clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		items:    items,
		users:    users,
		comments: comments,
		requests: requests,
		gate:     comment.NewEligibilityGate(bookings),
		clock:    clk,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, cmd CreateItemCommand, ownerID uuid.UUID) (*queries.ItemView, error) {
	exists, err := c.users.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	if cmd.RequestID != nil {
		found, err := c.requests.ExistsByID(ctx, *cmd.RequestID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrStorageFailure)
		}
		if !found {
			return nil, errs.ErrRequestNotFound
		}
	}

	entity, err := item.New(ownerID, cmd.Name, cmd.Description, cmd.Available, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := c.items.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return itemToView(entity), nil
}

func (c *itemCommandsImpl) Update(ctx context.Context, itemID uuid.UUID, cmd PatchItemCommand, actorID uuid.UUID) (*queries.ItemView, error) {
	entity, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	// Non-owners are told the item does not exist rather than forbidden.
	if !entity.IsOwnedBy(actorID) {
		return nil, errs.ErrItemNotFound
	}

	if err := entity.Patch(cmd.Name, cmd.Description, cmd.Available); err != nil {
		return nil, err
	}

	if err := c.items.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return itemToView(entity), nil
}

func (c *itemCommandsImpl) AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	author, err := c.users.FindByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	if _, err := c.items.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	now := c.clock.Now()

	eligible, err := c.gate.MayComment(ctx, authorID, itemID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !eligible {
		return nil, errs.ErrNotEligibleToComment
	}

	entity, err := comment.New(itemID, authorID, text, now)
	if err != nil {
		return nil, err
	}

	if err := c.comments.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	return &queries.CommentView{
		ID:         entity.ID(),
		ItemID:     entity.ItemID(),
		Text:       entity.Text(),
		AuthorName: author.Name(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}

func itemToView(entity *item.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          entity.ID(),
		OwnerID:     entity.OwnerID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Available:   entity.Available(),
		RequestID:   entity.RequestID(),
	}
}
