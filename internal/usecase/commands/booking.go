package commands

import (
	"context"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingCommand struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, cmd CreateBookingCommand, requesterID uuid.UUID) (*queries.BookingView, error)
	Decide(ctx context.Context, bookingID, approverID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings       BookingRepository
	items          ItemRepository
	users          UserRepository
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(
	bookings BookingRepository,
	items ItemRepository,
	users UserRepository,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:       bookings,
		items:          items,
		users:          users,
		bookingQueries: bookingQueries,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, cmd CreateBookingCommand, requesterID uuid.UUID) (*queries.BookingView, error) {
	exists, err := c.users.ExistsByID(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	itemEntity, err := c.items.FindByID(ctx, cmd.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !itemEntity.Available() {
		return nil, errs.ErrItemUnavailable
	}

	bookingEntity, err := booking.New(cmd.ItemID, requesterID, cmd.Start, cmd.End)
	if err != nil {
		return nil, err
	}

	if err := c.bookings.Create(ctx, bookingEntity); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	// Read-after-write: return the decorated view from the read store.
	return c.bookingQueries.GetByIDSystem(ctx, bookingEntity.ID())
}

func (c *bookingCommandsImpl) Decide(ctx context.Context, bookingID, approverID uuid.UUID, approve bool) (*queries.BookingView, error) {
	snap, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	if snap.ItemOwnerID != approverID {
		return nil, errs.ErrNotItemOwner
	}

	entity := booking.Reconstruct(snap.ID, snap.ItemID, snap.RequesterID, snap.Start, snap.End, snap.Status)
	if err := entity.Decide(approve); err != nil {
		return nil, errs.ErrAlreadyDecided
	}

	// The guarded update keeps the transition atomic: of two racing decide
	// calls exactly one sees rows affected.
	updated, err := c.bookings.UpdateStatusIfWaiting(ctx, bookingID, entity.Status())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !updated {
		return nil, errs.ErrAlreadyDecided
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}
