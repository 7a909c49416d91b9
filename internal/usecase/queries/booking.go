package queries

import (
	"context"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetByID requires only that the requesting user exists; any existing
	// user may read any booking.
	GetByID(ctx context.Context, bookingID, userID uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the user check; used for read-after-write.
	GetByIDSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID, state booking.State) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, userID uuid.UUID) (*BookingView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return q.GetByIDSystem(ctx, bookingID)
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID, state booking.State) ([]*BookingView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	views, err := q.bookings.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return booking.FilterByState(views, state, q.clock.Now()), nil
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State) ([]*BookingView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	// An owner without items simply has nothing booked; not an error.
	views, err := q.bookings.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return booking.FilterByState(views, state, q.clock.Now()), nil
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.users.Exists(ctx, userID)
	if err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	if !exists {
		return errs.ErrUserNotFound
	}
	return nil
}
