package commands

import (
	"context"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/domain/comment"
	"itemshare/internal/domain/item"
	"itemshare/internal/domain/request"
	"itemshare/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side repositories. Implementations live in internal/infra/repository
// and report failures as infra.RepositoryError kinds.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) error
	Update(ctx context.Context, i *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
}

// BookingSnapshot is the command-side read of one booking row, joined with
// the owning item so the decide precondition needs a single round trip.
type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	RequesterID uuid.UUID
	Start       time.Time
	End         time.Time
	Status      booking.Status
	ItemOwnerID uuid.UUID
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// UpdateStatusIfWaiting performs the guarded transition in one
	// statement; false means another decide already won.
	UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error)
	HasFinishedBooking(ctx context.Context, requesterID, itemID uuid.UUID, now time.Time) (bool, error)
}

// BookingRepository doubles as the comment gate's booking history.
var _ comment.BookingHistory = (BookingRepository)(nil)

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) error
}

type RequestRepository interface {
	Create(ctx context.Context, r *request.Request) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
