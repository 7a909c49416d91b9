package queries

import (
	"context"

	"github.com/google/uuid"
)

// Read-side stores. Implementations live in internal/infra/readstore and
// report failures as infra.RepositoryError kinds.

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*BookingView, error)
	FindByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*BookingView, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
	FindByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*ItemView, error)
}

type CommentReadStore interface {
	FindByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*CommentView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	FindAllExcept(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
}
