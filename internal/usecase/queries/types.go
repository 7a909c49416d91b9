package queries

import (
	"time"

	"itemshare/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// BookingView decorates the domain entity with the display names the API
// returns. Embedding keeps the entity's temporal methods, so views feed
// straight into the classification and schedule helpers.
type BookingView struct {
	*booking.Booking
	BookerName string
	ItemName   string
}

type UserView struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemView struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

// ItemDetailView is the owner-decorated item read model. Last and Next stay
// nil for non-owner viewers.
type ItemDetailView struct {
	ItemView
	Last     *BookingView
	Next     *BookingView
	Comments []*CommentView
}

type CommentView struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	Text       string
	AuthorName string
	CreatedAt  time.Time
}

type RequestView struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Description string
	CreatedAt   time.Time
	Items       []*ItemView
}
