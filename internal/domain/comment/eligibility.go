package comment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingHistory answers whether a requester has a booking of the item that
// already ended. Status is deliberately not part of the question: any elapsed
// booking grants eligibility, decided or not.
type BookingHistory interface {
	HasFinishedBooking(ctx context.Context, requesterID, itemID uuid.UUID, now time.Time) (bool, error)
}

// EligibilityGate decides whether a user may leave feedback on an item.
type EligibilityGate struct {
	history BookingHistory
}

func NewEligibilityGate(history BookingHistory) *EligibilityGate {
	return &EligibilityGate{history: history}
}

func (g *EligibilityGate) MayComment(ctx context.Context, requesterID, itemID uuid.UUID, now time.Time) (bool, error) {
	return g.history.HasFinishedBooking(ctx, requesterID, itemID, now)
}
