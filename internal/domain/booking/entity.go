package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange = errors.New("booking start must be before end")
	ErrAlreadyDecided   = errors.New("booking is already approved or rejected")
)

type Booking struct {
	id          uuid.UUID
	itemID      uuid.UUID
	requesterID uuid.UUID
	start       time.Time
	end         time.Time
	status      Status
}

// New creates a booking in the WAITING state.
func New(itemID, requesterID uuid.UUID, start, end time.Time) (*Booking, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	return &Booking{
		id:          uuid.New(),
		itemID:      itemID,
		requesterID: requesterID,
		start:       start,
		end:         end,
		status:      StatusWaiting,
	}, nil
}

// Reconstruct rebuilds a booking from storage without revalidating the time
// range; stored rows predate the boundary check.
func Reconstruct(id, itemID, requesterID uuid.UUID, start, end time.Time, status Status) *Booking {
	return &Booking{
		id:          id,
		itemID:      itemID,
		requesterID: requesterID,
		start:       start,
		end:         end,
		status:      status,
	}
}

// Decide applies the single irreversible transition: WAITING to APPROVED or
// REJECTED. Any call on an already-decided booking fails.
func (b *Booking) Decide(approve bool) error {
	if b.status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ItemID() uuid.UUID      { return b.itemID }
func (b *Booking) RequesterID() uuid.UUID { return b.requesterID }
func (b *Booking) Start() time.Time       { return b.start }
func (b *Booking) End() time.Time         { return b.end }
func (b *Booking) Status() Status         { return b.status }
