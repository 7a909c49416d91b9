package booking

import (
	"time"

	"github.com/google/uuid"
)

// ItemScoped extends Timed with the owning item, for batched grouping.
type ItemScoped interface {
	Timed
	ItemID() uuid.UUID
}

// Schedule holds the last elapsed and next upcoming booking of one item.
// Either side is the zero value (nil for pointer types) when absent.
type Schedule[B Timed] struct {
	Last B
	Next B
}

// LastAndNext picks last = greatest start among start < now and next =
// smallest start among start > now. Both sides use the start instant; a
// booking spanning now is therefore the "last" one. Ties resolve to the
// earliest qualifying element, deterministically but without further meaning.
func LastAndNext[B Timed](bookings []B, now time.Time) Schedule[B] {
	var sched Schedule[B]
	var haveLast, haveNext bool

	for _, b := range bookings {
		start := b.Start()
		switch {
		case start.Before(now):
			if !haveLast || start.After(sched.Last.Start()) {
				sched.Last = b
				haveLast = true
			}
		case start.After(now):
			if !haveNext || start.Before(sched.Next.Start()) {
				sched.Next = b
				haveNext = true
			}
		}
	}

	return sched
}

// BatchLastAndNext applies the per-item rule over bookings grouped by item in
// one pass. Every requested item id gets an entry; items without bookings map
// to an empty schedule.
func BatchLastAndNext[B ItemScoped](bookings []B, itemIDs []uuid.UUID, now time.Time) map[uuid.UUID]Schedule[B] {
	grouped := make(map[uuid.UUID][]B, len(itemIDs))
	for _, b := range bookings {
		grouped[b.ItemID()] = append(grouped[b.ItemID()], b)
	}

	result := make(map[uuid.UUID]Schedule[B], len(itemIDs))
	for _, id := range itemIDs {
		result[id] = LastAndNext(grouped[id], now)
	}
	return result
}
