package booking

import (
	"slices"
	"time"
)

// Timed is the minimal surface the temporal engine needs. Both the domain
// entity and the read-side views satisfy it, so classification runs the same
// way on either representation.
type Timed interface {
	Start() time.Time
	End() time.Time
	Status() Status
}

// FilterByState classifies bookings into the requested bucket relative to a
// single now instant:
//
//	ALL      no filter, input order preserved
//	CURRENT  end > now (a wholly future booking also qualifies; kept for
//	         behavioral parity with the previous listing rules)
//	PAST     end < now
//	FUTURE   start > now
//	WAITING  status == WAITING
//	REJECTED status == REJECTED
//
// Every bucket except ALL is returned ordered by start descending.
func FilterByState[B Timed](bookings []B, state State, now time.Time) []B {
	if state == StateAll {
		return slices.Clone(bookings)
	}

	out := make([]B, 0, len(bookings))
	for _, b := range bookings {
		var keep bool
		switch state {
		case StateCurrent:
			keep = b.End().After(now)
		case StatePast:
			keep = b.End().Before(now)
		case StateFuture:
			keep = b.Start().After(now)
		case StateWaiting:
			keep = b.Status() == StatusWaiting
		case StateRejected:
			keep = b.Status() == StatusRejected
		}
		if keep {
			out = append(out, b)
		}
	}

	SortByStartDesc(out)
	return out
}

// SortByStartDesc orders bookings most recent start first. The sort is
// stable so equal starts keep their storage order.
func SortByStartDesc[B Timed](bookings []B) {
	slices.SortStableFunc(bookings, func(a, b B) int {
		return b.Start().Compare(a.Start())
	})
}
