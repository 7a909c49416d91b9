//go:build unit

package booking_test

import (
	"testing"
	"time"

	"itemshare/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstruct(start, end time.Time, status booking.Status) *booking.Booking {
	return booking.Reconstruct(uuid.New(), uuid.New(), uuid.New(), start, end, status)
}

func ids(bookings []*booking.Booking) []uuid.UUID {
	out := make([]uuid.UUID, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID()
	}
	return out
}

func TestFilterByState(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// One booking per temporal position relative to now.
	past := reconstruct(now.Add(-48*time.Hour), now.Add(-24*time.Hour), booking.StatusApproved)
	spanning := reconstruct(now.Add(-1*time.Hour), now.Add(1*time.Hour), booking.StatusApproved)
	future := reconstruct(now.Add(24*time.Hour), now.Add(48*time.Hour), booking.StatusWaiting)
	all := []*booking.Booking{past, spanning, future}

	t.Run("ALL preserves storage order", func(t *testing.T) {
		got := booking.FilterByState(all, booking.StateAll, now)
		if diff := cmp.Diff(ids(all), ids(got)); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("PAST selects end before now", func(t *testing.T) {
		got := booking.FilterByState(all, booking.StatePast, now)
		require.Len(t, got, 1)
		assert.Equal(t, past.ID(), got[0].ID())
	})

	t.Run("FUTURE selects start after now", func(t *testing.T) {
		got := booking.FilterByState(all, booking.StateFuture, now)
		require.Len(t, got, 1)
		assert.Equal(t, future.ID(), got[0].ID())
	})

	// A wholly future booking also counts as CURRENT: the bucket is defined by
	// end > now alone.
	t.Run("CURRENT selects end after now, including future bookings", func(t *testing.T) {
		got := booking.FilterByState(all, booking.StateCurrent, now)
		require.Len(t, got, 2)
		assert.Equal(t, future.ID(), got[0].ID())
		assert.Equal(t, spanning.ID(), got[1].ID())
	})

	t.Run("status buckets match stored status", func(t *testing.T) {
		rejected := reconstruct(now.Add(2*time.Hour), now.Add(3*time.Hour), booking.StatusRejected)
		withRejected := append([]*booking.Booking{rejected}, all...)

		waiting := booking.FilterByState(withRejected, booking.StateWaiting, now)
		require.Len(t, waiting, 1)
		assert.Equal(t, future.ID(), waiting[0].ID())

		got := booking.FilterByState(withRejected, booking.StateRejected, now)
		require.Len(t, got, 1)
		assert.Equal(t, rejected.ID(), got[0].ID())
	})

	t.Run("filtered buckets sort by start descending", func(t *testing.T) {
		earlier := reconstruct(now.Add(-72*time.Hour), now.Add(-60*time.Hour), booking.StatusApproved)
		got := booking.FilterByState([]*booking.Booking{earlier, past}, booking.StatePast, now)
		require.Len(t, got, 2)
		assert.Equal(t, past.ID(), got[0].ID())
		assert.Equal(t, earlier.ID(), got[1].ID())
	})

	t.Run("ALL returns a copy, not the input slice", func(t *testing.T) {
		got := booking.FilterByState(all, booking.StateAll, now)
		got[0] = future
		assert.Equal(t, past.ID(), all[0].ID())
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		got := booking.FilterByState([]*booking.Booking{}, booking.StatePast, now)
		assert.Empty(t, got)
	})
}

func TestParseState(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  booking.State
		errIs error
	}{
		{name: "empty defaults to ALL", in: "", want: booking.StateAll},
		{name: "exact match", in: "PAST", want: booking.StatePast},
		{name: "lowercase accepted", in: "current", want: booking.StateCurrent},
		{name: "mixed case accepted", in: "Waiting", want: booking.StateWaiting},
		{name: "unknown value rejected", in: "SOMETIMES", errIs: booking.ErrUnknownState},
		{name: "status-like but not a bucket", in: "APPROVED", errIs: booking.ErrUnknownState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.ParseState(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
