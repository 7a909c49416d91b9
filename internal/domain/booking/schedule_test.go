//go:build unit

package booking_test

import (
	"testing"
	"time"

	"itemshare/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstructFor(itemID uuid.UUID, start, end time.Time) *booking.Booking {
	return booking.Reconstruct(uuid.New(), itemID, uuid.New(), start, end, booking.StatusApproved)
}

func TestLastAndNext(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	itemID := uuid.New()

	oldest := reconstructFor(itemID, now.Add(-72*time.Hour), now.Add(-60*time.Hour))
	recent := reconstructFor(itemID, now.Add(-2*time.Hour), now.Add(-1*time.Hour))
	soon := reconstructFor(itemID, now.Add(1*time.Hour), now.Add(2*time.Hour))
	later := reconstructFor(itemID, now.Add(24*time.Hour), now.Add(48*time.Hour))

	t.Run("picks greatest past start and smallest future start", func(t *testing.T) {
		sched := booking.LastAndNext([]*booking.Booking{later, oldest, soon, recent}, now)
		require.NotNil(t, sched.Last)
		require.NotNil(t, sched.Next)
		assert.Equal(t, recent.ID(), sched.Last.ID())
		assert.Equal(t, soon.ID(), sched.Next.ID())
	})

	t.Run("booking spanning now counts as last", func(t *testing.T) {
		spanning := reconstructFor(itemID, now.Add(-1*time.Hour), now.Add(1*time.Hour))
		sched := booking.LastAndNext([]*booking.Booking{spanning, later}, now)
		require.NotNil(t, sched.Last)
		assert.Equal(t, spanning.ID(), sched.Last.ID())
	})

	t.Run("only past bookings leaves next nil", func(t *testing.T) {
		sched := booking.LastAndNext([]*booking.Booking{oldest, recent}, now)
		assert.NotNil(t, sched.Last)
		assert.Nil(t, sched.Next)
	})

	t.Run("empty input leaves both sides nil", func(t *testing.T) {
		sched := booking.LastAndNext([]*booking.Booking{}, now)
		assert.Nil(t, sched.Last)
		assert.Nil(t, sched.Next)
	})
}

func TestBatchLastAndNext(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	busyItem := uuid.New()
	idleItem := uuid.New()

	past := reconstructFor(busyItem, now.Add(-2*time.Hour), now.Add(-1*time.Hour))
	next := reconstructFor(busyItem, now.Add(1*time.Hour), now.Add(2*time.Hour))
	// Booking of an item outside the requested set must not leak in.
	stray := reconstructFor(uuid.New(), now.Add(-1*time.Hour), now.Add(1*time.Hour))

	schedules := booking.BatchLastAndNext(
		[]*booking.Booking{past, next, stray},
		[]uuid.UUID{busyItem, idleItem},
		now,
	)

	require.Len(t, schedules, 2)

	busy := schedules[busyItem]
	require.NotNil(t, busy.Last)
	require.NotNil(t, busy.Next)
	assert.Equal(t, past.ID(), busy.Last.ID())
	assert.Equal(t, next.ID(), busy.Next.ID())

	// The bookingless item still gets an entry, with both sides empty.
	idle, ok := schedules[idleItem]
	require.True(t, ok)
	assert.Nil(t, idle.Last)
	assert.Nil(t, idle.Next)
}
