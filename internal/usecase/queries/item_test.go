//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItemReadStore struct {
	byID      map[uuid.UUID]*queries.ItemView
	byOwner   []*queries.ItemView
	search    []*queries.ItemView
	byRequest []*queries.ItemView
	err       error
}

func (s *stubItemReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.byID[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
}

func (s *stubItemReadStore) FindByOwner(_ context.Context, _ uuid.UUID) ([]*queries.ItemView, error) {
	return s.byOwner, s.err
}

func (s *stubItemReadStore) Search(_ context.Context, _ string) ([]*queries.ItemView, error) {
	return s.search, s.err
}

func (s *stubItemReadStore) FindByRequestIDs(_ context.Context, _ []uuid.UUID) ([]*queries.ItemView, error) {
	return s.byRequest, s.err
}

type stubCommentReadStore struct {
	comments []*queries.CommentView
	err      error
}

func (s *stubCommentReadStore) FindByItemIDs(_ context.Context, _ []uuid.UUID) ([]*queries.CommentView, error) {
	return s.comments, s.err
}

func itemView(ownerID uuid.UUID) *queries.ItemView {
	return &queries.ItemView{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "drill",
		Description: "a power drill",
		Available:   true,
	}
}

func TestItemQueries_GetByID(t *testing.T) {
	ownerID := uuid.New()
	iv := itemView(ownerID)

	last := bookingView(iv.ID, testNow.Add(-2*time.Hour), testNow.Add(-1*time.Hour), booking.StatusApproved)
	next := bookingView(iv.ID, testNow.Add(1*time.Hour), testNow.Add(2*time.Hour), booking.StatusApproved)

	cv := &queries.CommentView{ID: uuid.New(), ItemID: iv.ID, Text: "solid", AuthorName: "bob", CreatedAt: testNow}

	newSUT := func() queries.ItemQueries {
		return queries.NewItemQueries(
			&stubItemReadStore{byID: map[uuid.UUID]*queries.ItemView{iv.ID: iv}},
			&stubBookingReadStore{byItems: []*queries.BookingView{last, next}},
			&stubCommentReadStore{comments: []*queries.CommentView{cv}},
			clock.NewMockClock(testNow),
		)
	}

	t.Run("owner sees schedule and comments", func(t *testing.T) {
		got, err := newSUT().GetByID(context.Background(), iv.ID, ownerID)
		require.NoError(t, err)

		require.NotNil(t, got.Last)
		require.NotNil(t, got.Next)
		assert.Equal(t, last.ID(), got.Last.ID())
		assert.Equal(t, next.ID(), got.Next.ID())
		require.Len(t, got.Comments, 1)
		assert.Equal(t, "solid", got.Comments[0].Text)
	})

	t.Run("non-owner sees comments but no schedule", func(t *testing.T) {
		got, err := newSUT().GetByID(context.Background(), iv.ID, uuid.New())
		require.NoError(t, err)

		assert.Nil(t, got.Last)
		assert.Nil(t, got.Next)
		require.Len(t, got.Comments, 1)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := newSUT().GetByID(context.Background(), uuid.New(), ownerID)
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}

func TestItemQueries_ListByOwner(t *testing.T) {
	ownerID := uuid.New()
	booked := itemView(ownerID)
	idle := itemView(ownerID)

	last := bookingView(booked.ID, testNow.Add(-2*time.Hour), testNow.Add(-1*time.Hour), booking.StatusApproved)
	cv := &queries.CommentView{ID: uuid.New(), ItemID: booked.ID, Text: "solid", AuthorName: "bob", CreatedAt: testNow}

	q := queries.NewItemQueries(
		&stubItemReadStore{byOwner: []*queries.ItemView{booked, idle}},
		&stubBookingReadStore{byItems: []*queries.BookingView{last}},
		&stubCommentReadStore{comments: []*queries.CommentView{cv}},
		clock.NewMockClock(testNow),
	)

	got, err := q.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, booked.ID, got[0].ID)
	require.NotNil(t, got[0].Last)
	assert.Equal(t, last.ID(), got[0].Last.ID())
	assert.Nil(t, got[0].Next)
	require.Len(t, got[0].Comments, 1)

	// The bookingless item still appears, with an empty schedule.
	assert.Equal(t, idle.ID, got[1].ID)
	assert.Nil(t, got[1].Last)
	assert.Nil(t, got[1].Next)
	assert.Empty(t, got[1].Comments)
}

func TestItemQueries_Search(t *testing.T) {
	found := itemView(uuid.New())

	t.Run("blank text short-circuits to empty", func(t *testing.T) {
		q := queries.NewItemQueries(
			&stubItemReadStore{err: infra.WrapRepoErr("must not be called", nil)},
			&stubBookingReadStore{},
			&stubCommentReadStore{},
			clock.NewMockClock(testNow),
		)

		got, err := q.Search(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("non-blank text hits the store", func(t *testing.T) {
		q := queries.NewItemQueries(
			&stubItemReadStore{search: []*queries.ItemView{found}},
			&stubBookingReadStore{},
			&stubCommentReadStore{},
			clock.NewMockClock(testNow),
		)

		got, err := q.Search(context.Background(), "drill")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, found.ID, got[0].ID)
	})
}
