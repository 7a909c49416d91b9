//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"itemshare/internal/domain/comment"
	"itemshare/internal/domain/request"
	"itemshare/internal/domain/user"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, c *comment.Comment) error {
	return m.Called(ctx, c).Error(0)
}

type mockRequestRepo struct{ mock.Mock }

func (m *mockRequestRepo) Create(ctx context.Context, r *request.Request) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRequestRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestItemCommands_Update(t *testing.T) {
	ownerID := uuid.New()

	newSUT := func(items *mockItemRepo) commands.ItemCommands {
		clk := clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
		return commands.NewItemCommands(items, new(mockUserRepo), new(mockCommentRepo), new(mockRequestRepo), new(mockBookingRepo), clk)
	}

	t.Run("owner patches selected fields only", func(t *testing.T) {
		items := new(mockItemRepo)
		target := availableItem(ownerID)

		items.On("FindByID", mock.Anything, target.ID()).Return(target, nil)
		items.On("Update", mock.Anything, target).Return(nil)

		available := false
		view, err := newSUT(items).Update(context.Background(), target.ID(), commands.PatchItemCommand{
			Available: &available,
		}, ownerID)

		require.NoError(t, err)
		assert.Equal(t, "drill", view.Name)
		assert.False(t, view.Available)
		items.AssertExpectations(t)
	})

	t.Run("non-owner is told the item does not exist", func(t *testing.T) {
		items := new(mockItemRepo)
		target := availableItem(ownerID)

		items.On("FindByID", mock.Anything, target.ID()).Return(target, nil)

		name := "hammer"
		_, err := newSUT(items).Update(context.Background(), target.ID(), commands.PatchItemCommand{
			Name: &name,
		}, uuid.New())

		assert.ErrorIs(t, err, errs.ErrItemNotFound)
		items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestItemCommands_AddComment(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	authorID := uuid.New()
	author := user.Reconstruct(authorID, "alice", "alice@example.com")
	target := availableItem(uuid.New())

	newSUT := func(users *mockUserRepo, items *mockItemRepo, comments *mockCommentRepo, bookings *mockBookingRepo) commands.ItemCommands {
		return commands.NewItemCommands(items, users, comments, new(mockRequestRepo), bookings, clock.NewMockClock(now))
	}

	t.Run("finished booking allows commenting", func(t *testing.T) {
		users := new(mockUserRepo)
		items := new(mockItemRepo)
		comments := new(mockCommentRepo)
		bookings := new(mockBookingRepo)

		users.On("FindByID", mock.Anything, authorID).Return(author, nil)
		items.On("FindByID", mock.Anything, target.ID()).Return(target, nil)
		bookings.On("HasFinishedBooking", mock.Anything, authorID, target.ID(), now).Return(true, nil)
		comments.On("Create", mock.Anything, mock.MatchedBy(func(c *comment.Comment) bool {
			return c.Text() == "worked well" && c.CreatedAt() == now
		})).Return(nil)

		view, err := newSUT(users, items, comments, bookings).AddComment(context.Background(), target.ID(), authorID, "worked well")

		require.NoError(t, err)
		assert.Equal(t, "alice", view.AuthorName)
		assert.Equal(t, now, view.CreatedAt)
		comments.AssertExpectations(t)
	})

	t.Run("no finished booking denies commenting", func(t *testing.T) {
		users := new(mockUserRepo)
		items := new(mockItemRepo)
		comments := new(mockCommentRepo)
		bookings := new(mockBookingRepo)

		users.On("FindByID", mock.Anything, authorID).Return(author, nil)
		items.On("FindByID", mock.Anything, target.ID()).Return(target, nil)
		bookings.On("HasFinishedBooking", mock.Anything, authorID, target.ID(), now).Return(false, nil)

		_, err := newSUT(users, items, comments, bookings).AddComment(context.Background(), target.ID(), authorID, "worked well")

		assert.ErrorIs(t, err, errs.ErrNotEligibleToComment)
		comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown author", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("FindByID", mock.Anything, authorID).Return(nil, notFoundErr("user not found"))

		_, err := newSUT(users, new(mockItemRepo), new(mockCommentRepo), new(mockBookingRepo)).
			AddComment(context.Background(), target.ID(), authorID, "worked well")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		users := new(mockUserRepo)
		items := new(mockItemRepo)
		missing := uuid.New()

		users.On("FindByID", mock.Anything, authorID).Return(author, nil)
		items.On("FindByID", mock.Anything, missing).Return(nil, notFoundErr("item not found"))

		_, err := newSUT(users, items, new(mockCommentRepo), new(mockBookingRepo)).
			AddComment(context.Background(), missing, authorID, "worked well")

		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("empty text is rejected after the gate", func(t *testing.T) {
		users := new(mockUserRepo)
		items := new(mockItemRepo)
		bookings := new(mockBookingRepo)

		users.On("FindByID", mock.Anything, authorID).Return(author, nil)
		items.On("FindByID", mock.Anything, target.ID()).Return(target, nil)
		bookings.On("HasFinishedBooking", mock.Anything, authorID, target.ID(), now).Return(true, nil)

		_, err := newSUT(users, items, new(mockCommentRepo), bookings).
			AddComment(context.Background(), target.ID(), authorID, "   ")

		assert.ErrorIs(t, err, comment.ErrEmptyText)
	})
}
