package queries

import (
	"context"
	"strings"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemQueries interface {
	// GetByID returns the item with its comments; last/next booking are
	// filled only when the viewer owns the item.
	GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemDetailView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings BookingReadStore
	comments CommentReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, bookings BookingReadStore, comments CommentReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{items: items, bookings: bookings, comments: comments, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemDetailView, error) {
	iv, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	comments, err := q.comments.FindByItemIDs(ctx, []uuid.UUID{itemID})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	detail := &ItemDetailView{ItemView: *iv, Comments: comments}

	// Booking details are redacted for everyone but the owner.
	if iv.OwnerID != viewerID {
		return detail, nil
	}

	bookings, err := q.bookings.FindByItemIDs(ctx, []uuid.UUID{itemID})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	sched := booking.LastAndNext(bookings, q.clock.Now())
	detail.Last = sched.Last
	detail.Next = sched.Next
	return detail, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error) {
	items, err := q.items.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if len(items) == 0 {
		return []*ItemDetailView{}, nil
	}

	itemIDs := make([]uuid.UUID, len(items))
	for i, iv := range items {
		itemIDs[i] = iv.ID
	}

	// One retrieval per collection instead of one per item.
	bookings, err := q.bookings.FindByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	comments, err := q.comments.FindByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	schedules := booking.BatchLastAndNext(bookings, itemIDs, q.clock.Now())

	commentsByItem := make(map[uuid.UUID][]*CommentView)
	for _, cv := range comments {
		commentsByItem[cv.ItemID] = append(commentsByItem[cv.ItemID], cv)
	}

	result := make([]*ItemDetailView, len(items))
	for i, iv := range items {
		sched := schedules[iv.ID]
		result[i] = &ItemDetailView{
			ItemView: *iv,
			Last:     sched.Last,
			Next:     sched.Next,
			Comments: commentsByItem[iv.ID],
		}
	}
	return result, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}

	items, err := q.items.Search(ctx, text)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return items, nil
}
