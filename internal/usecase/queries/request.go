package queries

import (
	"context"

	"itemshare/internal/infra"
	"itemshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestQueries interface {
	// ListOwn returns the user's requests, newest first, each with the
	// items answering it.
	ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	// ListOthers returns everyone else's requests, newest first.
	ListOthers(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
	GetByID(ctx context.Context, requestID, userID uuid.UUID) (*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, items: items, users: users}
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	views, err := q.requests.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return q.attachItems(ctx, views)
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, userID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	views, err := q.requests.FindAllExcept(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return q.attachItems(ctx, views)
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, requestID, userID uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	attached, err := q.attachItems(ctx, []*RequestView{view})
	if err != nil {
		return nil, err
	}
	return attached[0], nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, views []*RequestView) ([]*RequestView, error) {
	if len(views) == 0 {
		return []*RequestView{}, nil
	}

	requestIDs := make([]uuid.UUID, len(views))
	for i, rv := range views {
		requestIDs[i] = rv.ID
	}

	items, err := q.items.FindByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	itemsByRequest := make(map[uuid.UUID][]*ItemView)
	for _, iv := range items {
		if iv.RequestID == nil {
			continue
		}
		itemsByRequest[*iv.RequestID] = append(itemsByRequest[*iv.RequestID], iv)
	}

	for _, rv := range views {
		rv.Items = itemsByRequest[rv.ID]
		if rv.Items == nil {
			rv.Items = []*ItemView{}
		}
	}
	return views, nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.users.Exists(ctx, userID)
	if err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	if !exists {
		return errs.ErrUserNotFound
	}
	return nil
}
