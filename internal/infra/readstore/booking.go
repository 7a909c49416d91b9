package readstore

import (
	"context"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingViewColumns = `
b.id, b.item_id, b.requester_id, b.start_at, b.end_at, b.status,
u.name AS booker_name, i.name AS item_name
FROM bookings b
JOIN users u ON u.id = b.requester_id
JOIN items i ON i.id = b.item_id`

const (
	selectBookingViewQuery = `SELECT ` + bookingViewColumns + ` WHERE b.id = $1`

	// Insertion order is the storage order the ALL listing preserves.
	selectBookingsByRequesterQuery = `SELECT ` + bookingViewColumns + `
WHERE b.requester_id = $1`

	selectBookingsByOwnerQuery = `SELECT ` + bookingViewColumns + `
WHERE i.owner_id = $1`

	selectBookingsByItemIDsQuery = `SELECT ` + bookingViewColumns + `
WHERE b.item_id = ANY($1)`
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.pool.QueryRow(ctx, selectBookingViewQuery, id)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.BookingView, error) {
	return s.findMany(ctx, selectBookingsByRequesterQuery, requesterID)
}

func (s *BookingReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingView, error) {
	return s.findMany(ctx, selectBookingsByOwnerQuery, ownerID)
}

func (s *BookingReadStore) FindByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.BookingView, error) {
	return s.findMany(ctx, selectBookingsByItemIDsQuery, itemIDs)
}

func (s *BookingReadStore) findMany(ctx context.Context, query string, arg any) ([]*queries.BookingView, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		id, itemID, requesterID uuid.UUID
		start, end              time.Time
		status                  string
		bookerName, itemName    string
	)
	err := row.Scan(&id, &itemID, &requesterID, &start, &end, &status, &bookerName, &itemName)
	if err != nil {
		return nil, err
	}
	return &queries.BookingView{
		Booking:    booking.Reconstruct(id, itemID, requesterID, start, end, booking.Status(status)),
		BookerName: bookerName,
		ItemName:   itemName,
	}, nil
}
