package repository

import (
	"context"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/pgconv"
	"itemshare/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertBookingQuery = `
INSERT INTO bookings (id, item_id, requester_id, start_at, end_at, status)
VALUES ($1, $2, $3, $4, $5, $6)`

	selectBookingQuery = `
SELECT b.id, b.item_id, b.requester_id, b.start_at, b.end_at, b.status, i.owner_id
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.id = $1`

	// The status guard makes a racing second decide observe zero rows.
	decideBookingQuery = `
UPDATE bookings SET status = $2 WHERE id = $1 AND status = 'WAITING'`

	finishedBookingQuery = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE requester_id = $1 AND item_id = $2 AND end_at < $3
)`
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.pool.Exec(ctx, insertBookingQuery,
		b.ID(), b.ItemID(), b.RequesterID(),
		pgconv.TimeToPgtype(b.Start()), pgconv.TimeToPgtype(b.End()),
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var (
		snap   commands.BookingSnapshot
		status string
	)
	err := r.pool.QueryRow(ctx, selectBookingQuery, id).Scan(
		&snap.ID, &snap.ItemID, &snap.RequesterID,
		&snap.Start, &snap.End, &status, &snap.ItemOwnerID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

func (r *BookingRepository) UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error) {
	tag, err := r.pool.Exec(ctx, decideBookingQuery, id, status.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) HasFinishedBooking(ctx context.Context, requesterID, itemID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, finishedBookingQuery, requesterID, itemID, pgconv.TimeToPgtype(now)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}
