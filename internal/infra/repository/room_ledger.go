package repository

import (
	"context"
	"sort"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// RoomLedger owns every write to a room's seat counters. Concurrency control
// is a compare-and-swap style conditional update: the WHERE clause carries
// the availability guard and the affected-row count is the success signal.
// No advisory or pessimistic locks are taken anywhere on this path.
type RoomLedger struct{}

func NewRoomLedger() *RoomLedger {
	return &RoomLedger{}
}

// Reserve guard only applies to positive deltas; releases always match and
// are clamped so booked_seats stays within [0, beds]. Status is recomputed
// in the same statement, keeping booked_seats + available_seats = beds an
// invariant the database never observes broken.
const adjustSeatsSQL = `
UPDATE rooms SET
    booked_seats    = LEAST(beds, GREATEST(booked_seats + $2, 0)),
    available_seats = beds - LEAST(beds, GREATEST(booked_seats + $2, 0)),
    status          = CASE WHEN LEAST(beds, GREATEST(booked_seats + $2, 0)) >= beds
                           THEN 'BOOKED' ELSE 'AVAILABLE' END,
    updated_at      = now()
WHERE id = $1 AND ($2 <= 0 OR available_seats >= $2)`

const roomExistsSQL = `SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`

func (l *RoomLedger) AdjustSeats(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, delta int32) error {
	if delta == 0 {
		return nil
	}

	tag, err := dbtx.Exec(ctx, adjustSeatsSQL, roomID, delta)
	if err != nil {
		return infra.WrapRepoErr("failed to adjust room seats", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows on a reservation: either the room is gone or the guard
	// rejected the decrement. Both are domain errors, not system errors.
	var exists bool
	if err := dbtx.QueryRow(ctx, roomExistsSQL, roomID).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check room existence", err)
	}
	if !exists {
		return errs.ErrRoomNotFound
	}
	return errs.ErrInsufficientSeats
}

func (l *RoomLedger) AdjustSeatsBatch(ctx context.Context, dbtx db.DBTX, deltas map[uuid.UUID]int32) error {
	if len(deltas) == 0 {
		return nil
	}

	// Ascending room-ID order keeps concurrent multi-room orders from
	// deadlocking each other.
	roomIDs := make([]uuid.UUID, 0, len(deltas))
	for id := range deltas {
		roomIDs = append(roomIDs, id)
	}
	sort.Slice(roomIDs, func(i, j int) bool {
		return roomIDs[i].String() < roomIDs[j].String()
	})

	for _, id := range roomIDs {
		if err := l.AdjustSeats(ctx, dbtx, id, deltas[id]); err != nil {
			return err
		}
	}
	return nil
}
