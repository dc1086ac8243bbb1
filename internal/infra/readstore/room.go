package readstore

import (
	"context"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/usecase/queries"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	dbtx db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{dbtx: dbtx}
}

const roomViewSQL = `
SELECT id, name, beds, booked_seats, available_seats, status, created_at, updated_at
FROM rooms
WHERE id = $1`

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var v queries.RoomView
	err := s.dbtx.QueryRow(ctx, roomViewSQL, id).Scan(
		&v.ID, &v.Name, &v.Beds, &v.BookedSeats, &v.AvailableSeats,
		&v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return &v, nil
}

const availableRoomsSQL = `
SELECT id, name, beds, booked_seats, available_seats, status, created_at, updated_at
FROM rooms
WHERE status = 'AVAILABLE' AND available_seats >= $1
ORDER BY name`

func (s *RoomReadStore) FindAvailable(ctx context.Context, minSeats int32) ([]*queries.RoomView, error) {
	rows, err := s.dbtx.Query(ctx, availableRoomsSQL, minSeats)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Beds, &v.BookedSeats, &v.AvailableSeats,
			&v.Status, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read available rooms", err)
	}
	return views, nil
}

const roomSnapshotSQL = `
SELECT id, name, beds, booked_seats, available_seats, status
FROM rooms
WHERE id = $1`

func (s *RoomReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var snap shared.RoomSnapshot
	err := s.dbtx.QueryRow(ctx, roomSnapshotSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.Beds, &snap.BookedSeats, &snap.AvailableSeats, &snap.Status,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room snapshot", err)
	}
	return &snap, nil
}
