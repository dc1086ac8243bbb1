package readstore

import (
	"context"
	"time"

	"hostel-booking/internal/domain/booking"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/usecase/queries"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.order_id, b.room_id, r.name, b.user_id, b.seats_selected,
       b.booking_type, b.check_in, b.check_out,
       b.base_amount, b.tax_amount, b.discount, b.total_amount,
       b.status, b.created_at, b.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := s.dbtx.QueryRow(ctx, bookingViewSQL, id).Scan(
		&v.ID, &v.OrderID, &v.RoomID, &v.RoomName, &v.UserID, &v.SeatsSelected,
		&v.BookingType, &v.CheckIn, &v.CheckOut,
		&v.BaseAmount, &v.TaxAmount, &v.Discount, &v.TotalAmount,
		&v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

const bookingListSQL = `
SELECT b.id, b.room_id, r.name, b.seats_selected, b.booking_type,
       b.status, b.total_amount, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2`

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.dbtx.Query(ctx, bookingListSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var it queries.BookingListItem
		if err := rows.Scan(
			&it.ID, &it.RoomID, &it.RoomName, &it.SeatsSelected, &it.BookingType,
			&it.Status, &it.TotalAmount, &it.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", err)
	}
	return items, nil
}

const bookingSnapshotSQL = `
SELECT id, order_id, room_id, user_id, seats_selected, booking_type,
       check_in, check_out, base_amount, tax_amount, discount, total_amount,
       status, created_at, updated_at
FROM bookings
WHERE id = $1`

func (s *BookingReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap        shared.BookingSnapshot
		bookingType string
		status      string
		checkOut    *time.Time
	)
	err := s.dbtx.QueryRow(ctx, bookingSnapshotSQL, id).Scan(
		&snap.ID, &snap.OrderID, &snap.RoomID, &snap.UserID, &snap.SeatsSelected, &bookingType,
		&snap.CheckIn, &checkOut, &snap.BaseAmount, &snap.TaxAmount, &snap.Discount, &snap.TotalAmount,
		&status, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking snapshot", err)
	}

	snap.BookingType = booking.Type(bookingType)
	snap.Status = booking.Status(status)
	snap.CheckOut = checkOut
	return &snap, nil
}
