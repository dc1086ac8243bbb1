package repository

import (
	"context"

	"hostel-booking/internal/domain/booking"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, order_id, room_id, user_id, seats_selected, booking_type,
    check_in, check_out, base_amount, tax_amount, discount, total_amount, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.OrderID(),
		b.RoomID(),
		b.UserID(),
		b.SeatsSelected(),
		b.Stay().Type().String(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.Pricing().BaseAmount,
		b.Pricing().TaxAmount,
		b.Pricing().Discount,
		b.Pricing().TotalAmount,
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const saveBookingSQL = `
UPDATE bookings SET
    order_id       = $2,
    seats_selected = $3,
    booking_type   = $4,
    check_in       = $5,
    check_out      = $6,
    base_amount    = $7,
    tax_amount     = $8,
    discount       = $9,
    total_amount   = $10,
    status         = $11,
    updated_at     = now()
WHERE id = $1`

func (r *BookingRepository) Save(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	tag, err := dbtx.Exec(ctx, saveBookingSQL,
		b.ID(),
		b.OrderID(),
		b.SeatsSelected(),
		b.Stay().Type().String(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.Pricing().BaseAmount,
		b.Pricing().TaxAmount,
		b.Pricing().Discount,
		b.Pricing().TotalAmount,
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found on save", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found on delete", nil, infra.KindNotFound)
	}
	return nil
}

const attachToOrderSQL = `
UPDATE bookings SET order_id = $1, updated_at = now()
WHERE id = ANY($2) AND user_id = $3 AND order_id IS NULL
  AND status IN ('PENDING', 'RESERVED')`

func (r *BookingRepository) AttachToOrder(ctx context.Context, dbtx db.DBTX, bookingIDs []uuid.UUID, orderID, userID uuid.UUID) (int64, error) {
	tag, err := dbtx.Exec(ctx, attachToOrderSQL, orderID, bookingIDs, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to attach bookings to order", err)
	}
	return tag.RowsAffected(), nil
}

// One batched conditional update per status guard, not one write per child
// row. The status guard doubles as the idempotency check: redelivered
// webhooks match zero rows.
const confirmByOrderSQL = `
UPDATE bookings SET status = 'CONFIRMED', updated_at = now()
WHERE order_id = $1 AND status IN ('PENDING', 'RESERVED')
RETURNING room_id, seats_selected`

func (r *BookingRepository) ConfirmByOrder(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]shared.SeatClaim, error) {
	rows, err := dbtx.Query(ctx, confirmByOrderSQL, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to confirm bookings by order", err)
	}
	defer rows.Close()

	var claims []shared.SeatClaim
	for rows.Next() {
		var c shared.SeatClaim
		if err := rows.Scan(&c.RoomID, &c.Seats); err != nil {
			return nil, infra.WrapRepoErr("failed to scan confirmed booking", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read confirmed bookings", err)
	}
	return claims, nil
}

const cancelConfirmedByOrderSQL = `
UPDATE bookings SET status = 'CANCELLED', updated_at = now()
WHERE order_id = $1 AND status = 'CONFIRMED'
RETURNING room_id, seats_selected`

func (r *BookingRepository) CancelConfirmedByOrder(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]shared.SeatClaim, error) {
	rows, err := dbtx.Query(ctx, cancelConfirmedByOrderSQL, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel confirmed bookings", err)
	}
	defer rows.Close()

	var claims []shared.SeatClaim
	for rows.Next() {
		var c shared.SeatClaim
		if err := rows.Scan(&c.RoomID, &c.Seats); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cancelled booking", err)
		}
		// Negative claims release seats in the ledger.
		c.Seats = -c.Seats
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cancelled bookings", err)
	}
	return claims, nil
}

const cancelProvisionalByOrderSQL = `
UPDATE bookings SET status = 'CANCELLED', updated_at = now()
WHERE order_id = $1 AND status IN ('PENDING', 'RESERVED')`

func (r *BookingRepository) CancelProvisionalByOrder(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) (int64, error) {
	tag, err := dbtx.Exec(ctx, cancelProvisionalByOrderSQL, orderID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel provisional bookings", err)
	}
	return tag.RowsAffected(), nil
}
