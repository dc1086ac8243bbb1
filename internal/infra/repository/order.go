package repository

import (
	"context"
	"strings"

	"hostel-booking/internal/domain/order"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const createOrderSQL = `
INSERT INTO booking_orders (id, user_id, total_amount, status)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.BookingOrder) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createOrderSQL,
		o.ID(),
		o.UserID(),
		o.TotalAmount(),
		o.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking order", err)
	}
	return id, nil
}

const updateOrderStatusSQL = `
UPDATE booking_orders SET status = $2, updated_at = now()
WHERE id = $1 AND status = ANY($3)`

func (r *OrderRepository) UpdateStatusGuarded(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from []order.Status, to order.Status) (int64, error) {
	guard := make([]string, len(from))
	for i, s := range from {
		guard[i] = s.String()
	}

	tag, err := dbtx.Exec(ctx, updateOrderStatusSQL, id, to.String(), guard)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update order status from "+strings.Join(guard, ","), err)
	}
	return tag.RowsAffected(), nil
}
