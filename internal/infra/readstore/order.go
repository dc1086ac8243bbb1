package readstore

import (
	"context"

	"hostel-booking/internal/domain/order"
	"hostel-booking/internal/domain/payment"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	dbtx db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{dbtx: dbtx}
}

const orderSnapshotSQL = `
SELECT id, user_id, total_amount, status
FROM booking_orders
WHERE id = $1`

func (s *OrderReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	var (
		snap   shared.OrderSnapshot
		status string
	)
	err := s.dbtx.QueryRow(ctx, orderSnapshotSQL, id).Scan(
		&snap.ID, &snap.UserID, &snap.TotalAmount, &status,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking order snapshot", err)
	}
	snap.Status = order.Status(status)
	return &snap, nil
}

const paymentSnapshotSQL = `
SELECT id, order_id, transaction_id, status, amount_paid
FROM payments
WHERE order_id = $1`

func (s *OrderReadStore) FindPaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*shared.PaymentSnapshot, error) {
	var (
		snap   shared.PaymentSnapshot
		status string
	)
	err := s.dbtx.QueryRow(ctx, paymentSnapshotSQL, orderID).Scan(
		&snap.ID, &snap.OrderID, &snap.TransactionID, &status, &snap.AmountPaid,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment snapshot", err)
	}
	snap.Status = payment.Status(status)
	return &snap, nil
}
