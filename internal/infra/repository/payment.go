package repository

import (
	"context"

	"hostel-booking/internal/domain/payment"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

const createPaymentSQL = `
INSERT INTO payments (id, order_id, transaction_id, payment_method, amount_paid, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createPaymentSQL,
		p.ID(),
		p.OrderID(),
		p.TransactionID(),
		p.PaymentMethod(),
		p.AmountPaid(),
		p.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}

// Status guards keep a SUCCESS payment immutable except for the refund
// transition; zero rows affected tells the caller the event was a replay or
// arrived out of order.
const markPaymentSuccessSQL = `
UPDATE payments SET status = 'SUCCESS', transaction_id = $2, updated_at = now()
WHERE order_id = $1 AND status = 'PENDING'`

func (r *PaymentRepository) MarkSuccess(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, transactionID string) (int64, error) {
	tag, err := dbtx.Exec(ctx, markPaymentSuccessSQL, orderID, transactionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark payment success", err)
	}
	return tag.RowsAffected(), nil
}

const markPaymentFailedSQL = `
UPDATE payments SET status = 'FAILED', transaction_id = $2, updated_at = now()
WHERE order_id = $1 AND status = 'PENDING'`

func (r *PaymentRepository) MarkFailed(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, transactionID string) (int64, error) {
	tag, err := dbtx.Exec(ctx, markPaymentFailedSQL, orderID, transactionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark payment failed", err)
	}
	return tag.RowsAffected(), nil
}

const markPaymentRefundedSQL = `
UPDATE payments SET status = 'REFUNDED', updated_at = now()
WHERE order_id = $1 AND status = 'SUCCESS'`

func (r *PaymentRepository) MarkRefunded(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) (int64, error) {
	tag, err := dbtx.Exec(ctx, markPaymentRefundedSQL, orderID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark payment refunded", err)
	}
	return tag.RowsAffected(), nil
}
