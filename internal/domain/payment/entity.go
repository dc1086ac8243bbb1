package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusSuccess  Status = "SUCCESS"
	StatusFailed   Status = "FAILED"
	StatusRefunded Status = "REFUNDED"
)

func (s Status) String() string {
	return string(s)
}

// Payment is one-to-one with a BookingOrder. It is created PENDING at
// checkout; the confirmation adapter finalizes it through status-guarded
// repository updates, where a SUCCESS payment is immutable except for the
// REFUNDED transition.
type Payment struct {
	id            uuid.UUID
	orderID       uuid.UUID
	transactionID string
	paymentMethod string
	amountPaid    int64
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPayment(orderID uuid.UUID, paymentMethod string, amount int64) (*Payment, error) {
	if amount < 0 {
		return nil, errors.New("payment amount cannot be negative")
	}
	return &Payment{
		id:            uuid.New(),
		orderID:       orderID,
		paymentMethod: paymentMethod,
		amountPaid:    amount,
		status:        StatusPending,
	}, nil
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) OrderID() uuid.UUID    { return p.orderID }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) PaymentMethod() string { return p.paymentMethod }
func (p *Payment) AmountPaid() int64     { return p.amountPaid }
func (p *Payment) Status() Status        { return p.status }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time  { return p.updatedAt }
