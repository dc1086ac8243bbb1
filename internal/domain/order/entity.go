package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

// BookingOrder is the umbrella a payment settles: one or more per-room
// bookings paid in a single provider transaction. Status transitions are
// performed by guarded repository updates that cascade to the child
// bookings, so the entity only models creation.
type BookingOrder struct {
	id          uuid.UUID
	userID      uuid.UUID
	totalAmount int64
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBookingOrder(userID uuid.UUID, totalAmount int64) (*BookingOrder, error) {
	if totalAmount < 0 {
		return nil, errors.New("order total cannot be negative")
	}
	return &BookingOrder{
		id:          uuid.New(),
		userID:      userID,
		totalAmount: totalAmount,
		status:      StatusPending,
	}, nil
}

func (o *BookingOrder) ID() uuid.UUID        { return o.id }
func (o *BookingOrder) UserID() uuid.UUID    { return o.userID }
func (o *BookingOrder) TotalAmount() int64   { return o.totalAmount }
func (o *BookingOrder) Status() Status       { return o.status }
func (o *BookingOrder) CreatedAt() time.Time { return o.createdAt }
func (o *BookingOrder) UpdatedAt() time.Time { return o.updatedAt }
