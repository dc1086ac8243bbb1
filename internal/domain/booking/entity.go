package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSeats      = errors.New("seats selected must be at least 1")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBookingTerminal   = errors.New("booking is in a terminal status")
)

// Booking is one guest's claim on seats in one room. Status transitions go
// through the methods below; each returns the seat delta the inventory
// ledger must apply in the same transaction as the status change. A zero
// delta means the transition touches no seat capacity.
type Booking struct {
	id            uuid.UUID
	orderID       *uuid.UUID
	roomID        uuid.UUID
	userID        uuid.UUID
	seatsSelected int32
	stay          StayPeriod
	pricing       Pricing
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	roomID, userID uuid.UUID,
	seatsSelected int32,
	stay StayPeriod,
	pricing Pricing,
) (*Booking, error) {
	if seatsSelected < 1 {
		return nil, ErrInvalidSeats
	}

	return &Booking{
		id:            uuid.New(),
		roomID:        roomID,
		userID:        userID,
		seatsSelected: seatsSelected,
		stay:          stay,
		pricing:       pricing,
		status:        StatusPending,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	orderID *uuid.UUID,
	roomID, userID uuid.UUID,
	seatsSelected int32,
	stay StayPeriod,
	pricing Pricing,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		orderID:       orderID,
		roomID:        roomID,
		userID:        userID,
		seatsSelected: seatsSelected,
		stay:          stay,
		pricing:       pricing,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Reserve moves a PENDING booking into the optional RESERVED holding state.
// No seats are committed yet.
func (b *Booking) Reserve() error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusReserved
	return nil
}

// Confirm commits the booking. The returned delta is the number of seats the
// ledger must reserve atomically with the status change.
func (b *Booking) Confirm() (int32, error) {
	if !b.status.IsProvisional() {
		return 0, ErrInvalidTransition
	}
	b.status = StatusConfirmed
	return b.seatsSelected, nil
}

// Cancel terminates the booking. Cancelling a confirmed booking releases its
// seats (negative delta); cancelling a provisional one never held any.
func (b *Booking) Cancel() (int32, error) {
	switch {
	case b.status == StatusConfirmed:
		b.status = StatusCancelled
		return -b.seatsSelected, nil
	case b.status.IsProvisional():
		b.status = StatusCancelled
		return 0, nil
	default:
		return 0, ErrBookingTerminal
	}
}

// Complete closes out a confirmed stay. Seats stay held; reclaiming them is
// a separate cleanup policy.
func (b *Booking) Complete() error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	return nil
}

// ChangeSeats adjusts the seat claim. On a confirmed booking only the signed
// difference moves through the ledger; provisional bookings hold nothing.
func (b *Booking) ChangeSeats(seats int32) (int32, error) {
	if seats < 1 {
		return 0, ErrInvalidSeats
	}
	if b.status.IsTerminal() {
		return 0, ErrBookingTerminal
	}

	delta := int32(0)
	if b.status == StatusConfirmed {
		delta = seats - b.seatsSelected
	}
	b.seatsSelected = seats
	return delta, nil
}

// ChangeStay replaces the stay period. Switching to LONG_TERM clears any
// check-out date automatically; switching to SHORT_TERM requires one.
func (b *Booking) ChangeStay(bookingType Type, checkIn time.Time, checkOut *time.Time) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}

	if bookingType == TypeLongTerm {
		checkOut = nil
	}
	stay, err := NewStayPeriod(bookingType, checkIn, checkOut)
	if err != nil {
		return err
	}
	b.stay = stay
	return nil
}

// TransitionTo drives the state machine to an arbitrary target status, used
// by privileged updates. It returns the seat delta the ledger must apply.
func (b *Booking) TransitionTo(target Status) (int32, error) {
	if target == b.status {
		return 0, nil
	}

	switch target {
	case StatusReserved:
		return 0, b.Reserve()
	case StatusConfirmed:
		return b.Confirm()
	case StatusCancelled:
		return b.Cancel()
	case StatusCompleted:
		return 0, b.Complete()
	default:
		return 0, ErrInvalidTransition
	}
}

func (b *Booking) AttachToOrder(orderID uuid.UUID) {
	id := orderID
	b.orderID = &id
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) OrderID() *uuid.UUID  { return b.orderID }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) SeatsSelected() int32 { return b.seatsSelected }
func (b *Booking) Stay() StayPeriod     { return b.stay }
func (b *Booking) Pricing() Pricing     { return b.pricing }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
