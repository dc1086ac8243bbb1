package shared

import (
	"context"
	"time"

	"hostel-booking/internal/domain/booking"
	"hostel-booking/internal/domain/order"
	"hostel-booking/internal/domain/payment"
	"hostel-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	Rooms() RoomLedger
	TaxConfigs() TaxConfigRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// RoomLedger is the only component authorized to mutate a room's seat
// counters. Positive deltas reserve seats and fail with
// errs.ErrInsufficientSeats when capacity would be exceeded; negative deltas
// release and always succeed, clamped so booked seats never go negative.
type RoomLedger interface {
	AdjustSeats(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, delta int32) error
	// AdjustSeatsBatch applies one conditional update per distinct room,
	// in ascending room-ID order. Callers group per-booking claims first
	// (see GroupSeatDeltas) so the statement count tracks rooms, not
	// bookings.
	AdjustSeatsBatch(ctx context.Context, dbtx db.DBTX, deltas map[uuid.UUID]int32) error
}

// SeatClaim is one booking's share of a batch ledger operation.
type SeatClaim struct {
	RoomID uuid.UUID
	Seats  int32
}

// GroupSeatDeltas folds per-booking claims into one signed delta per room.
func GroupSeatDeltas(claims []SeatClaim) map[uuid.UUID]int32 {
	if len(claims) == 0 {
		return nil
	}
	deltas := make(map[uuid.UUID]int32, len(claims))
	for _, c := range claims {
		deltas[c.RoomID] += c.Seats
	}
	return deltas
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Save(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	// AttachToOrder links provisional bookings owned by userID to an order;
	// returns how many rows matched.
	AttachToOrder(ctx context.Context, dbtx db.DBTX, bookingIDs []uuid.UUID, orderID, userID uuid.UUID) (int64, error)
	// ConfirmByOrder flips all {PENDING,RESERVED} bookings of the order to
	// CONFIRMED in one statement and returns the seat claims of the rows it
	// matched. Already-confirmed rows are not matched, which is what makes
	// webhook redelivery a no-op.
	ConfirmByOrder(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]SeatClaim, error)
	// CancelConfirmedByOrder flips CONFIRMED bookings to CANCELLED and
	// returns negative seat claims for the ledger release.
	CancelConfirmedByOrder(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]SeatClaim, error)
	// CancelProvisionalByOrder cancels still-pending bookings; no seats held.
	CancelProvisionalByOrder(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, o *order.BookingOrder) (uuid.UUID, error)
	// UpdateStatusGuarded applies a conditional status change and reports
	// the number of rows affected.
	UpdateStatusGuarded(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from []order.Status, to order.Status) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (uuid.UUID, error)
	// MarkSuccess finalizes a PENDING payment; zero rows affected means the
	// payment was already final (replay or conflicting event).
	MarkSuccess(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, transactionID string) (int64, error)
	MarkFailed(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, transactionID string) (int64, error)
	MarkRefunded(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) (int64, error)
}

type TaxConfigRepository interface {
	// Activate deactivates every other row and inserts the new active
	// percent; must run inside a transaction.
	Activate(ctx context.Context, dbtx db.DBTX, percent int64) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	PaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*PaymentSnapshot, error)
	// ActiveTaxPercent returns the single active tax percent, or a
	// NOT_FOUND repository error when no configuration is active.
	ActiveTaxPercent(ctx context.Context) (int64, error)
}

// Minimal snapshots for command read operations
type RoomSnapshot struct {
	ID             uuid.UUID
	Name           string
	Beds           int32
	BookedSeats    int32
	AvailableSeats int32
	Status         string
}

type BookingSnapshot struct {
	ID            uuid.UUID
	OrderID       *uuid.UUID
	RoomID        uuid.UUID
	UserID        uuid.UUID
	SeatsSelected int32
	BookingType   booking.Type
	CheckIn       time.Time
	CheckOut      *time.Time
	BaseAmount    int64
	TaxAmount     int64
	Discount      int64
	TotalAmount   int64
	Status        booking.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToEntity rehydrates the domain aggregate so state transitions run through
// the state machine rather than ad hoc status writes.
func (s *BookingSnapshot) ToEntity() (*booking.Booking, error) {
	stay, err := booking.NewStayPeriod(s.BookingType, s.CheckIn, s.CheckOut)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		s.ID,
		s.OrderID,
		s.RoomID,
		s.UserID,
		s.SeatsSelected,
		stay,
		booking.Pricing{
			BaseAmount:  s.BaseAmount,
			TaxAmount:   s.TaxAmount,
			Discount:    s.Discount,
			TotalAmount: s.TotalAmount,
		},
		s.Status,
		s.CreatedAt,
		s.UpdatedAt,
	), nil
}

type OrderSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalAmount int64
	Status      order.Status
}

type PaymentSnapshot struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	TransactionID string
	Status        payment.Status
	AmountPaid    int64
}
