//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"hostel-booking/internal/domain/booking"
	"hostel-booking/internal/domain/order"
	"hostel-booking/internal/domain/payment"
	"hostel-booking/internal/domain/room"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type roomRow struct {
	Name   string
	Beds   int32
	Booked int32
}

type notificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

// fakeStore is the in-memory datastore behind fakeUoW. All access goes
// through fakeUoW, which holds the mutex for the whole transaction, so the
// row operations themselves are unsynchronized.
type fakeStore struct {
	mu       sync.Mutex
	rooms    map[uuid.UUID]*roomRow
	bookings map[uuid.UUID]*shared.BookingSnapshot
	orders    map[uuid.UUID]*shared.OrderSnapshot
	payments  map[uuid.UUID]*shared.PaymentSnapshot
	tax       int64
	taxActive bool
	jobs      []notificationJob
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:     make(map[uuid.UUID]*roomRow),
		bookings:  make(map[uuid.UUID]*shared.BookingSnapshot),
		orders:    make(map[uuid.UUID]*shared.OrderSnapshot),
		payments:  make(map[uuid.UUID]*shared.PaymentSnapshot),
		tax:       16,
		taxActive: true,
	}
}

func (s *fakeStore) addRoom(beds, booked int32) uuid.UUID {
	id := uuid.New()
	s.rooms[id] = &roomRow{Name: "Dorm", Beds: beds, Booked: booked}
	return id
}

func (s *fakeStore) addBooking(userID, roomID uuid.UUID, seats int32, status booking.Status) uuid.UUID {
	id := uuid.New()
	checkIn := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)
	s.bookings[id] = &shared.BookingSnapshot{
		ID:            id,
		RoomID:        roomID,
		UserID:        userID,
		SeatsSelected: seats,
		BookingType:   booking.TypeShortTerm,
		CheckIn:       checkIn,
		CheckOut:      &checkOut,
		TotalAmount:   1160,
		Status:        status,
		CreatedAt:     checkIn,
		UpdatedAt:     checkIn,
	}
	return id
}

func (s *fakeStore) addOrderWithPayment(userID uuid.UUID, total int64, orderStatus order.Status, paymentStatus payment.Status) uuid.UUID {
	orderID := uuid.New()
	s.orders[orderID] = &shared.OrderSnapshot{
		ID:          orderID,
		UserID:      userID,
		TotalAmount: total,
		Status:      orderStatus,
	}
	s.payments[orderID] = &shared.PaymentSnapshot{
		ID:         uuid.New(),
		OrderID:    orderID,
		Status:     paymentStatus,
		AmountPaid: total,
	}
	return orderID
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.tax = s.tax
	c.taxActive = s.taxActive
	for id, r := range s.rooms {
		cp := *r
		c.rooms[id] = &cp
	}
	for id, b := range s.bookings {
		cp := *b
		c.bookings[id] = &cp
	}
	for id, o := range s.orders {
		cp := *o
		c.orders[id] = &cp
	}
	for id, p := range s.payments {
		cp := *p
		c.payments[id] = &cp
	}
	c.jobs = append(c.jobs, s.jobs...)
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.rooms = from.rooms
	s.bookings = from.bookings
	s.orders = from.orders
	s.payments = from.payments
	s.tax = from.tax
	s.taxActive = from.taxActive
	s.jobs = from.jobs
}

// fakeUoW serializes transactions with a store-wide mutex and restores a
// snapshot on error, mimicking commit/rollback.
type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	backup := u.store.clone()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.restore(backup)
		return err
	}
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store, locking: true}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) DB() db.DBTX                              { return nil }
func (t *fakeTx) Bookings() shared.BookingRepository       { return &fakeBookingRepo{t.store} }
func (t *fakeTx) Orders() shared.OrderRepository           { return &fakeOrderRepo{t.store} }
func (t *fakeTx) Payments() shared.PaymentRepository       { return &fakePaymentRepo{t.store} }
func (t *fakeTx) Rooms() shared.RoomLedger                 { return &fakeRoomLedger{t.store} }
func (t *fakeTx) TaxConfigs() shared.TaxConfigRepository   { return &fakeTaxRepo{t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &fakeNotificationRepo{t.store}
}
func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{store: t.store} }

type fakeRoomLedger struct {
	store *fakeStore
}

func (l *fakeRoomLedger) AdjustSeats(_ context.Context, _ db.DBTX, roomID uuid.UUID, delta int32) error {
	r, ok := l.store.rooms[roomID]
	if !ok {
		return errs.ErrRoomNotFound
	}
	if delta > 0 && r.Beds-r.Booked < delta {
		return errs.ErrInsufficientSeats
	}
	r.Booked += delta
	if r.Booked < 0 {
		r.Booked = 0
	}
	if r.Booked > r.Beds {
		r.Booked = r.Beds
	}
	return nil
}

func (l *fakeRoomLedger) AdjustSeatsBatch(ctx context.Context, dbtx db.DBTX, deltas map[uuid.UUID]int32) error {
	for roomID, delta := range deltas {
		if err := l.AdjustSeats(ctx, dbtx, roomID, delta); err != nil {
			return err
		}
	}
	return nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if _, ok := r.store.rooms[b.RoomID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("room missing", pgx.ErrNoRows, infra.KindForeignKeyViolated)
	}
	snap := snapshotFromEntity(b)
	r.store.bookings[b.ID()] = snap
	return b.ID(), nil
}

func (r *fakeBookingRepo) Save(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	if _, ok := r.store.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking missing", pgx.ErrNoRows, infra.KindNotFound)
	}
	r.store.bookings[b.ID()] = snapshotFromEntity(b)
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.store.bookings[id]; !ok {
		return infra.WrapRepoErr("booking missing", pgx.ErrNoRows, infra.KindNotFound)
	}
	delete(r.store.bookings, id)
	return nil
}

func (r *fakeBookingRepo) AttachToOrder(_ context.Context, _ db.DBTX, bookingIDs []uuid.UUID, orderID, userID uuid.UUID) (int64, error) {
	var attached int64
	for _, id := range bookingIDs {
		b, ok := r.store.bookings[id]
		if !ok || b.UserID != userID || b.OrderID != nil || !b.Status.IsProvisional() {
			continue
		}
		oid := orderID
		b.OrderID = &oid
		attached++
	}
	return attached, nil
}

func (r *fakeBookingRepo) ConfirmByOrder(_ context.Context, _ db.DBTX, orderID uuid.UUID) ([]shared.SeatClaim, error) {
	var claims []shared.SeatClaim
	for _, b := range r.store.bookings {
		if b.OrderID != nil && *b.OrderID == orderID && b.Status.IsProvisional() {
			b.Status = booking.StatusConfirmed
			claims = append(claims, shared.SeatClaim{RoomID: b.RoomID, Seats: b.SeatsSelected})
		}
	}
	return claims, nil
}

func (r *fakeBookingRepo) CancelConfirmedByOrder(_ context.Context, _ db.DBTX, orderID uuid.UUID) ([]shared.SeatClaim, error) {
	var claims []shared.SeatClaim
	for _, b := range r.store.bookings {
		if b.OrderID != nil && *b.OrderID == orderID && b.Status == booking.StatusConfirmed {
			b.Status = booking.StatusCancelled
			claims = append(claims, shared.SeatClaim{RoomID: b.RoomID, Seats: -b.SeatsSelected})
		}
	}
	return claims, nil
}

func (r *fakeBookingRepo) CancelProvisionalByOrder(_ context.Context, _ db.DBTX, orderID uuid.UUID) (int64, error) {
	var cancelled int64
	for _, b := range r.store.bookings {
		if b.OrderID != nil && *b.OrderID == orderID && b.Status.IsProvisional() {
			b.Status = booking.StatusCancelled
			cancelled++
		}
	}
	return cancelled, nil
}

func snapshotFromEntity(b *booking.Booking) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:            b.ID(),
		OrderID:       b.OrderID(),
		RoomID:        b.RoomID(),
		UserID:        b.UserID(),
		SeatsSelected: b.SeatsSelected(),
		BookingType:   b.Stay().Type(),
		CheckIn:       b.Stay().CheckIn(),
		CheckOut:      b.Stay().CheckOut(),
		BaseAmount:    b.Pricing().BaseAmount,
		TaxAmount:     b.Pricing().TaxAmount,
		Discount:      b.Pricing().Discount,
		TotalAmount:   b.Pricing().TotalAmount,
		Status:        b.Status(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.BookingOrder) (uuid.UUID, error) {
	r.store.orders[o.ID()] = &shared.OrderSnapshot{
		ID:          o.ID(),
		UserID:      o.UserID(),
		TotalAmount: o.TotalAmount(),
		Status:      o.Status(),
	}
	return o.ID(), nil
}

func (r *fakeOrderRepo) UpdateStatusGuarded(_ context.Context, _ db.DBTX, id uuid.UUID, from []order.Status, to order.Status) (int64, error) {
	o, ok := r.store.orders[id]
	if !ok {
		return 0, nil
	}
	for _, f := range from {
		if o.Status == f {
			o.Status = to
			return 1, nil
		}
	}
	return 0, nil
}

type fakePaymentRepo struct {
	store *fakeStore
}

func (r *fakePaymentRepo) Create(_ context.Context, _ db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	r.store.payments[p.OrderID()] = &shared.PaymentSnapshot{
		ID:         p.ID(),
		OrderID:    p.OrderID(),
		Status:     p.Status(),
		AmountPaid: p.AmountPaid(),
	}
	return p.ID(), nil
}

func (r *fakePaymentRepo) markFrom(orderID uuid.UUID, from, to payment.Status, transactionID string) (int64, error) {
	p, ok := r.store.payments[orderID]
	if !ok || p.Status != from {
		return 0, nil
	}
	p.Status = to
	if transactionID != "" {
		p.TransactionID = transactionID
	}
	return 1, nil
}

func (r *fakePaymentRepo) MarkSuccess(_ context.Context, _ db.DBTX, orderID uuid.UUID, transactionID string) (int64, error) {
	return r.markFrom(orderID, payment.StatusPending, payment.StatusSuccess, transactionID)
}

func (r *fakePaymentRepo) MarkFailed(_ context.Context, _ db.DBTX, orderID uuid.UUID, transactionID string) (int64, error) {
	return r.markFrom(orderID, payment.StatusPending, payment.StatusFailed, transactionID)
}

func (r *fakePaymentRepo) MarkRefunded(_ context.Context, _ db.DBTX, orderID uuid.UUID) (int64, error) {
	return r.markFrom(orderID, payment.StatusSuccess, payment.StatusRefunded, "")
}

type fakeTaxRepo struct {
	store *fakeStore
}

func (r *fakeTaxRepo) Activate(_ context.Context, _ db.DBTX, percent int64) error {
	r.store.tax = percent
	r.store.taxActive = true
	return nil
}

type fakeNotificationRepo struct {
	store *fakeStore
}

func (r *fakeNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.store.jobs = append(r.store.jobs, notificationJob{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

// fakeReads serves snapshot reads. With locking set it takes the store
// mutex, for use outside a transaction; inside one the caller already holds
// it.
type fakeReads struct {
	store   *fakeStore
	locking bool
}

func (r *fakeReads) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *fakeReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	defer r.lock()()
	row, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	available := row.Beds - row.Booked
	return &shared.RoomSnapshot{
		ID:             id,
		Name:           row.Name,
		Beds:           row.Beds,
		BookedSeats:    row.Booked,
		AvailableSeats: available,
		Status:         room.StatusFor(available).String(),
	}, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	defer r.lock()()
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeReads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	defer r.lock()()
	o, ok := r.store.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	cp := *o
	return &cp, nil
}

func (r *fakeReads) PaymentByOrderID(_ context.Context, orderID uuid.UUID) (*shared.PaymentSnapshot, error) {
	defer r.lock()()
	p, ok := r.store.payments[orderID]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeReads) ActiveTaxPercent(_ context.Context) (int64, error) {
	defer r.lock()()
	if !r.store.taxActive {
		return 0, infra.WrapRepoErr("no active tax config", pgx.ErrNoRows, infra.KindNotFound)
	}
	return r.store.tax, nil
}
