//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hostel-booking/internal/domain/booking"
	"hostel-booking/internal/domain/order"
	"hostel-booking/internal/domain/payment"
	"hostel-booking/internal/pkg/clock"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentCommands(store *fakeStore) commands.PaymentCommands {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	return commands.NewPaymentCommands(newFakeUoW(store), clk)
}

// pendingOrder seeds an order with a PENDING payment and n provisional
// bookings of the given seat counts, all in the same room.
func pendingOrder(store *fakeStore, roomID uuid.UUID, seatCounts ...int32) uuid.UUID {
	userID := uuid.New()
	var total int64
	orderID := store.addOrderWithPayment(userID, 0, order.StatusPending, payment.StatusPending)
	for _, seats := range seatCounts {
		bookingID := store.addBooking(userID, roomID, seats, booking.StatusPending)
		oid := orderID
		store.bookings[bookingID].OrderID = &oid
		total += store.bookings[bookingID].TotalAmount
	}
	store.orders[orderID].TotalAmount = total
	store.payments[orderID].AmountPaid = total
	return orderID
}

func TestPaymentCommands_HandleCheckoutCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("commits payment, bookings, order and ledger together", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(6, 0)
		orderID := pendingOrder(store, roomID, 2, 1)
		svc := newPaymentCommands(store)

		require.NoError(t, svc.HandleCheckoutCompleted(ctx, orderID, "txn_1"))

		assert.Equal(t, payment.StatusSuccess, store.payments[orderID].Status)
		assert.Equal(t, order.StatusConfirmed, store.orders[orderID].Status)
		assert.Equal(t, int32(3), store.rooms[roomID].Booked)
		for _, b := range store.bookings {
			assert.Equal(t, booking.StatusConfirmed, b.Status)
		}

		require.Len(t, store.jobs, 1)
		assert.Equal(t, "booking_confirmed", store.jobs[0].Topic)
	})

	t.Run("redelivered event is a no-op", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(6, 0)
		orderID := pendingOrder(store, roomID, 2)
		svc := newPaymentCommands(store)

		require.NoError(t, svc.HandleCheckoutCompleted(ctx, orderID, "txn_1"))
		require.NoError(t, svc.HandleCheckoutCompleted(ctx, orderID, "txn_1"))

		// Seats charged exactly once
		assert.Equal(t, int32(2), store.rooms[roomID].Booked)
		assert.Len(t, store.jobs, 1)
	})

	t.Run("conflicting event after failure is rejected", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(6, 0)
		orderID := pendingOrder(store, roomID, 2)
		svc := newPaymentCommands(store)

		require.NoError(t, svc.HandlePaymentFailed(ctx, orderID, "txn_1"))
		err := svc.HandleCheckoutCompleted(ctx, orderID, "txn_1")
		assert.ErrorIs(t, err, errs.ErrPaymentAlreadyFinal)
	})

	t.Run("unknown order", func(t *testing.T) {
		store := newFakeStore()
		svc := newPaymentCommands(store)

		err := svc.HandleCheckoutCompleted(ctx, uuid.New(), "txn_1")
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("exhausted capacity rolls everything back", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(1, 0)
		winner := pendingOrder(store, roomID, 1)
		loser := pendingOrder(store, roomID, 1)
		svc := newPaymentCommands(store)

		require.NoError(t, svc.HandleCheckoutCompleted(ctx, winner, "txn_w"))

		err := svc.HandleCheckoutCompleted(ctx, loser, "txn_l")
		assert.ErrorIs(t, err, errs.ErrOrderUnfulfillable)

		// The losing order is untouched so the money can be refunded
		assert.Equal(t, payment.StatusPending, store.payments[loser].Status)
		assert.Equal(t, order.StatusPending, store.orders[loser].Status)
		assert.Equal(t, int32(1), store.rooms[roomID].Booked)
	})

	t.Run("concurrent confirmations admit exactly one winner", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(1, 0)

		const contenders = 8
		orderIDs := make([]uuid.UUID, contenders)
		for i := range orderIDs {
			orderIDs[i] = pendingOrder(store, roomID, 1)
		}
		svc := newPaymentCommands(store)

		results := make([]error, contenders)
		var wg sync.WaitGroup
		for i, orderID := range orderIDs {
			wg.Add(1)
			go func(i int, orderID uuid.UUID) {
				defer wg.Done()
				results[i] = svc.HandleCheckoutCompleted(context.Background(), orderID, "txn")
			}(i, orderID)
		}
		wg.Wait()

		var wins, conflicts int
		for _, err := range results {
			switch {
			case err == nil:
				wins++
			default:
				assert.ErrorIs(t, err, errs.ErrOrderUnfulfillable)
				conflicts++
			}
		}
		assert.Equal(t, 1, wins)
		assert.Equal(t, contenders-1, conflicts)
		assert.Equal(t, int32(1), store.rooms[roomID].Booked)
	})
}

func TestPaymentCommands_HandlePaymentFailed(t *testing.T) {
	ctx := context.Background()

	t.Run("voids order and provisional bookings", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(6, 0)
		orderID := pendingOrder(store, roomID, 2)
		svc := newPaymentCommands(store)

		require.NoError(t, svc.HandlePaymentFailed(ctx, orderID, "txn_1"))

		assert.Equal(t, payment.StatusFailed, store.payments[orderID].Status)
		assert.Equal(t, order.StatusCancelled, store.orders[orderID].Status)
		for _, b := range store.bookings {
			assert.Equal(t, booking.StatusCancelled, b.Status)
		}
		// No seats were ever held
		assert.Equal(t, int32(0), store.rooms[roomID].Booked)

		require.Len(t, store.jobs, 1)
		assert.Equal(t, "payment_failed", store.jobs[0].Topic)
	})

	t.Run("redelivered failure is a no-op", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(6, 0)
		orderID := pendingOrder(store, roomID, 2)
		svc := newPaymentCommands(store)

		require.NoError(t, svc.HandlePaymentFailed(ctx, orderID, "txn_1"))
		require.NoError(t, svc.HandlePaymentFailed(ctx, orderID, "txn_1"))
		assert.Len(t, store.jobs, 1)
	})

	t.Run("failure after success is rejected", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(6, 0)
		orderID := pendingOrder(store, roomID, 2)
		svc := newPaymentCommands(store)

		require.NoError(t, svc.HandleCheckoutCompleted(ctx, orderID, "txn_1"))
		err := svc.HandlePaymentFailed(ctx, orderID, "txn_1")
		assert.ErrorIs(t, err, errs.ErrPaymentAlreadyFinal)
	})
}

func TestPaymentCommands_HandleChargeRefunded(t *testing.T) {
	ctx := context.Background()

	t.Run("releases seats and cancels the order", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(6, 0)
		orderID := pendingOrder(store, roomID, 2, 1)
		svc := newPaymentCommands(store)

		require.NoError(t, svc.HandleCheckoutCompleted(ctx, orderID, "txn_1"))
		require.Equal(t, int32(3), store.rooms[roomID].Booked)

		require.NoError(t, svc.HandleChargeRefunded(ctx, orderID))

		assert.Equal(t, payment.StatusRefunded, store.payments[orderID].Status)
		assert.Equal(t, order.StatusCancelled, store.orders[orderID].Status)
		assert.Equal(t, int32(0), store.rooms[roomID].Booked)
		for _, b := range store.bookings {
			assert.Equal(t, booking.StatusCancelled, b.Status)
		}

		require.Len(t, store.jobs, 2)
		assert.Equal(t, "charge_refunded", store.jobs[1].Topic)
	})

	t.Run("refund of unsettled payment rejected", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(6, 0)
		orderID := pendingOrder(store, roomID, 2)
		svc := newPaymentCommands(store)

		err := svc.HandleChargeRefunded(ctx, orderID)
		assert.ErrorIs(t, err, errs.ErrPaymentAlreadyFinal)
	})

	t.Run("redelivered refund is a no-op", func(t *testing.T) {
		store := newFakeStore()
		roomID := store.addRoom(6, 0)
		orderID := pendingOrder(store, roomID, 1)
		svc := newPaymentCommands(store)

		require.NoError(t, svc.HandleCheckoutCompleted(ctx, orderID, "txn_1"))
		require.NoError(t, svc.HandleChargeRefunded(ctx, orderID))
		require.NoError(t, svc.HandleChargeRefunded(ctx, orderID))

		// Seats released exactly once
		assert.Equal(t, int32(0), store.rooms[roomID].Booked)
	})
}
