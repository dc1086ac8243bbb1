package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"hostel-booking/internal/domain/order"
	"hostel-booking/internal/domain/payment"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/pkg/clock"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	notificationKind = "notification"

	topicBookingConfirmed = "booking_confirmed"
	topicPaymentFailed    = "payment_failed"
	topicChargeRefunded   = "charge_refunded"
)

// PaymentCommands processes payment provider webhook events. Every handler
// is idempotent: the status guards on payments, orders and bookings match
// zero rows on redelivery, and a replayed event that already took effect
// returns nil without touching the ledger.
type PaymentCommands interface {
	HandleCheckoutCompleted(ctx context.Context, orderID uuid.UUID, transactionID string) error
	HandlePaymentFailed(ctx context.Context, orderID uuid.UUID, transactionID string) error
	HandleChargeRefunded(ctx context.Context, orderID uuid.UUID) error
}

type paymentCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, clk: clk}
}

// HandleCheckoutCompleted commits the order: payment SUCCESS, bookings
// CONFIRMED, order CONFIRMED and the seat ledger charged, all in one
// transaction. If any room lacks capacity by the time payment lands, the
// whole transaction rolls back and the order stays payable elsewhere; the
// caller is expected to refund.
func (c *paymentCommandsImpl) HandleCheckoutCompleted(ctx context.Context, orderID uuid.UUID, transactionID string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		marked, err := tx.Payments().MarkSuccess(ctx, tx.DB(), orderID, transactionID)
		if err != nil {
			return err
		}
		if marked == 0 {
			return c.resolveStalePayment(ctx, tx, orderID, payment.StatusSuccess)
		}

		claims, err := tx.Bookings().ConfirmByOrder(ctx, tx.DB(), orderID)
		if err != nil {
			return err
		}

		confirmed, err := tx.Orders().UpdateStatusGuarded(ctx, tx.DB(), orderID,
			[]order.Status{order.StatusPending}, order.StatusConfirmed)
		if err != nil {
			return err
		}
		if confirmed == 0 {
			return errs.ErrOrderNotPending
		}

		if err := tx.Rooms().AdjustSeatsBatch(ctx, tx.DB(), shared.GroupSeatDeltas(claims)); err != nil {
			if errors.Is(err, errs.ErrInsufficientSeats) {
				// Money was taken for seats that no longer exist. Roll
				// back and surface the conflict for a refund.
				slog.Error("paid order cannot be fulfilled, seat capacity exhausted",
					"order_id", orderID.String(),
					"transaction_id", transactionID)
				return errs.Mark(err, errs.ErrOrderUnfulfillable)
			}
			return err
		}

		return c.enqueueNotification(ctx, tx, topicBookingConfirmed, orderID, transactionID)
	})
}

// HandlePaymentFailed voids the order: payment FAILED, order CANCELLED and
// its provisional bookings cancelled. No seats were held, so the ledger is
// untouched.
func (c *paymentCommandsImpl) HandlePaymentFailed(ctx context.Context, orderID uuid.UUID, transactionID string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		marked, err := tx.Payments().MarkFailed(ctx, tx.DB(), orderID, transactionID)
		if err != nil {
			return err
		}
		if marked == 0 {
			return c.resolveStalePayment(ctx, tx, orderID, payment.StatusFailed)
		}

		if _, err := tx.Orders().UpdateStatusGuarded(ctx, tx.DB(), orderID,
			[]order.Status{order.StatusPending}, order.StatusCancelled); err != nil {
			return err
		}
		if _, err := tx.Bookings().CancelProvisionalByOrder(ctx, tx.DB(), orderID); err != nil {
			return err
		}

		return c.enqueueNotification(ctx, tx, topicPaymentFailed, orderID, transactionID)
	})
}

// HandleChargeRefunded reverses a settled order: payment REFUNDED, confirmed
// bookings CANCELLED and their seats released back to the ledger.
func (c *paymentCommandsImpl) HandleChargeRefunded(ctx context.Context, orderID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		marked, err := tx.Payments().MarkRefunded(ctx, tx.DB(), orderID)
		if err != nil {
			return err
		}
		if marked == 0 {
			return c.resolveStalePayment(ctx, tx, orderID, payment.StatusRefunded)
		}

		claims, err := tx.Bookings().CancelConfirmedByOrder(ctx, tx.DB(), orderID)
		if err != nil {
			return err
		}
		if err := tx.Rooms().AdjustSeatsBatch(ctx, tx.DB(), shared.GroupSeatDeltas(claims)); err != nil {
			return err
		}

		if _, err := tx.Orders().UpdateStatusGuarded(ctx, tx.DB(), orderID,
			[]order.Status{order.StatusConfirmed}, order.StatusCancelled); err != nil {
			return err
		}

		return c.enqueueNotification(ctx, tx, topicChargeRefunded, orderID, "")
	})
}

// resolveStalePayment decides what a zero-row payment update means: the
// event was redelivered (payment already in the target status, no-op) or it
// conflicts with an earlier final state.
func (c *paymentCommandsImpl) resolveStalePayment(ctx context.Context, tx shared.Tx, orderID uuid.UUID, want payment.Status) error {
	snap, err := tx.Reads().PaymentByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrOrderNotFound
		}
		return err
	}
	if snap.Status == want {
		slog.Info("payment event redelivered, no-op",
			"order_id", orderID.String(),
			"status", snap.Status.String())
		return nil
	}
	return errs.ErrPaymentAlreadyFinal
}

func (c *paymentCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, orderID uuid.UUID, transactionID string) error {
	payload, err := json.Marshal(map[string]string{
		"order_id":       orderID.String(),
		"transaction_id": transactionID,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKind, topic, payload, c.clk.Now())
}
