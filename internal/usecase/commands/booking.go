package commands

import (
	"context"
	"time"

	"hostel-booking/internal/domain/booking"
	"hostel-booking/internal/domain/order"
	"hostel-booking/internal/domain/payment"
	"hostel-booking/internal/domain/pricing"
	"hostel-booking/internal/domain/room"
	"hostel-booking/internal/domain/user"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/pkg/config"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/pkg/patch"
	"hostel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

type CreateBookingInput struct {
	RoomID        uuid.UUID
	SeatsSelected int32
	BookingType   booking.Type
	CheckIn       time.Time
	CheckOut      *time.Time
	BaseAmount    int64
	CouponCode    string
}

type CreateBookingResult struct {
	BookingID uuid.UUID
	Pricing   pricing.Breakdown
}

// UpdateBookingInput carries partial updates; nil fields are left untouched.
// Status is honored for privileged actors only.
type UpdateBookingInput struct {
	SeatsSelected *int32
	BookingType   *booking.Type
	CheckIn       *time.Time
	CheckOut      *time.Time
	Status        *booking.Status
}

type CheckoutInput struct {
	BookingIDs    []uuid.UUID
	PaymentMethod string
}

type CheckoutResult struct {
	OrderID     uuid.UUID
	PaymentID   uuid.UUID
	TotalAmount int64
}

type BookingCommands interface {
	Create(ctx context.Context, actor Actor, input CreateBookingInput) (*CreateBookingResult, error)
	Update(ctx context.Context, actor Actor, bookingID uuid.UUID, input UpdateBookingInput) error
	Cancel(ctx context.Context, actor Actor, bookingID uuid.UUID) error
	Delete(ctx context.Context, actor Actor, bookingID uuid.UUID) error
	Preview(ctx context.Context, baseAmount int64, couponCode string) (pricing.Breakdown, error)
	Checkout(ctx context.Context, actor Actor, input CheckoutInput) (*CheckoutResult, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	coupons    pricing.Coupons
	defaultTax int64
}

func NewBookingCommands(uow shared.UnitOfWork, cfg config.PricingConfig) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		coupons:    pricing.Coupons(cfg.Coupons),
		defaultTax: cfg.DefaultTaxPercent,
	}
}

// activeTaxPercent falls back to the configured default when no tax
// configuration row is active.
func activeTaxPercent(ctx context.Context, reads shared.CommandReads, fallback int64) (int64, error) {
	percent, err := reads.ActiveTaxPercent(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return fallback, nil
		}
		return 0, err
	}
	return percent, nil
}

// Create stores a PENDING booking with its pricing frozen in. No seats are
// committed; the ledger moves only when payment confirms the order. The
// capacity checks here are advisory so callers get an early error, the
// authoritative check is the conditional update at confirmation time.
func (c *bookingCommandsImpl) Create(ctx context.Context, actor Actor, input CreateBookingInput) (*CreateBookingResult, error) {
	stay, err := booking.NewStayPeriod(input.BookingType, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, mapStayErr(err)
	}

	reads := c.uow.CommandReads()

	roomSnap, err := reads.RoomByID(ctx, input.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, err
	}
	// Zero availability wins over the derived BOOKED status, so a full
	// room reads as room-full rather than not-available.
	if roomSnap.AvailableSeats == 0 {
		return nil, errs.ErrRoomFull
	}
	if roomSnap.Status != room.StatusAvailable.String() {
		return nil, errs.ErrRoomNotAvailable
	}
	if roomSnap.AvailableSeats < input.SeatsSelected {
		return nil, errs.ErrInsufficientSeats
	}

	taxPercent, err := activeTaxPercent(ctx, reads, c.defaultTax)
	if err != nil {
		return nil, err
	}
	breakdown, err := pricing.Quote(input.BaseAmount, taxPercent, input.CouponCode, c.coupons)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	b, err := booking.NewBooking(input.RoomID, actor.UserID, input.SeatsSelected, stay, booking.Pricing{
		BaseAmount:  breakdown.BaseAmount,
		TaxAmount:   breakdown.Tax,
		Discount:    breakdown.CouponDiscount,
		TotalAmount: breakdown.TotalAmount,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrRoomNotFound
			}
			return err
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookingResult{BookingID: bookingID, Pricing: breakdown}, nil
}

// Update applies a partial update. Guests may reshape their own booking only
// while it is provisional and never through the status field; privileged
// actors drive the full state machine, with any seat delta applied to the
// ledger inside the same transaction.
func (c *bookingCommandsImpl) Update(ctx context.Context, actor Actor, bookingID uuid.UUID, input UpdateBookingInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadOwnedBooking(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}

		if !actor.Role.Privileged() {
			if input.Status != nil {
				return errs.ErrForbidden
			}
			if !b.Status().IsProvisional() {
				return errs.ErrForbidden
			}
		}

		var ledgerDelta int32

		if input.BookingType != nil || input.CheckIn != nil || input.CheckOut != nil {
			bookingType := patch.Coalesce(input.BookingType, b.Stay().Type())
			checkIn := patch.Coalesce(input.CheckIn, b.Stay().CheckIn())
			checkOut := b.Stay().CheckOut()
			if input.CheckOut != nil {
				checkOut = input.CheckOut
			}
			if err := b.ChangeStay(bookingType, checkIn, checkOut); err != nil {
				return mapBookingErr(err)
			}
		}

		if input.SeatsSelected != nil {
			delta, err := b.ChangeSeats(*input.SeatsSelected)
			if err != nil {
				return mapBookingErr(err)
			}
			ledgerDelta += delta
		}

		if input.Status != nil {
			if !input.Status.IsValid() {
				return errs.ErrInvalidTransition
			}
			delta, err := b.TransitionTo(*input.Status)
			if err != nil {
				return mapBookingErr(err)
			}
			ledgerDelta += delta
		}

		if ledgerDelta != 0 {
			if err := tx.Rooms().AdjustSeats(ctx, tx.DB(), b.RoomID(), ledgerDelta); err != nil {
				return err
			}
		}

		return tx.Bookings().Save(ctx, tx.DB(), b)
	})
}

// Cancel terminates a booking. A confirmed booking releases its seats in the
// same transaction as the status flip.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor Actor, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadOwnedBooking(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}

		delta, err := b.Cancel()
		if err != nil {
			return mapBookingErr(err)
		}
		if delta != 0 {
			if err := tx.Rooms().AdjustSeats(ctx, tx.DB(), b.RoomID(), delta); err != nil {
				return err
			}
		}
		return tx.Bookings().Save(ctx, tx.DB(), b)
	})
}

// Delete removes the row entirely. Guests may delete their own provisional
// bookings; deleting a booking that holds seats is privileged-only and
// releases them atomically with the delete.
func (c *bookingCommandsImpl) Delete(ctx context.Context, actor Actor, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.loadOwnedBooking(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}

		if b.Status().HoldsSeats() {
			if !actor.Role.Privileged() {
				return errs.ErrForbidden
			}
			if err := tx.Rooms().AdjustSeats(ctx, tx.DB(), b.RoomID(), -b.SeatsSelected()); err != nil {
				return err
			}
		}
		return tx.Bookings().Delete(ctx, tx.DB(), b.ID())
	})
}

// Preview quotes a price without persisting anything.
func (c *bookingCommandsImpl) Preview(ctx context.Context, baseAmount int64, couponCode string) (pricing.Breakdown, error) {
	taxPercent, err := activeTaxPercent(ctx, c.uow.CommandReads(), c.defaultTax)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	breakdown, err := pricing.Quote(baseAmount, taxPercent, couponCode, c.coupons)
	if err != nil {
		return pricing.Breakdown{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return breakdown, nil
}

// Checkout groups the actor's provisional bookings into one order with a
// PENDING payment for the summed total. The attach statement re-checks
// ownership and status, so a booking that changed concurrently drops the
// whole checkout.
func (c *bookingCommandsImpl) Checkout(ctx context.Context, actor Actor, input CheckoutInput) (*CheckoutResult, error) {
	if len(input.BookingIDs) == 0 {
		return nil, errs.ErrNothingToCheckout
	}

	var result CheckoutResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var total int64
		seen := make(map[uuid.UUID]struct{}, len(input.BookingIDs))
		for _, id := range input.BookingIDs {
			if _, dup := seen[id]; dup {
				return errs.ErrDomainValidation
			}
			seen[id] = struct{}{}

			snap, err := tx.Reads().BookingByID(ctx, id)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.ErrBookingNotFound
				}
				return err
			}
			if snap.UserID != actor.UserID {
				return errs.ErrBookingNotFound
			}
			if !snap.Status.IsProvisional() || snap.OrderID != nil {
				return errs.ErrInvalidTransition
			}
			total += snap.TotalAmount
		}

		o, err := order.NewBookingOrder(actor.UserID, total)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		orderID, err := tx.Orders().Create(ctx, tx.DB(), o)
		if err != nil {
			return err
		}

		attached, err := tx.Bookings().AttachToOrder(ctx, tx.DB(), input.BookingIDs, orderID, actor.UserID)
		if err != nil {
			return err
		}
		if attached != int64(len(input.BookingIDs)) {
			return errs.ErrInvalidTransition
		}

		p, err := payment.NewPayment(orderID, input.PaymentMethod, total)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		paymentID, err := tx.Payments().Create(ctx, tx.DB(), p)
		if err != nil {
			return err
		}

		result = CheckoutResult{OrderID: orderID, PaymentID: paymentID, TotalAmount: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// loadOwnedBooking reads a booking inside the transaction and enforces
// ownership. Other guests' bookings read as not found, not forbidden.
func (c *bookingCommandsImpl) loadOwnedBooking(ctx context.Context, tx shared.Tx, actor Actor, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.Role.Privileged() && snap.UserID != actor.UserID {
		return nil, errs.ErrBookingNotFound
	}

	b, err := snap.ToEntity()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return b, nil
}

func mapBookingErr(err error) error {
	switch err {
	case booking.ErrInvalidTransition, booking.ErrBookingTerminal:
		return errs.Mark(err, errs.ErrInvalidTransition)
	case booking.ErrInvalidSeats:
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return mapStayErr(err)
	}
}

func mapStayErr(err error) error {
	switch err {
	case booking.ErrCheckOutRequired:
		return errs.Mark(err, errs.ErrCheckOutRequired)
	case booking.ErrCheckOutForbidden, booking.ErrInvalidStayPeriod:
		return errs.Mark(err, errs.ErrInvalidStayPeriod)
	default:
		return err
	}
}
