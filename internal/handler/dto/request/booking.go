package request

import (
	"strings"
	"time"

	"hostel-booking/internal/domain/booking"
	"hostel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        uuid.UUID  `json:"room_id" binding:"required"`
	SeatsSelected int32      `json:"seats_selected" binding:"required,min=1"`
	BookingType   string     `json:"booking_type" binding:"required"`
	CheckIn       time.Time  `json:"check_in" binding:"required"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
	BaseAmount    int64      `json:"base_amount" binding:"min=0"`
	CouponCode    *string    `json:"coupon_code,omitempty"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomID:        r.RoomID,
		SeatsSelected: r.SeatsSelected,
		BookingType:   booking.Type(r.BookingType),
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		BaseAmount:    r.BaseAmount,
		CouponCode:    r.GetCouponCode(),
	}
}

func (r CreateBookingRequest) GetCouponCode() string {
	if r.CouponCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.CouponCode)
}

// UpdateBookingRequest carries partial updates; absent fields stay untouched.
type UpdateBookingRequest struct {
	SeatsSelected *int32     `json:"seats_selected,omitempty"`
	BookingType   *string    `json:"booking_type,omitempty"`
	CheckIn       *time.Time `json:"check_in,omitempty"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
	Status        *string    `json:"status,omitempty"`
}

func (r UpdateBookingRequest) ToInput() commands.UpdateBookingInput {
	input := commands.UpdateBookingInput{
		SeatsSelected: r.SeatsSelected,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
	}
	if r.BookingType != nil {
		t := booking.Type(*r.BookingType)
		input.BookingType = &t
	}
	if r.Status != nil {
		s := booking.Status(*r.Status)
		input.Status = &s
	}
	return input
}

// IsCancelOnly reports whether the patch is a plain owner cancellation,
// which is allowed for non-privileged actors unlike other status writes.
func (r UpdateBookingRequest) IsCancelOnly() bool {
	return r.Status != nil &&
		booking.Status(*r.Status) == booking.StatusCancelled &&
		r.SeatsSelected == nil && r.BookingType == nil &&
		r.CheckIn == nil && r.CheckOut == nil
}

type PreviewPricingRequest struct {
	BaseAmount int64   `json:"base_amount" binding:"min=0"`
	CouponCode *string `json:"coupon_code,omitempty"`
}

func (r PreviewPricingRequest) GetCouponCode() string {
	if r.CouponCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.CouponCode)
}

type CheckoutRequest struct {
	BookingIDs    []uuid.UUID `json:"booking_ids" binding:"required,min=1"`
	PaymentMethod string      `json:"payment_method" binding:"required"`
}
