package response

import (
	"time"

	"hostel-booking/internal/domain/pricing"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/commands"
	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	OrderID       *uuid.UUID `json:"orderId,omitempty"`
	RoomID        uuid.UUID  `json:"roomId"`
	RoomName      string     `json:"roomName"`
	UserID        uuid.UUID  `json:"userId"`
	SeatsSelected int32      `json:"seatsSelected"`
	BookingType   string     `json:"bookingType"`
	CheckIn       time.Time  `json:"checkIn"`
	CheckOut      *time.Time `json:"checkOut,omitempty"`
	BaseAmount    int64      `json:"baseAmount"`
	TaxAmount     int64      `json:"taxAmount"`
	Discount      int64      `json:"discount"`
	TotalAmount   int64      `json:"totalAmount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"roomId"`
	RoomName      string    `json:"roomName"`
	SeatsSelected int32     `json:"seatsSelected"`
	BookingType   string    `json:"bookingType"`
	Status        string    `json:"status"`
	TotalAmount   int64     `json:"totalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreateBookingResponse struct {
	BookingID uuid.UUID         `json:"bookingId"`
	Pricing   pricing.Breakdown `json:"pricing"`
}

type CheckoutResponse struct {
	OrderID     uuid.UUID `json:"orderId"`
	PaymentID   uuid.UUID `json:"paymentId"`
	TotalAmount int64     `json:"totalAmount"`
}

func FromBookingView(rm *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, errs.Wrap(err, "failed to map booking view")
	}
	return &resp, nil
}

func FromBookingListItem(rm *queries.BookingListItem) (*BookingListResponse, error) {
	var resp BookingListResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, errs.Wrap(err, "failed to map booking list item")
	}
	return &resp, nil
}

func FromCreateResult(result *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID: result.BookingID,
		Pricing:   result.Pricing,
	}
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:     result.OrderID,
		PaymentID:   result.PaymentID,
		TotalAmount: result.TotalAmount,
	}
}
