package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	OrderID       *uuid.UUID `json:"order_id,omitempty"`
	RoomID        uuid.UUID  `json:"room_id"`
	RoomName      string     `json:"room_name"`
	UserID        uuid.UUID  `json:"user_id"`
	SeatsSelected int32      `json:"seats_selected"`
	BookingType   string     `json:"booking_type"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
	BaseAmount    int64      `json:"base_amount"`
	TaxAmount     int64      `json:"tax_amount"`
	Discount      int64      `json:"discount"`
	TotalAmount   int64      `json:"total_amount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"room_id"`
	RoomName      string    `json:"room_name"`
	SeatsSelected int32     `json:"seats_selected"`
	BookingType   string    `json:"booking_type"`
	Status        string    `json:"status"`
	TotalAmount   int64     `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type RoomView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Beds           int32     `json:"beds"`
	BookedSeats    int32     `json:"booked_seats"`
	AvailableSeats int32     `json:"available_seats"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type OrderView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	TotalAmount int64     `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
