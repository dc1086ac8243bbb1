//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "hostel-booking/internal/handler/dto/response"
	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBookingView(t *testing.T) {
	orderID := uuid.New()
	checkIn := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)

	view := &queries.BookingView{
		ID:            uuid.New(),
		OrderID:       &orderID,
		RoomID:        uuid.New(),
		RoomName:      "Dorm 4",
		UserID:        uuid.New(),
		SeatsSelected: 2,
		BookingType:   "SHORT_TERM",
		CheckIn:       checkIn,
		CheckOut:      &checkOut,
		BaseAmount:    1000,
		TaxAmount:     160,
		Discount:      58,
		TotalAmount:   1102,
		Status:        "PENDING",
		CreatedAt:     checkIn,
		UpdatedAt:     checkIn,
	}

	resp, err := resdto.FromBookingView(view)
	require.NoError(t, err)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, view.OrderID, resp.OrderID)
	assert.Equal(t, view.RoomName, resp.RoomName)
	assert.Equal(t, view.SeatsSelected, resp.SeatsSelected)
	assert.Equal(t, view.CheckIn, resp.CheckIn)
	assert.Equal(t, view.CheckOut, resp.CheckOut)
	assert.Equal(t, view.TotalAmount, resp.TotalAmount)
	assert.Equal(t, view.Status, resp.Status)
}

func TestFromBookingListItem(t *testing.T) {
	item := &queries.BookingListItem{
		ID:            uuid.New(),
		RoomID:        uuid.New(),
		RoomName:      "Dorm 6",
		SeatsSelected: 3,
		BookingType:   "LONG_TERM",
		Status:        "CONFIRMED",
		TotalAmount:   2320,
		CreatedAt:     time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	}

	resp, err := resdto.FromBookingListItem(item)
	require.NoError(t, err)

	assert.Equal(t, item.ID, resp.ID)
	assert.Equal(t, item.RoomName, resp.RoomName)
	assert.Equal(t, item.Status, resp.Status)
	assert.Equal(t, item.TotalAmount, resp.TotalAmount)
}

func TestFromRoomView(t *testing.T) {
	view := &queries.RoomView{
		ID:             uuid.New(),
		Name:           "Dorm 8",
		Beds:           8,
		BookedSeats:    5,
		AvailableSeats: 3,
		Status:         "AVAILABLE",
		CreatedAt:      time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	}

	resp, err := resdto.FromRoomView(view)
	require.NoError(t, err)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, view.Beds, resp.Beds)
	assert.Equal(t, view.BookedSeats, resp.BookedSeats)
	assert.Equal(t, view.AvailableSeats, resp.AvailableSeats)
	assert.Equal(t, view.Status, resp.Status)
}
