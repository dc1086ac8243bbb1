//go:build unit

package room_test

import (
	"testing"
	"time"

	"hostel-booking/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	r, err := room.NewRoom("Dorm A", 8)
	require.NoError(t, err)
	assert.Equal(t, int32(8), r.AvailableSeats())
	assert.Equal(t, room.StatusAvailable, r.Status())

	_, err = room.NewRoom("Broken", 0)
	assert.ErrorIs(t, err, room.ErrInvalidBeds)
}

func TestReconstructRoom(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		beds        int32
		bookedSeats int32
		wantErr     error
	}{
		{name: "valid", beds: 4, bookedSeats: 2},
		{name: "fully booked", beds: 4, bookedSeats: 4},
		{name: "empty", beds: 4, bookedSeats: 0},
		{name: "overbooked rejected", beds: 4, bookedSeats: 5, wantErr: room.ErrSeatCountViolated},
		{name: "negative rejected", beds: 4, bookedSeats: -1, wantErr: room.ErrSeatCountViolated},
		{name: "no beds rejected", beds: 0, bookedSeats: 0, wantErr: room.ErrInvalidBeds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := room.ReconstructRoom(uuid.New(), "Dorm B", tt.beds, tt.bookedSeats, now, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.beds-tt.bookedSeats, r.AvailableSeats())
		})
	}
}

func TestRoom_CapacityChecks(t *testing.T) {
	now := time.Now()
	r, err := room.ReconstructRoom(uuid.New(), "Dorm C", 6, 4, now, now)
	require.NoError(t, err)

	assert.False(t, r.IsFull())
	assert.True(t, r.CanAccommodate(1))
	assert.True(t, r.CanAccommodate(2))
	assert.False(t, r.CanAccommodate(3))
	assert.False(t, r.CanAccommodate(0))

	full, err := room.ReconstructRoom(uuid.New(), "Dorm D", 6, 6, now, now)
	require.NoError(t, err)
	assert.True(t, full.IsFull())
	assert.Equal(t, room.StatusBooked, full.Status())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, room.StatusAvailable, room.StatusFor(1))
	assert.Equal(t, room.StatusBooked, room.StatusFor(0))
	assert.Equal(t, room.StatusBooked, room.StatusFor(-1))
}
