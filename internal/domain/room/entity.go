package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidBeds       = errors.New("beds must be at least 1")
	ErrSeatCountViolated = errors.New("booked seats out of range")
)

// Room is the unit of seat capacity. Its seat counters are mutated only by
// the seat inventory ledger; this entity is a read-side representation used
// for validation and views.
type Room struct {
	id          uuid.UUID
	name        string
	beds        int32
	bookedSeats int32
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(name string, beds int32) (*Room, error) {
	if beds < 1 {
		return nil, ErrInvalidBeds
	}
	return &Room{
		id:   uuid.New(),
		name: name,
		beds: beds,
	}, nil
}

func ReconstructRoom(id uuid.UUID, name string, beds, bookedSeats int32, createdAt, updatedAt time.Time) (*Room, error) {
	if beds < 1 {
		return nil, ErrInvalidBeds
	}
	if bookedSeats < 0 || bookedSeats > beds {
		return nil, ErrSeatCountViolated
	}
	return &Room{
		id:          id,
		name:        name,
		beds:        beds,
		bookedSeats: bookedSeats,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Room) AvailableSeats() int32 {
	return r.beds - r.bookedSeats
}

func (r *Room) Status() Status {
	return StatusFor(r.AvailableSeats())
}

func (r *Room) IsFull() bool {
	return r.AvailableSeats() == 0
}

func (r *Room) CanAccommodate(seats int32) bool {
	return seats >= 1 && seats <= r.AvailableSeats()
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Beds() int32          { return r.beds }
func (r *Room) BookedSeats() int32   { return r.bookedSeats }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
