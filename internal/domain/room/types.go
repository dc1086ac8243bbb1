package room

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBooked    Status = "BOOKED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked:
		return true
	default:
		return false
	}
}

// StatusFor derives the room status from its remaining capacity.
// A room is BOOKED exactly when no seats remain.
func StatusFor(availableSeats int32) Status {
	if availableSeats <= 0 {
		return StatusBooked
	}
	return StatusAvailable
}
