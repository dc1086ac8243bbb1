package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusReserved  Status = "RESERVED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReserved, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// HoldsSeats reports whether a booking in this status has committed seat
// capacity in the ledger.
func (s Status) HoldsSeats() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// IsProvisional reports whether the booking has not yet committed seats and
// may still be freely mutated by its owner.
func (s Status) IsProvisional() bool {
	return s == StatusPending || s == StatusReserved
}

type Type string

const (
	TypeShortTerm Type = "SHORT_TERM"
	TypeLongTerm  Type = "LONG_TERM"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeShortTerm, TypeLongTerm:
		return true
	default:
		return false
	}
}
