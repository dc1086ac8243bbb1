package booking

import (
	"errors"
	"time"
)

var (
	ErrCheckOutRequired  = errors.New("check-out date required for short-term booking")
	ErrCheckOutForbidden = errors.New("check-out date not allowed for long-term booking")
	ErrInvalidStayPeriod = errors.New("check-out must be after check-in")
)

// StayPeriod couples the booking type with its dates. SHORT_TERM stays carry
// a check-out date strictly after check-in; LONG_TERM stays carry none.
type StayPeriod struct {
	bookingType Type
	checkIn     time.Time
	checkOut    *time.Time
}

func NewStayPeriod(bookingType Type, checkIn time.Time, checkOut *time.Time) (StayPeriod, error) {
	switch bookingType {
	case TypeShortTerm:
		if checkOut == nil {
			return StayPeriod{}, ErrCheckOutRequired
		}
		if !checkOut.After(checkIn) {
			return StayPeriod{}, ErrInvalidStayPeriod
		}
	case TypeLongTerm:
		if checkOut != nil {
			return StayPeriod{}, ErrCheckOutForbidden
		}
	default:
		return StayPeriod{}, ErrInvalidStayPeriod
	}

	return StayPeriod{
		bookingType: bookingType,
		checkIn:     checkIn,
		checkOut:    checkOut,
	}, nil
}

func (p StayPeriod) Type() Type {
	return p.bookingType
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() *time.Time {
	return p.checkOut
}

// Pricing captures the amounts frozen onto a booking at creation time.
// All amounts are integer minor units; tax and discount use floor division.
type Pricing struct {
	BaseAmount  int64
	TaxAmount   int64
	Discount    int64
	TotalAmount int64
}
