package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Room / seat inventory errors
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomNotAvailable  = errors.New("room not available")
	ErrRoomFull          = errors.New("room full")
	ErrInsufficientSeats = errors.New("insufficient seats")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCheckOutRequired  = errors.New("check-out date required for short-term booking")
	ErrInvalidStayPeriod = errors.New("invalid stay period")

	// Order / payment errors
	ErrOrderNotFound       = errors.New("booking order not found")
	ErrOrderNotPending     = errors.New("booking order is not pending")
	ErrOrderUnfulfillable  = errors.New("paid order cannot be fulfilled")
	ErrPaymentAlreadyFinal = errors.New("payment already finalized")
	ErrNothingToCheckout   = errors.New("no bookings to check out")

	// Authorization errors
	ErrForbidden = errors.New("actor not permitted")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
