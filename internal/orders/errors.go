package orders

import "errors"

// ValidationError rejects an order request before anything is persisted.
// Handlers map it to a 400; every other error from this package is a
// storage failure and maps to a 500.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	// ErrInvalidStatus means the supplied status is outside the
	// {pending, Shipped, Cancelled} enum.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidTransition means the order exists but its current status
	// does not permit the requested transition.
	ErrInvalidTransition = errors.New("invalid status transition")
)
