package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrInvalidDeliveryTime   = errors.New("invalid delivery time")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidRating         = errors.New("invalid rating")

	ErrOrderNotFound     = errors.New("order not found")
	ErrCourierNotFound   = errors.New("courier not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderImmutable    = errors.New("order can no longer be modified")
	ErrInvalidCode       = errors.New("invalid or expired code")
	ErrNotRatable        = errors.New("order cannot be rated")
	ErrConflict          = errors.New("resource already exists")
)
