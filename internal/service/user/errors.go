package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidRole           = errors.New("invalid role")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCourierHasOrders   = errors.New("courier has active orders")
	ErrConflict           = errors.New("resource already exists")
)
