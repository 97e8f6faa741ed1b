package domain

import "errors"

var (
	// ErrMissingCredentials is returned when email or password is absent
	// from a register/login request.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("cannot place an empty order")
	ErrInvalidQuantity    = errors.New("order item quantity must be positive")
	ErrForbidden          = errors.New("admin access required")
)
