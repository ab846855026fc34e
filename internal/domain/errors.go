package domain

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrCoinNotFound       = errors.New("coin not found")
	ErrPriceNotFound      = errors.New("price not found")
	ErrNotTracked         = errors.New("coin not in user's tracking list")
	ErrUpstream           = errors.New("price feed unavailable")
)
