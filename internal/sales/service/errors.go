package service

import (
	"errors"
	"fmt"
)

var (
	ErrSaleNotFound       = errors.New("sale not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation is the root of all input validation failures. Match with
	// errors.Is; the wrapped message carries the field detail.
	ErrValidation = errors.New("invalid input")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
