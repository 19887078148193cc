package usecase

import (
	"errors"
	"fmt"
)

// Error classes the adaptor layer maps to HTTP statuses.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
)
