package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrAlreadyExists           = errors.New("already exists")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidWish             = errors.New("invalid wish")
	ErrInvalidOffer            = errors.New("invalid offer")
	ErrInvalidPriceEntry       = errors.New("invalid price entry")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// ErrNoWishes rejects order creation for a user with nothing to order.
var ErrNoWishes = fmt.Errorf("no wishes found: %w", ErrNotFound)

// DuplicateKeyError carries the conflicting field and value of a
// uniqueness-constraint violation so callers can self-correct.
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s %q", e.Field, e.Value)
}

// Is makes DuplicateKeyError match ErrAlreadyExists in errors.Is chains.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrAlreadyExists
}
