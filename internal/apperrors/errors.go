package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates an investment amount outside the property's
// configured [minInvestment, maxInvestment] bounds.
var ErrInvalidAmount = errors.New("investment amount outside allowed bounds")

// ErrAlreadyFunded indicates the property's funding target has already been met.
var ErrAlreadyFunded = errors.New("property is already fully funded")

// ErrExceedsFundingTarget indicates the investment would push fundingRaised
// past fundingTarget. The caller must retry with a smaller amount; the engine
// never clips automatically.
var ErrExceedsFundingTarget = errors.New("investment exceeds remaining funding needed")

// ErrInsufficientBalance indicates the investor's wallet balance is less than
// the requested amount.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// ErrInternal indicates an unexpected failure during transaction execution.
// The whole investment transaction is rolled back when this is returned.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message safe to log. Repositories return these for unexpected store failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
