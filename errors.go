package bootpack

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// BootpackError is an error that can be refined with a message or wrap an
// underlying cause while still matching its sentinel with [errors.Is].
type BootpackError interface {
	error
	WithMessage(message string) BootpackError
	Wrap(err error) BootpackError
}

type baseBootpackError string

const rootError = baseBootpackError("")

var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrIOFailed = rootError.WithMessage("Input/output error")
var ErrSourceTooLarge = rootError.WithMessage("Source image too large")
var ErrUsage = rootError.WithMessage("Incorrect usage")

func (e baseBootpackError) Error() string {
	return string(e)
}

func (e baseBootpackError) WithMessage(message string) BootpackError {
	return customBootpackError{
		message:       message,
		originalError: e,
	}
}

func (e baseBootpackError) Wrap(err error) BootpackError {
	return customBootpackError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customBootpackError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customBootpackError) Error() string {
	return e.message
}

func (e customBootpackError) WithMessage(message string) BootpackError {
	return customBootpackError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customBootpackError) Wrap(err error) BootpackError {
	return customBootpackError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customBootpackError) Unwrap() error {
	return e.originalError
}
