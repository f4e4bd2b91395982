package errors

import (
	"context"
	"errors"
	"fmt"
)

// Category returns the gippity error category for an error
func Category(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, context.Canceled):
		return "Canceled"
	case errors.Is(err, ErrConfig):
		return "ErrConfig"
	case errors.Is(err, ErrRetryExhausted):
		return "ErrRetryExhausted"
	case errors.Is(err, ErrInvalidModelOutput):
		return "ErrInvalidModelOutput"
	case errors.Is(err, ErrInvalidResponse):
		return "ErrInvalidResponse"
	case errors.Is(err, ErrTransport):
		return "ErrTransport"
	case errors.Is(err, ErrInvalidInput):
		return "ErrInvalidInput"
	default:
		return "Unknown"
	}
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", message, err)
}

// WrapWithCategory wraps an error with a category while keeping the cause in the chain
func WrapWithCategory(err error, message string, category error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w: %w", message, category, err)
}

// IsCategory checks if error belongs to specific category
func IsCategory(err error, category error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, category)
}

// Config wraps message as configuration error
func Config(message string) error {
	return fmt.Errorf("%s: %w", message, ErrConfig)
}

// InvalidInput wraps message as invalid input
func InvalidInput(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInvalidInput)
}

// InvalidResponse wraps message as invalid response
func InvalidResponse(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInvalidResponse)
}

// InvalidModelOutput wraps error as invalid model output
func InvalidModelOutput(err error, message string) error {
	return WrapWithCategory(err, message, ErrInvalidModelOutput)
}
