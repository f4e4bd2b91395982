package errors

import (
	"errors"
)

// Sentinel errors for different categories
var (
	// ErrConfig - required configuration missing or invalid (fatal at startup)
	ErrConfig = errors.New("configuration error")

	// ErrInvalidInput - caller supplied a malformed request (empty messages, unknown role)
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport - network failure, non-2xx status or unreadable response body
	ErrTransport = errors.New("transport error")

	// ErrInvalidResponse - response decoded but has the wrong shape (e.g. no choices)
	ErrInvalidResponse = errors.New("invalid response")

	// ErrInvalidModelOutput - model text could not be decoded into the expected value
	ErrInvalidModelOutput = errors.New("invalid model output")

	// ErrRetryExhausted - the LLM call failed on the first attempt and on its retry
	ErrRetryExhausted = errors.New("retry exhausted")
)
