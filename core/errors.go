package core

import (
	"errors"
	"fmt"
)

// Error represents a failure in the tracking pipeline with full context.
type Error struct {
	Op      string // operation that failed, e.g. "track", "identify", "device-id"
	Status  int    // HTTP status code, zero when no response was received
	Message string
	Err     error // sentinel for classification
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("openpanel: %s: %s (status=%d)", e.Op, e.Message, e.Status)
	}
	if e.Op != "" {
		return fmt.Sprintf("openpanel: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("openpanel: %s", e.Message)
}

// Unwrap returns the underlying sentinel for error chaining.
func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel errors for classification.
var (
	ErrConfiguration = errors.New("configuration value missing")
	ErrHeader        = errors.New("invalid header")
	ErrSerialization = errors.New("serialization error")
	ErrRequest       = errors.New("request error")
	ErrDisabled      = errors.New("tracker disabled")
	ErrFiltered      = errors.New("event filtered")
)

// Sentinels used when classifying HTTP status codes. The dispatch path never
// inspects status codes itself; these surface only through the opt-in
// openpanel.CheckResponse helper.
var (
	ErrUnauthorized    = errors.New("not authorized")
	ErrTooManyRequests = errors.New("too many requests")
	ErrServer          = errors.New("server error")
)
