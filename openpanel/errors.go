package openpanel

import (
	"fmt"
	"net/http"

	"github.com/openpanel-dev/openpanel-go/core"
)

// newConfigurationError reports a missing required configuration value.
func newConfigurationError(name string) error {
	return &core.Error{
		Op:      "configure",
		Message: fmt.Sprintf("required value %s is not set", name),
		Err:     core.ErrConfiguration,
	}
}

// newHeaderError reports a header name or value that is not wire-valid.
func newHeaderError(name string) error {
	return &core.Error{
		Op:      "header",
		Message: fmt.Sprintf("header %q is not a valid name/value pair", name),
		Err:     core.ErrHeader,
	}
}

// newSerializationError wraps a JSON encode or decode failure.
func newSerializationError(op string, err error) error {
	return &core.Error{
		Op:      op,
		Message: err.Error(),
		Err:     core.ErrSerialization,
	}
}

// newRequestError wraps a transport-level failure.
func newRequestError(op string, err error) error {
	return &core.Error{
		Op:      op,
		Message: err.Error(),
		Err:     core.ErrRequest,
	}
}

// newDisabledError reports a dispatch attempt on a disabled tracker.
func newDisabledError(op string) error {
	return &core.Error{
		Op:      op,
		Message: "tracker is disabled",
		Err:     core.ErrDisabled,
	}
}

// newFilteredError reports a track event vetoed by the caller's filter.
func newFilteredError(event string) error {
	return &core.Error{
		Op:      "track",
		Message: fmt.Sprintf("event %q filtered by caller predicate", event),
		Err:     core.ErrFiltered,
	}
}

// CheckResponse classifies a non-2xx response into a sentinel-wrapped error.
// The dispatch path never interprets status codes; this helper is strictly
// opt-in for callers who want errors.Is branching instead of inspecting
// resp.StatusCode themselves. Returns nil for 2xx responses.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		sentinel = core.ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		sentinel = core.ErrTooManyRequests
	case resp.StatusCode >= 500:
		sentinel = core.ErrServer
	default:
		sentinel = core.ErrRequest
	}

	return &core.Error{
		Op:      "response",
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
		Err:     sentinel,
	}
}
