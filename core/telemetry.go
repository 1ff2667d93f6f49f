package core

import "time"

// TelemetryHook receives notifications about dispatch lifecycle events.
// Implementations can use this for logging, metrics, or tracing.
//
// Event types never include sensitive data: the client secret is stored
// separately as a Secret, and event properties are not carried on telemetry
// events. Only operational metadata is exposed (endpoint, event kind,
// timing, status code).
type TelemetryHook interface {
	// OnDispatchStart is called just before a request leaves the tracker.
	OnDispatchStart(e DispatchStartEvent)

	// OnDispatchEnd is called when a request completes or fails.
	OnDispatchEnd(e DispatchEndEvent)
}

// DispatchStartEvent contains metadata about a starting request.
type DispatchStartEvent struct {
	Endpoint string    // URL the request is sent to
	Event    string    // event kind tag, e.g. "track", or "device-id" for the lookup path
	Start    time.Time // when the request started
}

// DispatchEndEvent contains metadata about a completed request.
type DispatchEndEvent struct {
	Endpoint string    // URL the request was sent to
	Event    string    // event kind tag
	Start    time.Time // when the request started
	End      time.Time // when the request completed
	Status   int       // HTTP status code, zero if no response was received
	Err      error     // error if the request failed, nil on success
}

// Duration returns the elapsed time for the request.
func (e DispatchEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopTelemetryHook is a no-op implementation of TelemetryHook.
// Use this as a default when no telemetry is configured.
type NoopTelemetryHook struct{}

// OnDispatchStart does nothing.
func (NoopTelemetryHook) OnDispatchStart(DispatchStartEvent) {}

// OnDispatchEnd does nothing.
func (NoopTelemetryHook) OnDispatchEnd(DispatchEndEvent) {}

// Compile-time check that NoopTelemetryHook implements TelemetryHook.
var _ TelemetryHook = NoopTelemetryHook{}
