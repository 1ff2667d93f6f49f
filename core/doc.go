// Package core provides the shared primitives for the OpenPanel Go SDK.
//
// The core package defines the property model, the credential wrapper, the
// error taxonomy, and the telemetry hooks that the tracker in package
// openpanel builds on. Application code usually imports this package only for
// [Properties], for branching on the sentinel errors with errors.Is, or for
// supplying a [TelemetryHook].
//
// # Properties
//
// Event properties are string-to-string maps. Per-call properties are merged
// with the tracker's global properties before every dispatch, and global
// values win on key collision:
//
//	props := core.Properties{"plan": "free"}
//	merged := props.MergedWith(core.Properties{"plan": "pro"})
//	// merged["plan"] == "pro"
//
// # Errors
//
// Every error returned by the SDK wraps one of the sentinel errors declared
// in this package, so callers can branch without string matching:
//
//	_, err := tracker.Track(ctx, "signup", props, nil)
//	if errors.Is(err, core.ErrFiltered) || errors.Is(err, core.ErrDisabled) {
//	    // expected no-op, nothing was sent
//	}
package core
