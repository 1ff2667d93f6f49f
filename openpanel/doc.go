// Package openpanel provides a client for submitting analytics events to an
// OpenPanel collection endpoint.
//
// # Quick start
//
// Build a Tracker from the environment, attach the default header set, and
// track an event:
//
//	tracker, err := openpanel.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tracker, err = tracker.WithDefaultHeaders()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := tracker.Track(ctx, "signup", core.Properties{"plan": "free"}, nil)
//
// # Filtering
//
// Track accepts an optional predicate evaluated against the merged
// properties. A true result vetoes the event before any network I/O:
//
//	filter := func(props core.Properties) bool {
//	    _, internal := props["internal"]
//	    return internal
//	}
//	_, err := tracker.Track(ctx, "click", props, filter)
//	if errors.Is(err, core.ErrFiltered) {
//	    // vetoed, nothing was sent
//	}
//
// # Global properties
//
// Properties attached with WithGlobalProperties are merged into every track
// and identify event and win over per-call values on key collision.
//
// # Responses
//
// Tracking calls return the raw *http.Response; the library treats only
// transport failures as errors. Callers who prefer errors.Is branching over
// status inspection can pass the response through CheckResponse.
//
// # Concurrency
//
// Builder calls (WithDefaultHeaders, WithHeader, WithGlobalProperties,
// Disable) mutate the Tracker and must complete before it is shared across
// goroutines. After construction, tracking calls are safe for concurrent
// use.
package openpanel
