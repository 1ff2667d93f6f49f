package openpanel

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/openpanel-dev/openpanel-go/core"
)

// revenueEventName is the reserved event name for revenue tracking.
const revenueEventName = "revenue"

// FilterFunc is a caller-supplied predicate evaluated against the merged
// properties of a track event before dispatch. Returning true vetoes the
// event: Track fails with core.ErrFiltered and no request is sent.
type FilterFunc func(props core.Properties) bool

// Tracker submits analytics events to an OpenPanel collection endpoint.
//
// Construction is builder-style: create a Tracker with New or NewFromEnv,
// then chain WithDefaultHeaders, WithHeader, WithGlobalProperties, and
// Disable as needed. Builder calls mutate and return the same Tracker, so
// configuration must finish before the Tracker is shared across goroutines.
// After that, tracking calls are safe for concurrent use.
type Tracker struct {
	trackURL     string
	clientID     string
	clientSecret core.Secret
	headers      http.Header
	globalProps  core.Properties
	disabled     bool
	httpClient   *http.Client
	telemetry    core.TelemetryHook
}

// New creates a new Tracker with the given credentials and options.
func New(clientID, clientSecret string, opts ...Option) *Tracker {
	cfg := Config{
		TrackURL:     DefaultTrackURL,
		ClientID:     clientID,
		ClientSecret: core.NewSecret(clientSecret),
		HTTPClient:   http.DefaultClient,
		Telemetry:    core.NoopTelemetryHook{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := cfg.HTTPClient
	if cfg.Timeout > 0 {
		// Copy so the caller's client is never mutated.
		clone := *httpClient
		clone.Timeout = cfg.Timeout
		httpClient = &clone
	}

	return &Tracker{
		trackURL:     cfg.TrackURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		headers:      make(http.Header),
		globalProps:  make(core.Properties),
		httpClient:   httpClient,
		telemetry:    cfg.Telemetry,
	}
}

// NewFromEnv creates a new Tracker from the OPENPANEL_TRACK_URL,
// OPENPANEL_CLIENT_ID, and OPENPANEL_CLIENT_SECRET environment variables.
// A .env file in the working directory is loaded first when present; a
// missing .env file is not an error. Fails with core.ErrConfiguration if
// any of the three variables is unset.
func NewFromEnv(opts ...Option) (*Tracker, error) {
	// Values already present in the environment take precedence over .env.
	_ = godotenv.Load()

	trackURL, ok := os.LookupEnv(EnvTrackURL)
	if !ok || trackURL == "" {
		return nil, newConfigurationError(EnvTrackURL)
	}
	clientID, ok := os.LookupEnv(EnvClientID)
	if !ok || clientID == "" {
		return nil, newConfigurationError(EnvClientID)
	}
	clientSecret, ok := os.LookupEnv(EnvClientSecret)
	if !ok || clientSecret == "" {
		return nil, newConfigurationError(EnvClientSecret)
	}

	opts = append([]Option{WithTrackURL(trackURL)}, opts...)
	return New(clientID, clientSecret, opts...), nil
}

// WithDefaultHeaders derives the standard header set from configuration: a
// Content-Type of application/json plus the client-id and client-secret
// headers. Fails with core.ErrHeader if a derived value is not wire-valid.
func (t *Tracker) WithDefaultHeaders() (*Tracker, error) {
	if err := t.setHeader("Content-Type", contentTypeJSON); err != nil {
		return nil, err
	}
	if err := t.setHeader(headerClientID, t.clientID); err != nil {
		return nil, err
	}
	if err := t.setHeader(headerClientSecret, t.clientSecret.Expose()); err != nil {
		return nil, err
	}
	return t, nil
}

// WithHeader sets a custom header, replacing any earlier value for the same
// name. Use this for e.g. geo location headers. Fails with core.ErrHeader if
// the name or value is not wire-valid.
func (t *Tracker) WithHeader(name, value string) (*Tracker, error) {
	if err := t.setHeader(name, value); err != nil {
		return nil, err
	}
	return t, nil
}

// WithGlobalProperties sets the global property set, replacing any
// previously attached set. Global properties are merged into every track and
// identify event, and win over per-call properties on key collision.
func (t *Tracker) WithGlobalProperties(props core.Properties) *Tracker {
	t.globalProps = props.Clone()
	return t
}

// Disable marks the Tracker disabled. A disabled Tracker refuses to perform
// any network I/O: every tracking call and FetchDeviceID fail with
// core.ErrDisabled. Builder calls remain usable.
func (t *Tracker) Disable() *Tracker {
	t.disabled = true
	return t
}

// Track submits a custom event. Per-call properties are merged with the
// global set (global wins on collision). If filter is non-nil it is
// evaluated against the merged properties first; a true result vetoes the
// event with core.ErrFiltered before any network I/O.
func (t *Tracker) Track(ctx context.Context, event string, properties core.Properties, filter FilterFunc) (*http.Response, error) {
	merged := properties.MergedWith(t.globalProps)
	if filter != nil && filter(merged) {
		return nil, newFilteredError(event)
	}

	return t.send(ctx, envelope{
		Type: EventTrack,
		Payload: trackPayload{
			Name:       event,
			Properties: merged,
		},
	})
}

// Identify submits a user identification event. The user's properties are
// merged with the global set (global wins); all other fields pass through
// unchanged.
func (t *Tracker) Identify(ctx context.Context, user IdentifyUser) (*http.Response, error) {
	user.Properties = user.Properties.MergedWith(t.globalProps)

	return t.send(ctx, envelope{
		Type:    EventIdentify,
		Payload: user,
	})
}

// Increment increases a numeric property on the given profile. No property
// merge occurs; the payload is exactly {profileId, property, value}.
func (t *Tracker) Increment(ctx context.Context, profileID, property string, value int64) (*http.Response, error) {
	return t.send(ctx, envelope{
		Type: EventIncrement,
		Payload: counterPayload{
			ProfileID: profileID,
			Property:  property,
			Value:     value,
		},
	})
}

// Decrement decreases a numeric property on the given profile. The value is
// sent as-is; the sign convention is the caller's responsibility.
func (t *Tracker) Decrement(ctx context.Context, profileID, property string, value int64) (*http.Response, error) {
	return t.send(ctx, envelope{
		Type: EventDecrement,
		Payload: counterPayload{
			ProfileID: profileID,
			Property:  property,
			Value:     value,
		},
	})
}

// Revenue submits a revenue event: a track event with the reserved name
// "revenue", the amount at the payload's top level, and an "amount" property
// (decimal string) injected into the merged property set. The injected
// property wins over a global property of the same name.
func (t *Tracker) Revenue(ctx context.Context, amount int64, properties core.Properties) (*http.Response, error) {
	merged := properties.MergedWith(t.globalProps)
	merged["amount"] = strconv.FormatInt(amount, 10)

	return t.send(ctx, envelope{
		Type: EventTrack,
		Payload: revenuePayload{
			Name:       revenueEventName,
			Amount:     amount,
			Properties: merged,
		},
	})
}
