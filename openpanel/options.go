package openpanel

import (
	"net/http"
	"time"

	"github.com/openpanel-dev/openpanel-go/core"
)

// DefaultTrackURL is the default URL for the OpenPanel event collection API.
const DefaultTrackURL = "https://api.openpanel.dev/track"

// Environment variable names read by NewFromEnv.
const (
	EnvTrackURL     = "OPENPANEL_TRACK_URL"
	EnvClientID     = "OPENPANEL_CLIENT_ID"
	EnvClientSecret = "OPENPANEL_CLIENT_SECRET"
)

// Header names used by WithDefaultHeaders.
const (
	headerClientID     = "openpanel-client-id"
	headerClientSecret = "openpanel-client-secret"
	contentTypeJSON    = "application/json"
)

// Config holds the configuration for a Tracker.
type Config struct {
	// TrackURL is the URL events are posted to.
	// Defaults to DefaultTrackURL.
	TrackURL string

	// ClientID identifies the OpenPanel project.
	ClientID string

	// ClientSecret authenticates the client. Stored as a core.Secret so it
	// never leaks through logging or serialization.
	ClientSecret core.Secret

	// HTTPClient is the HTTP client used for requests.
	// Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Telemetry receives dispatch lifecycle events.
	// Defaults to core.NoopTelemetryHook.
	Telemetry core.TelemetryHook

	// Timeout is the per-request timeout. Zero means no timeout beyond
	// whatever the HTTP client imposes.
	Timeout time.Duration
}

// Option is a function that configures a Tracker.
type Option func(*Config)

// WithTrackURL sets a custom URL for the event collection API.
func WithTrackURL(url string) Option {
	return func(c *Config) {
		c.TrackURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTelemetry sets the telemetry hook for the tracker.
func WithTelemetry(h core.TelemetryHook) Option {
	return func(c *Config) {
		if h != nil {
			c.Telemetry = h
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}
