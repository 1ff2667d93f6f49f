// Package config handles configuration file loading for the OpenPanel SDK.
//
// The Tracker itself is usually configured from environment variables via
// openpanel.NewFromEnv or programmatically via openpanel.New. This package
// adds a YAML file source for applications that keep their telemetry
// settings alongside other deployment configuration.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/openpanel-dev/openpanel-go/core"
	"github.com/openpanel-dev/openpanel-go/openpanel"
)

// Config represents the file-based SDK configuration.
type Config struct {
	TrackURL     string `yaml:"track_url"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`

	// Headers are custom headers applied after the default set.
	Headers map[string]string `yaml:"headers,omitempty"`

	// GlobalProperties are merged into every track and identify event.
	GlobalProperties map[string]string `yaml:"global_properties,omitempty"`

	// Disabled builds a tracker that refuses all network I/O.
	Disabled bool `yaml:"disabled,omitempty"`
}

// DefaultConfigPath returns the default configuration file path for the
// current platform.
//   - macOS/Linux: ~/.openpanel/config.yaml
//   - Windows: %USERPROFILE%\.openpanel\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		// Fallback to current directory
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".openpanel", "config.yaml")
}

// Load reads configuration from the specified path.
// If the file doesn't exist, returns an empty config without error.
// Returns an error only if the file exists but cannot be read or parsed.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing config file is not an error
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &core.Error{
			Op:      "configure",
			Message: err.Error(),
			Err:     core.ErrSerialization,
		}
	}

	return cfg, nil
}

// Validate checks that the required values are present. The track URL may be
// omitted; openpanel.DefaultTrackURL is used then.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return missingValue("client_id")
	}
	if c.ClientSecret == "" {
		return missingValue("client_secret")
	}
	return nil
}

// NewTracker builds a fully configured openpanel.Tracker from c: default
// headers, custom headers, global properties, and the disabled flag are all
// applied. Additional options are passed through to openpanel.New.
func NewTracker(c *Config, opts ...openpanel.Option) (*openpanel.Tracker, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.TrackURL != "" {
		opts = append([]openpanel.Option{openpanel.WithTrackURL(c.TrackURL)}, opts...)
	}

	tracker, err := openpanel.New(c.ClientID, c.ClientSecret, opts...).WithDefaultHeaders()
	if err != nil {
		return nil, err
	}

	for name, value := range c.Headers {
		if tracker, err = tracker.WithHeader(name, value); err != nil {
			return nil, err
		}
	}

	if len(c.GlobalProperties) > 0 {
		tracker = tracker.WithGlobalProperties(core.Properties(c.GlobalProperties))
	}

	if c.Disabled {
		tracker = tracker.Disable()
	}

	return tracker, nil
}

func missingValue(name string) error {
	return &core.Error{
		Op:      "configure",
		Message: "required value " + name + " is not set",
		Err:     core.ErrConfiguration,
	}
}
