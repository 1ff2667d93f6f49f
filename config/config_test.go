package config

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/openpanel-dev/openpanel-go/core"
)

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path == "" {
		t.Error("DefaultConfigPath() returned empty string")
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("DefaultConfigPath() = %q, should end with config.yaml", path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")

	if err != nil {
		t.Errorf("Load() error = %v, want nil for missing file", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.ClientID != "" {
		t.Errorf("ClientID = %q, want empty", cfg.ClientID)
	}
}

func TestLoadValid(t *testing.T) {
	content := `
track_url: https://collector.example.com/track
client_id: client-1
client_secret: sec_abc

headers:
  x-geo-country: DE

global_properties:
  env: prod

disabled: false
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TrackURL != "https://collector.example.com/track" {
		t.Errorf("TrackURL = %q, want file value", cfg.TrackURL)
	}
	if cfg.ClientID != "client-1" {
		t.Errorf("ClientID = %q, want %q", cfg.ClientID, "client-1")
	}
	if cfg.ClientSecret != "sec_abc" {
		t.Errorf("ClientSecret = %q, want %q", cfg.ClientSecret, "sec_abc")
	}
	if cfg.Headers["x-geo-country"] != "DE" {
		t.Errorf(`Headers["x-geo-country"] = %q, want %q`, cfg.Headers["x-geo-country"], "DE")
	}
	if cfg.GlobalProperties["env"] != "prod" {
		t.Errorf(`GlobalProperties["env"] = %q, want %q`, cfg.GlobalProperties["env"], "prod")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not valid yaml"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, core.ErrSerialization) {
		t.Errorf("Load() error = %v, want core.ErrSerialization", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{ClientID: "c", ClientSecret: "s"}, false},
		{"missing client id", Config{ClientSecret: "s"}, true},
		{"missing client secret", Config{ClientID: "c"}, true},
		{"track url optional", Config{ClientID: "c", ClientSecret: "s", TrackURL: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && !errors.Is(err, core.ErrConfiguration) {
				t.Errorf("Validate() error = %v, want core.ErrConfiguration", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestNewTracker(t *testing.T) {
	var got struct {
		Type    string `json:"type"`
		Payload struct {
			Name       string            `json:"name"`
			Properties map[string]string `json:"properties"`
		} `json:"payload"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("openpanel-client-id") != "client-1" {
			t.Errorf("openpanel-client-id = %q, want client-1", r.Header.Get("openpanel-client-id"))
		}
		if r.Header.Get("x-geo-country") != "DE" {
			t.Errorf("x-geo-country = %q, want DE", r.Header.Get("x-geo-country"))
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("Failed to unmarshal request: %v", err)
		}
	}))
	defer server.Close()

	cfg := &Config{
		TrackURL:         server.URL,
		ClientID:         "client-1",
		ClientSecret:     "sec_abc",
		Headers:          map[string]string{"x-geo-country": "DE"},
		GlobalProperties: map[string]string{"env": "prod"},
	}

	tracker, err := NewTracker(cfg)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}

	resp, err := tracker.Track(context.Background(), "signup", nil, nil)
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}
	resp.Body.Close()

	if got.Payload.Properties["env"] != "prod" {
		t.Errorf(`properties["env"] = %q, want %q (global properties from file)`, got.Payload.Properties["env"], "prod")
	}
}

func TestNewTrackerDisabled(t *testing.T) {
	cfg := &Config{
		ClientID:     "client-1",
		ClientSecret: "sec_abc",
		Disabled:     true,
	}

	tracker, err := NewTracker(cfg)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}

	_, err = tracker.Track(context.Background(), "signup", nil, nil)
	if !errors.Is(err, core.ErrDisabled) {
		t.Errorf("Track() error = %v, want core.ErrDisabled", err)
	}
}

func TestNewTrackerMissingValues(t *testing.T) {
	_, err := NewTracker(&Config{ClientID: "client-1"})
	if !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("NewTracker() error = %v, want core.ErrConfiguration", err)
	}
}

func TestNewTrackerInvalidHeader(t *testing.T) {
	cfg := &Config{
		ClientID:     "client-1",
		ClientSecret: "sec_abc",
		Headers:      map[string]string{"bad header": "v"},
	}

	_, err := NewTracker(cfg)
	if !errors.Is(err, core.ErrHeader) {
		t.Errorf("NewTracker() error = %v, want core.ErrHeader", err)
	}
}
