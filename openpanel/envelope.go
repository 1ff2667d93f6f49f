package openpanel

import "github.com/openpanel-dev/openpanel-go/core"

// EventType identifies the kind of event carried by an envelope.
// Serialized as a lowercase tag on the wire.
type EventType string

// The closed set of wire-level event kinds. Revenue events are track events
// with a reserved name, not a distinct kind.
const (
	EventTrack     EventType = "track"
	EventIdentify  EventType = "identify"
	EventIncrement EventType = "increment"
	EventDecrement EventType = "decrement"
)

// envelope is the outer wire object: {"type": <tag>, "payload": {...}}.
type envelope struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

// trackPayload is the payload body for track events.
type trackPayload struct {
	Name       string          `json:"name"`
	Properties core.Properties `json:"properties"`
}

// revenuePayload is the payload body for revenue events. The amount appears
// both at the top level and inside the property set.
type revenuePayload struct {
	Name       string          `json:"name"`
	Amount     int64           `json:"amount"`
	Properties core.Properties `json:"properties"`
}

// counterPayload is the payload body for increment and decrement events.
type counterPayload struct {
	ProfileID string `json:"profileId"`
	Property  string `json:"property"`
	Value     int64  `json:"value"`
}
