package openpanel

import "github.com/openpanel-dev/openpanel-go/core"

// IdentifyUser is the profile passed to Tracker.Identify.
// Field names are camel-cased on the wire.
type IdentifyUser struct {
	ProfileID  string          `json:"profileId"`
	Email      string          `json:"email"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Properties core.Properties `json:"properties"`
}
