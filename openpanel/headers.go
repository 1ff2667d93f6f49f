package openpanel

import (
	"golang.org/x/net/http/httpguts"
)

// setHeader validates and sets a single header on the tracker's header set.
// http.Header.Set canonicalizes the name, so a later call for the same name
// replaces the earlier value (last-write-wins).
func (t *Tracker) setHeader(name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return newHeaderError(name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return newHeaderError(name)
	}
	t.headers.Set(name, value)
	return nil
}
