package openpanel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/openpanel-dev/openpanel-go/core"
)

// deviceIDPath is the sub-path of the track URL for device-id lookups.
const deviceIDPath = "/device-id"

// send serializes the envelope and performs a single POST to the track URL.
// It returns the raw transport response; interpreting status codes is the
// caller's job (see CheckResponse). A disabled tracker fails with
// core.ErrDisabled before any I/O.
func (t *Tracker) send(ctx context.Context, env envelope) (*http.Response, error) {
	op := string(env.Type)

	if t.disabled {
		return nil, newDisabledError(op)
	}

	body, err := json.Marshal(env)
	if err != nil {
		return nil, newSerializationError(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.trackURL, bytes.NewReader(body))
	if err != nil {
		return nil, newRequestError(op, err)
	}
	t.applyHeaders(req)

	return t.do(req, op)
}

// FetchDeviceID issues a GET to the device-id sub-path of the track URL and
// returns the "deviceId" value from the JSON response body. A missing key is
// not an error and yields an empty string; a malformed body fails with
// core.ErrSerialization.
func (t *Tracker) FetchDeviceID(ctx context.Context) (string, error) {
	const op = "device-id"

	if t.disabled {
		return "", newDisabledError(op)
	}

	url := t.trackURL + deviceIDPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newRequestError(op, err)
	}
	t.applyHeaders(req)

	resp, err := t.do(req, op)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newRequestError(op, err)
	}

	var fields map[string]string
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", newSerializationError(op, err)
	}

	return fields["deviceId"], nil
}

// do executes the request with telemetry around it. Transport failures are
// wrapped as core.ErrRequest; responses come back untouched.
func (t *Tracker) do(req *http.Request, op string) (*http.Response, error) {
	start := time.Now()
	t.telemetry.OnDispatchStart(core.DispatchStartEvent{
		Endpoint: req.URL.String(),
		Event:    op,
		Start:    start,
	})

	resp, err := t.httpClient.Do(req)

	end := core.DispatchEndEvent{
		Endpoint: req.URL.String(),
		Event:    op,
		Start:    start,
		End:      time.Now(),
	}
	if resp != nil {
		end.Status = resp.StatusCode
	}
	if err != nil {
		err = newRequestError(op, err)
		end.Err = err
	}
	t.telemetry.OnDispatchEnd(end)

	if err != nil {
		return nil, err
	}
	return resp, nil
}

// applyHeaders copies the tracker's header set onto an outgoing request.
func (t *Tracker) applyHeaders(req *http.Request) {
	for name, values := range t.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
}
