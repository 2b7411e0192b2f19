// Package sheet is the client for the spreadsheet-backed remote store.
//
// The store is a single script endpoint in front of a spreadsheet: GET
// returns every collection as loosely-typed rows, POST applies one named
// action. The endpoint is the system of record; this client performs one
// attempt per operation and never retries.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Action names one write operation understood by the remote script.
type Action string

const (
	ActionCreateAnnouncement Action = "createAnnouncement"
	ActionUpdateAnnouncement Action = "updateAnnouncement"
	ActionDeleteAnnouncement Action = "deleteAnnouncement"
	ActionCreateResource     Action = "createResource"
	ActionUpdateResource     Action = "updateResource"
	ActionDeleteResource     Action = "deleteResource"
	ActionCreateDocument     Action = "createDocument"
	ActionUpdateDocument     Action = "updateDocument"
	ActionDeleteDocument     Action = "deleteDocument"
)

// Payload is the remote store's read response: one slice of raw rows per
// collection. Rows are handed to the normalizer before anything else may
// look at them.
type Payload struct {
	Announcements []map[string]any `json:"announcements"`
	Resources     []map[string]any `json:"resources"`
	Documents     []map[string]any `json:"documents"`
}

// RemoteError is an error reported by the remote script itself, as opposed
// to a transport failure. Both count as operation failures.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "sheet: remote error: " + e.Message
}

// Client talks to the remote store endpoint.
type Client interface {
	// FetchAll reads every collection in one request.
	FetchAll(ctx context.Context) (*Payload, error)
	// Submit applies one write action. data is the full record for
	// create/update actions and {id} for deletes.
	Submit(ctx context.Context, action Action, data any) error
}

type client struct {
	endpoint string
	hc       *http.Client
}

// NewClient builds a Client for the given endpoint URL. Outbound requests
// are traced through otelhttp.
func NewClient(endpoint string) Client {
	return &client{
		endpoint: endpoint,
		hc: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// NewClientWithHTTP builds a Client using the provided http.Client. Tests
// use it to point at a local server.
func NewClientWithHTTP(endpoint string, hc *http.Client) Client {
	return &client{endpoint: endpoint, hc: hc}
}

func (c *client) FetchAll(ctx context.Context) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sheet: build fetch request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sheet: fetch status %d", resp.StatusCode)
	}

	var p Payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("sheet: decode fetch response: %w", err)
	}
	return &p, nil
}

// writeEnvelope is the POST body the remote script parses.
type writeEnvelope struct {
	Action Action `json:"action"`
	Data   any    `json:"data"`
}

// resultEnvelope is the remote script's write response.
type resultEnvelope struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

func (c *client) Submit(ctx context.Context, action Action, data any) error {
	body, err := json.Marshal(writeEnvelope{Action: action, Data: data})
	if err != nil {
		return fmt.Errorf("sheet: encode %s payload: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sheet: build %s request: %w", action, err)
	}
	// The script endpoint cannot answer CORS preflights, so the body goes
	// out as opaque text even though its content is JSON.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("sheet: %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sheet: %s status %d", action, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sheet: read %s response: %w", action, err)
	}

	var res resultEnvelope
	if err := json.Unmarshal(raw, &res); err != nil {
		return fmt.Errorf("sheet: decode %s response: %w", action, err)
	}
	if res.Result != "success" {
		msg := res.Message
		if msg == "" {
			msg = "unknown error"
		}
		return &RemoteError{Message: msg}
	}
	return nil
}
