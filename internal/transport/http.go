package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abhisek/assessly/internal/telemetry"
)

// StatusError is returned when the grading server answers with a non-2xx code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("grading server returned %d: %s", e.Code, e.Body)
}

// HTTPClient talks to the grading server over HTTP.
type HTTPClient struct {
	base    string
	session string
	client  *http.Client
}

var (
	_ Transport           = (*HTTPClient)(nil)
	_ telemetry.Publisher = (*HTTPClient)(nil)
)

// SessionHeader carries the client's session ID.
const SessionHeader = "X-Session-ID"

// LearnerPath returns the API path that scopes requests to one learner's
// progress in one assessment.
func LearnerPath(assessmentID, learnerID string) string {
	return "/api/v1/assessments/" + url.PathEscape(assessmentID) + "/learners/" + url.PathEscape(learnerID)
}

// NewHTTPClient creates a client for the given server URL.
func NewHTTPClient(serverURL, assessmentID, learnerID string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		base:   strings.TrimRight(serverURL, "/") + LearnerPath(assessmentID, learnerID),
		client: &http.Client{Timeout: timeout},
	}
}

// WithSession tags every request with the given session ID so the server
// can group the published telemetry.
func (c *HTTPClient) WithSession(id string) *HTTPClient {
	c.session = id
	return c
}

func (c *HTTPClient) Submit(ctx context.Context, payload Payload) (*SubmitResponse, error) {
	var out SubmitResponse
	if err := c.do(ctx, http.MethodPost, "submit", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetResults(ctx context.Context, payload Payload) (*ResultsResponse, error) {
	var out ResultsResponse
	if err := c.do(ctx, http.MethodPost, "get_results", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) TryAgain(ctx context.Context) (*TryAgainResponse, error) {
	var out TryAgainResponse
	if err := c.do(ctx, http.MethodPost, "try_again", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) State(ctx context.Context) (*StateResponse, error) {
	var out StateResponse
	if err := c.do(ctx, http.MethodGet, "state", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Publish forwards a telemetry event to the server's event endpoint.
func (c *HTTPClient) Publish(ctx context.Context, ev telemetry.Event) error {
	return c.do(ctx, http.MethodPost, "events", ev, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+"/"+endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.session != "" {
		req.Header.Set(SessionHeader, c.session)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
