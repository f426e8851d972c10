// Package backend is the HTTP client for the diary/blockchain backend service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"diary_gateway/internal/metrics"
	"diary_gateway/internal/models"

	"github.com/tidwall/gjson"
)

// Backend endpoints.
const (
	PathLogin    = "/login"
	PathRegister = "/register"
	PathDiary    = "/loginin"
	PathValidate = "/validateBlockchain"
)

const (
	requestIDHeader = "X-Request-ID"
	maxBodyBytes    = 8 << 20
)

type ctxKey struct{}

// WithRequestID attaches a request id that is forwarded to the backend.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Response is a 200 reply from the backend.
type Response struct {
	Body []byte
}

// Valid reports whether the body is a JSON document.
func (r *Response) Valid() bool {
	return gjson.ValidBytes(r.Body)
}

// Status returns the envelope "status" field, empty if absent.
func (r *Response) Status() string {
	return gjson.GetBytes(r.Body, "status").String()
}

// Message returns "message", falling back to "error" (the backend uses the
// latter on failed logins).
func (r *Response) Message() string {
	if m := gjson.GetBytes(r.Body, "message"); m.Exists() {
		return m.String()
	}
	return gjson.GetBytes(r.Body, "error").String()
}

// Envelope converts the reply to an envelope that relays the body verbatim.
// Non-JSON bodies yield an envelope with an empty status and no raw payload.
func (r *Response) Envelope() models.Envelope {
	if !r.Valid() {
		return models.Envelope{}
	}
	return models.Envelope{
		Status:  r.Status(),
		Message: r.Message(),
		Raw:     json.RawMessage(r.Body),
	}
}

// Client talks to the backend. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL. A zero timeout keeps the transport default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Login forwards credentials to POST /login.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*Response, error) {
	return c.do(ctx, http.MethodPost, PathLogin, "", creds)
}

// Register forwards credentials to POST /register.
func (c *Client) Register(ctx context.Context, creds models.Credentials) (*Response, error) {
	return c.do(ctx, http.MethodPost, PathRegister, "", creds)
}

// FetchDiary reads the diary and blockchain view of username.
func (c *Client) FetchDiary(ctx context.Context, username string) (*Response, error) {
	return c.do(ctx, http.MethodGet, PathDiary, username, nil)
}

// WriteDiary appends an entry to the diary of username.
func (c *Client) WriteDiary(ctx context.Context, username string, entry models.DiaryEntry) (*Response, error) {
	return c.do(ctx, http.MethodPost, PathDiary, username, entry)
}

// ValidateBlockchain asks the backend whether the chain has been tampered with.
func (c *Client) ValidateBlockchain(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, PathValidate, "", nil)
}

func (c *Client) do(ctx context.Context, method, path, username string, body any) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s body: %w", path, err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// the backend takes the bare username as its Authorization value
	if username != "" {
		req.Header.Set("Authorization", username)
	}
	if id := requestIDFrom(ctx); id != "" {
		req.Header.Set(requestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveBackendCall(path, metrics.OutcomeUnreachable, time.Since(start))
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		metrics.ObserveBackendCall(path, metrics.OutcomeBadStatus, time.Since(start))
		return nil, &StatusError{Endpoint: path, Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.ObserveBackendCall(path, metrics.OutcomeUnreachable, time.Since(start))
		return nil, fmt.Errorf("%w: read %s body: %v", ErrUnreachable, path, err)
	}
	metrics.ObserveBackendCall(path, metrics.OutcomeOK, time.Since(start))
	return &Response{Body: data}, nil
}
