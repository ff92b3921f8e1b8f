package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "ibm-watson-go/1.0"
)

// transport executes Watson service requests: it resolves paths against
// the service URL, attaches the bearer token from the Authenticator and a
// per-request transaction id, and turns non-2xx answers into *APIError.
type transport struct {
	serviceURL string
	auth       Authenticator
	httpClient *http.Client
}

// clientConfig holds configuration shared by the service clients.
type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a service client.
type Option func(*clientConfig)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout. Ignored when a custom HTTP
// client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

func newTransport(auth Authenticator, serviceURL string, opts []Option) *transport {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: cfg.timeout}
	}
	return &transport{
		serviceURL: strings.TrimRight(serviceURL, "/"),
		auth:       auth,
		httpClient: cfg.httpClient,
	}
}

// newRequest builds a request against the service URL with auth headers set.
func (t *transport) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := t.serviceURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, wrapError(err, "create request")
	}

	token, err := t.auth.Token(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Global-Transaction-Id", uuid.NewString())
	return req, nil
}

// doJSON sends a request with an optional JSON body and decodes the JSON
// response into result when result is non-nil.
func (t *transport) doJSON(ctx context.Context, op, method, path string, query url.Values, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return wrapError(err, "marshal request body")
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := t.newRequest(ctx, method, path, query, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return wrapError(err, "send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapError(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, respBody, transactionID(resp))
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

// doBinary sends a request whose response body is opaque bytes (audio).
// contentType and accept are set when non-empty.
func (t *transport) doBinary(ctx context.Context, method, path string, query url.Values, contentType, accept string, body io.Reader) (io.ReadCloser, error) {
	req, err := t.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(err, "send request")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, wrapError(err, "read error response")
		}
		return nil, parseAPIError(resp.StatusCode, respBody, transactionID(resp))
	}
	return resp.Body, nil
}

// wsURL converts the service URL into its WebSocket form and appends the
// access token, which is how the Watson streaming endpoints authenticate.
func (t *transport) wsURL(ctx context.Context, path string, query url.Values) (string, error) {
	token, err := t.auth.Token(ctx)
	if err != nil {
		return "", err
	}
	u := t.serviceURL
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("access_token", token)
	return u + path + "?" + query.Encode(), nil
}

// decodeJSON decodes a JSON stream into v, reporting failures as
// *DecodeError for op.
func decodeJSON(r io.Reader, op string, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

// jsonBody marshals v for use as a request body.
func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, wrapError(err, "marshal request body")
	}
	return bytes.NewReader(data), nil
}

func transactionID(resp *http.Response) string {
	return resp.Header.Get("X-Global-Transaction-Id")
}
