package watson

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/kawaki-san/ibm-watson-go/pkg/jsontime"
)

const (
	// DefaultAuthURL is the IBM Cloud IAM token endpoint.
	DefaultAuthURL = "https://iam.cloud.ibm.com/identity/token"

	// DefaultRefreshMargin is how long before its expiration instant a
	// cached token is already treated as expired, so a token is never
	// attached to a request moments before it dies in flight.
	DefaultRefreshMargin = 60 * time.Second

	iamGrantType = "urn:ibm:params:oauth:grant-type:apikey"
)

// Authenticator supplies bearer tokens for Watson service requests.
type Authenticator interface {
	// Token returns a currently valid access token, performing a
	// network exchange if the cached one is absent or expired.
	Token(ctx context.Context) (string, error)
}

// TokenResponse is the payload returned by the IAM token endpoint.
type TokenResponse struct {
	// AccessToken is the bearer token to attach to service requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is the IAM refresh token. The SDK re-exchanges the
	// API key instead of using it, but it is exposed for callers that
	// manage tokens themselves.
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is normally "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime.
	ExpiresIn jsontime.Seconds `json:"expires_in"`

	// Expiration is the absolute instant the token expires.
	Expiration jsontime.Unix `json:"expiration"`

	// Scope lists the scopes granted to the token, if any.
	Scope string `json:"scope,omitempty"`
}

// IAMAuthenticator exchanges an IBM Cloud API key for short-lived bearer
// tokens and caches the current one until it expires.
//
// An IAMAuthenticator is safe for concurrent use: refreshes are serialized,
// so overlapping callers that find the token expired trigger a single
// exchange and all observe the refreshed token.
type IAMAuthenticator struct {
	apiKey     string
	authURL    string
	httpClient *http.Client
	margin     time.Duration
	now        func() time.Time

	mu    sync.Mutex
	token *TokenResponse
}

// IAMOption configures an IAMAuthenticator.
type IAMOption func(*IAMAuthenticator)

// WithAuthURL overrides the IAM token endpoint. Useful for tests and for
// private IAM deployments.
func WithAuthURL(url string) IAMOption {
	return func(a *IAMAuthenticator) {
		a.authURL = url
	}
}

// WithIAMHTTPClient sets the HTTP client used for token exchanges.
func WithIAMHTTPClient(client *http.Client) IAMOption {
	return func(a *IAMAuthenticator) {
		a.httpClient = client
	}
}

// WithRefreshMargin sets how long before expiration a cached token is
// treated as already expired.
func WithRefreshMargin(margin time.Duration) IAMOption {
	return func(a *IAMAuthenticator) {
		a.margin = margin
	}
}

// withClock overrides the time source. Test hook.
func withClock(now func() time.Time) IAMOption {
	return func(a *IAMAuthenticator) {
		a.now = now
	}
}

// NewIAM creates an IAMAuthenticator and performs the initial token
// exchange. It returns an *AuthError if apiKey is empty or the exchange
// fails.
//
// Example:
//
//	auth, err := watson.NewIAM(ctx, "my-api-key")
//	if err != nil {
//	    return err
//	}
//	tts := watson.NewTextToSpeech(auth, "https://api.us-south.text-to-speech.watson.cloud.ibm.com")
func NewIAM(ctx context.Context, apiKey string, opts ...IAMOption) (*IAMAuthenticator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &AuthError{
			Code:    "BXNIM0415E",
			Message: "Provided API key is empty.",
		}
	}

	a := &IAMAuthenticator{
		apiKey:  apiKey,
		authURL: DefaultAuthURL,
		margin:  DefaultRefreshMargin,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.httpClient == nil {
		a.httpClient = &http.Client{Timeout: defaultTimeout}
	}

	if _, err := a.Token(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Token returns a currently valid access token, refreshing it first if the
// cached one is expired or absent. Exactly one refresh request is issued
// per expiry, no matter how many goroutines call Token concurrently; a
// failed refresh is returned as-is and not retried.
func (a *IAMAuthenticator) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.tokenValid() {
		return a.token.AccessToken, nil
	}

	token, err := a.requestToken(ctx)
	if err != nil {
		return "", err
	}
	a.token = token
	return token.AccessToken, nil
}

// TokenResponse returns a copy of the most recent token payload, or nil if
// no exchange has succeeded yet.
func (a *IAMAuthenticator) TokenResponse() *TokenResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.token == nil {
		return nil
	}
	copied := *a.token
	return &copied
}

// tokenValid reports whether the cached token exists and is not within the
// refresh margin of its expiration. Callers must hold a.mu.
func (a *IAMAuthenticator) tokenValid() bool {
	if a.token == nil || a.token.AccessToken == "" {
		return false
	}
	expiry := a.token.Expiration
	if expiry.IsZero() {
		return false
	}
	return a.now().Add(a.margin).Before(expiry.Time())
}

// requestToken performs one exchange against the IAM endpoint.
func (a *IAMAuthenticator) requestToken(ctx context.Context) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", iamGrantType)
	form.Set("apikey", a.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, wrapError(err, "create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(err, "request token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(err, "read token response")
	}

	if resp.StatusCode != http.StatusOK {
		authErr := &AuthError{HTTPStatus: resp.StatusCode}
		if err := json.Unmarshal(body, authErr); err != nil || authErr.Message == "" {
			authErr.Message = strings.TrimSpace(string(body))
			if authErr.Message == "" {
				authErr.Message = http.StatusText(resp.StatusCode)
			}
		}
		return nil, authErr
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, &DecodeError{Op: "token", Err: err}
	}
	if token.AccessToken == "" {
		return nil, &AuthError{
			HTTPStatus: resp.StatusCode,
			Message:    "token endpoint returned no access_token",
		}
	}
	// Some IAM deployments omit the absolute expiration; derive it.
	if token.Expiration.IsZero() && token.ExpiresIn.Duration() > 0 {
		token.Expiration = jsontime.Unix(a.now().Add(token.ExpiresIn.Duration()))
	}
	return &token, nil
}

// bearerTokenAuthenticator serves a fixed, externally managed token.
type bearerTokenAuthenticator struct {
	token string
}

// NewBearerToken returns an Authenticator that always presents the given
// pre-fetched token. The caller owns its lifecycle; the SDK never refreshes
// it.
func NewBearerToken(token string) Authenticator {
	return bearerTokenAuthenticator{token: token}
}

func (b bearerTokenAuthenticator) Token(ctx context.Context) (string, error) {
	if b.token == "" {
		return "", &AuthError{Message: "bearer token is empty"}
	}
	return b.token, nil
}
