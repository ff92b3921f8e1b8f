package watson

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// AuthError is returned when the IAM token exchange fails, either at
// construction time or during a transparent refresh.
type AuthError struct {
	// Code is the IAM error code, e.g. "BXNIM0415E".
	Code string `json:"errorCode"`

	// Message is the IAM error message.
	Message string `json:"errorMessage"`

	// HTTPStatus is the HTTP status code of the token endpoint response.
	HTTPStatus int `json:"-"`
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("watson: authentication failed: %s (code=%s, http_status=%d)",
		e.Message, e.Code, e.HTTPStatus)
}

// IsInvalidAPIKey reports whether the IAM service rejected the API key.
func (e *AuthError) IsInvalidAPIKey() bool {
	return e.Code == "BXNIM0415E" || e.HTTPStatus == http.StatusBadRequest
}

// AsAuthError extracts *AuthError from an error.
func AsAuthError(err error) (*AuthError, bool) {
	var e *AuthError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// APIError is returned when a Watson service endpoint answers with a
// non-2xx status.
type APIError struct {
	// HTTPStatus is the HTTP status code.
	HTTPStatus int `json:"-"`

	// Code is the error code reported in the response body, usually the
	// same as the HTTP status.
	Code int `json:"code"`

	// Message is the error message from the response body.
	Message string `json:"error"`

	// GlobalTransactionID is the value of the X-Global-Transaction-Id
	// response header, useful when reporting problems to IBM support.
	GlobalTransactionID string `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("watson: %s (code=%d, http_status=%d, transaction_id=%s)",
		e.Message, e.Code, e.HTTPStatus, e.GlobalTransactionID)
}

// IsUnauthorized reports whether the request was rejected for missing or
// invalid credentials.
func (e *APIError) IsUnauthorized() bool {
	return e.HTTPStatus == http.StatusUnauthorized || e.HTTPStatus == http.StatusForbidden
}

// IsNotFound reports whether the requested resource does not exist.
func (e *APIError) IsNotFound() bool {
	return e.HTTPStatus == http.StatusNotFound
}

// IsRateLimit reports whether the request was throttled.
func (e *APIError) IsRateLimit() bool {
	return e.HTTPStatus == http.StatusTooManyRequests
}

// IsUnsupportedFormat reports whether the service rejected the requested
// audio or phoneme format.
func (e *APIError) IsUnsupportedFormat() bool {
	return e.HTTPStatus == http.StatusNotAcceptable || e.HTTPStatus == http.StatusUnsupportedMediaType
}

// IsServerError reports whether the failure was on the service side.
func (e *APIError) IsServerError() bool {
	return e.HTTPStatus >= http.StatusInternalServerError
}

// Retryable reports whether the request can be retried. The SDK never
// retries on its own; this is a hint for callers.
func (e *APIError) Retryable() bool {
	return e.IsRateLimit() || e.IsServerError()
}

// AsAPIError extracts *APIError from an error.
//
// Example:
//
//	if e, ok := watson.AsAPIError(err); ok && e.Retryable() {
//	    // back off and try again
//	}
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// DecodeError is returned when a 2xx response carries a body that cannot
// be decoded into the expected shape.
type DecodeError struct {
	// Op names the operation whose response failed to decode.
	Op string

	// Err is the underlying decoding error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("watson: decode %s response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsDecodeError extracts *DecodeError from an error.
func AsDecodeError(err error) (*DecodeError, bool) {
	var e *DecodeError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// parseAPIError builds an *APIError from a non-2xx response body.
func parseAPIError(statusCode int, body []byte, transactionID string) *APIError {
	apiErr := &APIError{
		HTTPStatus:          statusCode,
		GlobalTransactionID: transactionID,
	}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Code = statusCode
		apiErr.Message = string(body)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(statusCode)
		}
	}
	return apiErr
}

// wrapError adds operation context to transport-level failures.
func wrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
