package twitter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrorKind categorizes API failures for targeted handling.
type ErrorKind int

const (
	// KindConfiguration indicates missing or invalid credentials. Fatal at
	// startup, never caused by a single invocation.
	KindConfiguration ErrorKind = iota

	// KindValidation indicates bad operation arguments, detected before any
	// network call is made.
	KindValidation

	// KindAuthentication indicates the remote API rejected the credentials
	// (HTTP 401).
	KindAuthentication

	// KindPermission indicates a forbidden operation (HTTP 403). The remote
	// API conflates missing write permissions and stale access tokens here.
	KindPermission

	// KindRateLimit indicates HTTP 429.
	KindRateLimit

	// KindTransport indicates a network or timeout failure before a response
	// was received.
	KindTransport

	// KindRemote indicates any other non-2xx response.
	KindRemote
)

// String returns the human-readable name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindValidation:
		return "validation error"
	case KindAuthentication:
		return "authentication error"
	case KindPermission:
		return "permission error"
	case KindRateLimit:
		return "rate limit error"
	case KindTransport:
		return "transport error"
	case KindRemote:
		return "remote error"
	default:
		return "unknown error"
	}
}

// Remediation hints surfaced to the tool caller. The 403 hint matters
// because the remote API returns the same status for missing write scope
// and for tokens issued before a permission change.
const (
	authenticationHint = "The credentials were rejected (401 Unauthorized). " +
		"Verify API_KEY, API_SECRET_KEY, ACCESS_TOKEN and ACCESS_TOKEN_SECRET, " +
		"and regenerate the access token if app permissions changed."

	permissionHint = "The request was forbidden (403). Ensure the app has " +
		"'Read and Write' permissions in the developer portal, then regenerate " +
		"the access token and secret: tokens issued before a permission change " +
		"keep the old scope."

	rateLimitHint = "Rate limit exceeded (429). If this happens immediately " +
		"after startup it may indicate misconfigured credentials rather than " +
		"real traffic; otherwise wait for the limit window to reset before retrying."
)

// APIError is the normalized error for all failures in this package.
type APIError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Op is the operation that failed (e.g. "create_tweet", "search_recent").
	Op string

	// StatusCode is the HTTP status, if a response was received.
	StatusCode int

	// Body is the (truncated) raw response body for diagnostics.
	Body string

	// Hint carries remediation guidance shown to the caller.
	Hint string

	// RateLimitReset is when the rate limit window resets, for 429 responses
	// that carry an X-Rate-Limit-Reset header.
	RateLimitReset time.Time

	// Err is the underlying error, if any. It must never contain credential
	// material.
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString("twitter ")
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		b.WriteString(" (HTTP ")
		b.WriteString(strconv.Itoa(e.StatusCode))
		b.WriteString(")")
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Body != "" {
		fmt.Fprintf(&b, ": %s", e.Body)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// Unwrap implements the errors.Unwrap interface.
func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind of err if it is (or wraps) an *APIError.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// parseRateLimitReset parses an X-Rate-Limit-Reset unix timestamp header.
// Returns the zero time if the header is missing or invalid.
func parseRateLimitReset(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}
