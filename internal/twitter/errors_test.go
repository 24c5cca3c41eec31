package twitter

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindConfiguration, "configuration error"},
		{KindValidation, "validation error"},
		{KindAuthentication, "authentication error"},
		{KindPermission, "permission error"},
		{KindRateLimit, "rate limit error"},
		{KindTransport, "transport error"},
		{KindRemote, "remote error"},
		{ErrorKind(99), "unknown error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{
		Kind:       KindPermission,
		Op:         "create_tweet",
		StatusCode: 403,
		Body:       `{"title":"Forbidden"}`,
		Hint:       permissionHint,
	}

	msg := err.Error()
	assert.Contains(t, msg, "twitter create_tweet")
	assert.Contains(t, msg, "permission error")
	assert.Contains(t, msg, "HTTP 403")
	assert.Contains(t, msg, "Forbidden")
	assert.Contains(t, msg, "regenerate the access token")
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &APIError{Kind: KindTransport, Op: "search_recent", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindOf(t *testing.T) {
	inner := &APIError{Kind: KindRateLimit, Op: "search_recent"}
	wrapped := fmt.Errorf("tool failed: %w", inner)

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindRateLimit, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestParseRateLimitReset(t *testing.T) {
	reset := parseRateLimitReset("1700000000")
	assert.Equal(t, time.Unix(1700000000, 0), reset)

	assert.True(t, parseRateLimitReset("").IsZero())
	assert.True(t, parseRateLimitReset("soon").IsZero())
}
