package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/teemow/twitter-mcp/internal/logging"
)

const (
	// DefaultBaseURL is the Twitter/X API v2 endpoint prefix.
	DefaultBaseURL = "https://api.twitter.com/2"

	// DefaultTimeout bounds every outbound request so an unresponsive
	// endpoint cannot pin a worker indefinitely.
	DefaultTimeout = 30 * time.Second

	// MaxTweetLength is the platform's tweet length limit in characters.
	MaxTweetLength = 280

	// MinSearchResults and MaxSearchResults bound the max_results query
	// parameter of recent search. Out-of-range values are clamped.
	MinSearchResults = 10
	MaxSearchResults = 100

	// DefaultSearchResults is used when the caller does not ask for a
	// specific result count.
	DefaultSearchResults = 10
)

// maxErrorBodyBytes caps how much of an error response body is kept for
// diagnostics.
const maxErrorBodyBytes = 4 << 10

// maxResponseBytes caps how much of any response body is read.
const maxResponseBytes = 4 << 20

// Client executes signed calls against the Twitter/X API v2.
//
// A Client is stateless across calls apart from its immutable configuration
// and is safe for concurrent use. It performs exactly one HTTP request per
// operation; retry and backoff policy belongs to the caller.
type Client struct {
	httpClient *http.Client
	signer     *Signer
	baseURL    string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API endpoint prefix. Used by tests to point the
// client at a local server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// WithTimeout sets the per-call timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithSigner replaces the signer built from the credentials. Used by tests
// to inject a fixed nonce source and clock.
func WithSigner(s *Signer) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// WithLogger sets the structured logger. The logger never receives
// credential material, only operation names, statuses and durations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the given credential set. It fails with a
// configuration error if the credentials are incomplete.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	signer, err := NewSigner(creds)
	if err != nil {
		return nil, err
	}
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		signer:     signer,
		baseURL:    DefaultBaseURL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClampMaxResults clamps a requested search result count to the API's
// [MinSearchResults, MaxSearchResults] range.
func ClampMaxResults(n int) int {
	if n < MinSearchResults {
		return MinSearchResults
	}
	if n > MaxSearchResults {
		return MaxSearchResults
	}
	return n
}

// NormalizeUsername strips any leading '@' characters from a username.
func NormalizeUsername(username string) string {
	return strings.TrimLeft(username, "@")
}

// CreateTweet posts a new tweet, optionally as a reply to another tweet.
// Text length is validated before any network activity.
func (c *Client) CreateTweet(ctx context.Context, text, replyToTweetID string) (*Tweet, error) {
	const op = "create_tweet"

	if text == "" {
		return nil, &APIError{Kind: KindValidation, Op: op, Err: errors.New("tweet text cannot be empty")}
	}
	if n := utf8.RuneCountInString(text); n > MaxTweetLength {
		return nil, &APIError{
			Kind: KindValidation,
			Op:   op,
			Err:  fmt.Errorf("tweet text exceeds %d characters (current: %d)", MaxTweetLength, n),
		}
	}

	body := createTweetRequest{Text: text}
	if replyToTweetID != "" {
		body.Reply = &tweetReply{InReplyToTweetID: replyToTweetID}
	}

	var env tweetEnvelope
	if err := c.do(ctx, op, http.MethodPost, "/tweets", nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// SearchRecent searches recent tweets. maxResults is clamped to the API's
// valid range; zero selects the default. The query is signed as part of the
// OAuth signature base.
func (c *Client) SearchRecent(ctx context.Context, query string, maxResults int) (*SearchResults, error) {
	const op = "search_recent"

	if query == "" {
		return nil, &APIError{Kind: KindValidation, Op: op, Err: errors.New("search query cannot be empty")}
	}
	if maxResults == 0 {
		maxResults = DefaultSearchResults
	}
	maxResults = ClampMaxResults(maxResults)

	params := map[string]string{
		"query":        query,
		"max_results":  strconv.Itoa(maxResults),
		"tweet.fields": "created_at,public_metrics,author_id",
		"expansions":   "author_id",
		"user.fields":  "username,name,verified",
	}

	var env searchEnvelope
	if err := c.do(ctx, op, http.MethodGet, "/tweets/search/recent", params, nil, &env); err != nil {
		return nil, err
	}

	users := make(map[string]User, len(env.Includes.Users))
	for _, u := range env.Includes.Users {
		users[u.ID] = u
	}
	return &SearchResults{
		Tweets:      env.Data,
		Users:       users,
		ResultCount: env.Meta.ResultCount,
	}, nil
}

// LookupUser fetches a user profile by username. A leading '@' is stripped
// so "@jack" and "jack" produce identical requests.
func (c *Client) LookupUser(ctx context.Context, username string) (*User, error) {
	const op = "lookup_user"

	username = NormalizeUsername(username)
	if username == "" {
		return nil, &APIError{Kind: KindValidation, Op: op, Err: errors.New("username cannot be empty")}
	}

	params := map[string]string{
		"user.fields": "created_at,description,public_metrics,verified",
	}

	var env userEnvelope
	if err := c.do(ctx, op, http.MethodGet, "/users/by/username/"+url.PathEscape(username), params, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// DeleteTweet deletes a tweet by ID.
func (c *Client) DeleteTweet(ctx context.Context, tweetID string) (*DeleteResult, error) {
	const op = "delete_tweet"

	if tweetID == "" {
		return nil, &APIError{Kind: KindValidation, Op: op, Err: errors.New("tweet id cannot be empty")}
	}

	var env deleteEnvelope
	if err := c.do(ctx, op, http.MethodDelete, "/tweets/"+url.PathEscape(tweetID), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// do executes one signed request and normalizes the outcome. Query
// parameters participate in the OAuth signature; JSON bodies do not
// (RFC 5849 section 3.4.1.3 covers only form-encoded bodies).
func (c *Client) do(ctx context.Context, op, method, path string, query map[string]string, body, out any) error {
	base := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindValidation, Op: op, Err: fmt.Errorf("encode request body: %w", err)}
		}
		reqBody = bytes.NewReader(raw)
	}

	header, err := c.signer.AuthorizationHeader(method, base, query)
	if err != nil {
		return err
	}

	reqURL := base
	if len(query) > 0 {
		reqURL += "?" + encodeQuery(query)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return &APIError{Kind: KindTransport, Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", header)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("twitter api call failed",
			logging.Operation(op),
			logging.Err(err),
		)
		return &APIError{Kind: KindTransport, Op: op, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &APIError{Kind: KindTransport, Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("twitter api call",
		logging.Operation(op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{Kind: KindRemote, Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return &APIError{Kind: KindAuthentication, Op: op, StatusCode: resp.StatusCode, Body: truncateBody(raw), Hint: authenticationHint}

	case resp.StatusCode == http.StatusForbidden:
		return &APIError{Kind: KindPermission, Op: op, StatusCode: resp.StatusCode, Body: truncateBody(raw), Hint: permissionHint}

	case resp.StatusCode == http.StatusTooManyRequests:
		return &APIError{
			Kind:           KindRateLimit,
			Op:             op,
			StatusCode:     resp.StatusCode,
			Body:           truncateBody(raw),
			Hint:           rateLimitHint,
			RateLimitReset: parseRateLimitReset(resp.Header.Get("X-Rate-Limit-Reset")),
		}

	default:
		return &APIError{Kind: KindRemote, Op: op, StatusCode: resp.StatusCode, Body: truncateBody(raw)}
	}
}

// encodeQuery builds a query string with the same strict percent-encoding
// used for the signature base, so the sent URL and the signed parameter set
// can never disagree (url.Values encodes space as '+').
func encodeQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString(percentEncode(k))
		b.WriteString("=")
		b.WriteString(percentEncode(params[k]))
	}
	return b.String()
}

func truncateBody(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > maxErrorBodyBytes {
		return s[:maxErrorBodyBytes] + "... (truncated)"
	}
	return s
}
