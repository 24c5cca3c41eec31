package twitter

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	signatureMethod = "HMAC-SHA1"
	oauthVersion    = "1.0"
)

// Signer produces OAuth 1.0a Authorization header values per RFC 5849.
//
// Signing is a pure function of (method, base URL, parameters, credentials,
// nonce, timestamp). The nonce source and clock are injectable so the
// signature computation can be exercised against fixed, known-good vectors.
// A Signer is safe for concurrent use.
type Signer struct {
	creds Credentials
	nonce func() (string, error)
	now   func() time.Time
}

// SignerOption configures a Signer.
type SignerOption func(*Signer)

// WithNonceSource replaces the default crypto/rand nonce source.
func WithNonceSource(fn func() (string, error)) SignerOption {
	return func(s *Signer) {
		s.nonce = fn
	}
}

// WithClock replaces the default wall clock used for oauth_timestamp.
func WithClock(fn func() time.Time) SignerOption {
	return func(s *Signer) {
		s.now = fn
	}
}

// NewSigner creates a Signer for the given credential set. It fails with a
// configuration error if any credential field is empty.
func NewSigner(creds Credentials, opts ...SignerOption) (*Signer, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	s := &Signer{
		creds: creds,
		nonce: randomNonce,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// randomNonce returns 16 bytes of crypto/rand entropy, hex encoded.
// Hex keeps the nonce URL-safe alphanumeric.
func randomNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read nonce entropy: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// AuthorizationHeader computes the OAuth 1.0a Authorization header value for
// one request. method is the upper-case HTTP method, baseURL the request URL
// without a query string, and params the combined query and form parameters
// that participate in the signature (JSON request bodies do not, per
// RFC 5849 section 3.4.1.3).
//
// The emitted oauth_* parameters are ordered by key so the header is stable
// for identical inputs.
func (s *Signer) AuthorizationHeader(method, baseURL string, params map[string]string) (string, error) {
	nonce, err := s.nonce()
	if err != nil {
		return "", &APIError{Kind: KindTransport, Op: "sign", Err: err}
	}

	oauthParams := map[string]string{
		"oauth_consumer_key":     s.creds.ConsumerKey,
		"oauth_nonce":            nonce,
		"oauth_signature_method": signatureMethod,
		"oauth_timestamp":        strconv.FormatInt(s.now().Unix(), 10),
		"oauth_token":            s.creds.AccessToken,
		"oauth_version":          oauthVersion,
	}

	all := make(map[string]string, len(params)+len(oauthParams)+1)
	for k, v := range params {
		all[k] = v
	}
	for k, v := range oauthParams {
		all[k] = v
	}

	base := signatureBase(method, baseURL, all)
	key := percentEncode(s.creds.ConsumerSecret) + "&" + percentEncode(s.creds.AccessTokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	oauthParams["oauth_signature"] = base64.StdEncoding.EncodeToString(mac.Sum(nil))

	keys := make([]string, 0, len(oauthParams))
	for k := range oauthParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("OAuth ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(percentEncode(k))
		b.WriteString(`="`)
		b.WriteString(percentEncode(oauthParams[k]))
		b.WriteString(`"`)
	}
	return b.String(), nil
}

// signatureBase builds the RFC 5849 signature base string: the upper-case
// method, the encoded base URL and the encoded parameter string joined
// with '&'. Parameters are sorted by encoded key, ties broken by encoded
// value, so the result is independent of input ordering.
func signatureBase(method, baseURL string, params map[string]string) string {
	type pair struct {
		key, value string
	}
	pairs := make([]pair, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, pair{percentEncode(k), percentEncode(v)})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].key != pairs[j].key {
			return pairs[i].key < pairs[j].key
		}
		return pairs[i].value < pairs[j].value
	})

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString(p.key)
		b.WriteString("=")
		b.WriteString(p.value)
	}

	return strings.ToUpper(method) + "&" + percentEncode(baseURL) + "&" + percentEncode(b.String())
}

const upperhex = "0123456789ABCDEF"

// percentEncode applies RFC 3986 percent-encoding with the unreserved set
// (ALPHA / DIGIT / "-" / "." / "_" / "~"). Every other byte is encoded,
// including space as %20, never '+'. Multibyte runes are encoded per UTF-8
// byte.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
