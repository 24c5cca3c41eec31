// Package twitter provides a minimal Twitter/X API v2 client with
// OAuth 1.0a user-context request signing.
//
// The package covers the four operations exposed by the MCP server:
// creating tweets, deleting tweets, searching recent tweets and looking
// up users by username. Every outbound request carries an Authorization
// header produced by Signer, which implements the RFC 5849 HMAC-SHA1
// signature scheme with canonical percent-encoding and deterministic
// parameter ordering.
//
// HTTP outcomes are normalized into *APIError values with a typed Kind,
// so callers can distinguish credential problems (401), permission or
// stale-token problems (403), rate limiting (429), other remote failures
// and pure transport failures without parsing error strings.
package twitter
