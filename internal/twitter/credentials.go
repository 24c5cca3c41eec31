package twitter

import (
	"fmt"
	"os"
	"strings"
)

// Environment variable names for the OAuth 1.0a user-context credential set.
const (
	EnvAPIKey            = "API_KEY"
	EnvAPISecretKey      = "API_SECRET_KEY"
	EnvAccessToken       = "ACCESS_TOKEN"
	EnvAccessTokenSecret = "ACCESS_TOKEN_SECRET"
)

// Credentials holds the four OAuth 1.0a secrets identifying the calling
// application (consumer key/secret) and the authorized user account
// (access token/secret).
//
// A Credentials value is immutable for the process lifetime and must never
// appear in logs or error messages.
type Credentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

// LoadCredentialsFromEnv reads the credential set from the environment.
// All four variables are required; a missing one is a fatal configuration
// error and the returned *APIError names the missing variables (names only,
// never values).
func LoadCredentialsFromEnv() (Credentials, error) {
	creds := Credentials{
		ConsumerKey:       os.Getenv(EnvAPIKey),
		ConsumerSecret:    os.Getenv(EnvAPISecretKey),
		AccessToken:       os.Getenv(EnvAccessToken),
		AccessTokenSecret: os.Getenv(EnvAccessTokenSecret),
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Validate checks that every credential field is populated. Partially
// populated credentials are refused outright rather than failing later
// with an unhelpful 401.
func (c Credentials) Validate() error {
	var missing []string
	if c.ConsumerKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if c.ConsumerSecret == "" {
		missing = append(missing, EnvAPISecretKey)
	}
	if c.AccessToken == "" {
		missing = append(missing, EnvAccessToken)
	}
	if c.AccessTokenSecret == "" {
		missing = append(missing, EnvAccessTokenSecret)
	}
	if len(missing) > 0 {
		return &APIError{
			Kind: KindConfiguration,
			Op:   "credentials",
			Err:  fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")),
		}
	}
	return nil
}
