package common

import "time"

// AuthResult is the credential pair returned by register, login and
// refresh. ExpiresAt is the access token expiry; the refresh token
// outlives it by the configured days-scale TTL.
type AuthResult struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
