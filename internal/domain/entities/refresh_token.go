package entities

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a session record. It starts Active and can only move
// to Revoked; rows are never physically deleted so revoked tokens
// remain as an audit trail.
type RefreshToken struct {
	Id            uuid.UUID
	UserID        uuid.UUID
	Token         string
	AccessTokenID string
	ExpiresAt     time.Time
	RevokedAt     *time.Time
	CreatedAt     time.Time
	CreatedByIP   string
}

// NewRefreshToken builds an active session bound to userID. The
// accessTokenID links the session to the jti of the access token
// issued alongside it; ip is optional metadata.
func NewRefreshToken(userID uuid.UUID, token string, ttl time.Duration, accessTokenID, ip string) *RefreshToken {
	now := time.Now().UTC()
	return &RefreshToken{
		Id:            uuid.New(),
		UserID:        userID,
		Token:         token,
		AccessTokenID: accessTokenID,
		ExpiresAt:     now.Add(ttl),
		CreatedAt:     now,
		CreatedByIP:   ip,
	}
}

// Active reports whether the token is usable at the given instant:
// not revoked and not past its expiry.
func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// Revoke marks the token terminally unusable. Calling it again is a
// no-op; the original revocation time is kept.
func (t *RefreshToken) Revoke(now time.Time) {
	if t.RevokedAt != nil {
		return
	}
	utc := now.UTC()
	t.RevokedAt = &utc
}
