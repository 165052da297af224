package infrastructure

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"identity-service/internal/domain/entities"
)

// AccessTokenClaims is the fixed claim schema of access tokens:
// registered claims (sub = user id, jti, issuer, audience, expiry)
// plus username, email and the user's roles.
type AccessTokenClaims struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
	issuer    string
	audience  string
	accessTTL time.Duration
}

func NewJWTService(secretKey, issuer, audience string, accessTTL time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		accessTTL: accessTTL,
	}
}

// CreateAccessToken signs a short-lived HS256 credential binding the
// user's identity and role claims. Returns the serialized token, its
// expiry and the embedded token id (jti).
func (j *JWTService) CreateAccessToken(user *entities.User, roles []string) (string, time.Time, string, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(j.accessTTL)
	jti := uuid.NewString()

	claims := AccessTokenClaims{
		Username: user.Username,
		Email:    user.Email,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id.String(),
			ID:        jti,
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, "", err
	}
	return signed, expiresAt, jti, nil
}

// CreateRefreshToken returns a cryptographically random opaque string.
// 48 bytes of entropy hex-encoded; collisions are prevented in
// practice by construction and enforced by the store's unique
// constraint.
func (j *JWTService) CreateRefreshToken() (string, error) {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// ParseAccessToken validates the signature, expiry, issuer and
// audience of a serialized access token and returns its claims.
func (j *JWTService) ParseAccessToken(raw string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	}, jwt.WithIssuer(j.issuer), jwt.WithAudience(j.audience))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
