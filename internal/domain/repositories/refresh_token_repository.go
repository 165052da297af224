package repositories

import (
	"context"

	"github.com/google/uuid"

	"identity-service/internal/domain/entities"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entities.RefreshToken) error
	// FindByToken looks up a session by its opaque string. Returns
	// (nil, nil) when no such token exists.
	FindByToken(ctx context.Context, token string) (*entities.RefreshToken, error)
	// Revoke marks the token revoked. Revoking an already-revoked
	// token is a no-op.
	Revoke(ctx context.Context, id uuid.UUID) error
	// Rotate revokes the old token and inserts its replacement in one
	// transaction. Returns domain.ErrInvalidRefreshToken when the old
	// token was already revoked, so concurrent rotations of the same
	// token succeed exactly once.
	Rotate(ctx context.Context, oldID uuid.UUID, next *entities.RefreshToken) error
}
