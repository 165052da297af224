package repositories

import (
	"context"

	"identity-service/internal/domain/entities"
)

type RoleRepository interface {
	// GetOrCreate returns the role with the given unique name, creating
	// it if absent. Must be idempotent under concurrent callers.
	GetOrCreate(ctx context.Context, name string) (*entities.Role, error)
}
