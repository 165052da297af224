package interfaces

import (
	"context"

	"github.com/google/uuid"

	"identity-service/internal/application/command"
	"identity-service/internal/application/query"
)

type UserService interface {
	GetAll(ctx context.Context) (*query.UserQueryListResult, error)
	GetById(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error)
	Update(ctx context.Context, id uuid.UUID, updateCommand *command.UpdateUserCommand) (*query.UserQueryResult, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
