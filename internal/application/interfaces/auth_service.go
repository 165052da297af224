package interfaces

import (
	"context"

	"identity-service/internal/application/command"
)

// AuthService composes the credential store, password hasher, token
// issuer and session store into the register / login / refresh /
// logout workflows. The ip argument is optional session metadata.
type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterCommand, ip string) (*command.RegisterCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginCommand, ip string) (*command.LoginCommandResult, error)
	Refresh(ctx context.Context, refreshToken string, ip string) (*command.RefreshCommandResult, error)
	Logout(ctx context.Context, refreshToken string) error
}
