package services

import (
	"context"
	"time"

	"identity-service/internal/application/command"
	"identity-service/internal/application/common"
	"identity-service/internal/application/interfaces"
	"identity-service/internal/domain"
	"identity-service/internal/domain/entities"
	"identity-service/internal/domain/repositories"
	"identity-service/internal/infrastructure"
)

type AuthService struct {
	userRepo   repositories.UserRepository
	roleRepo   repositories.RoleRepository
	tokenRepo  repositories.RefreshTokenRepository
	jwtService *infrastructure.JWTService
	bcryptCost int
	refreshTTL time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	tokenRepo repositories.RefreshTokenRepository,
	jwtService *infrastructure.JWTService,
	bcryptCost int,
	refreshTTL time.Duration,
) interfaces.AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterCommand, ip string) (*command.RegisterCommandResult, error) {
	// Validate everything before any persistence attempt.
	if err := entities.ValidatePassword(registerCommand.Password); err != nil {
		return nil, err
	}
	if registerCommand.ConfirmPassword != registerCommand.Password {
		return nil, domain.NewValidationError("confirm_password", "password confirmation does not match")
	}
	if registerCommand.Role != "" && !entities.IsAllowedRole(registerCommand.Role) {
		return nil, domain.NewValidationError("role", "role must be one of Admin, Staff, Tenant")
	}

	newUser := entities.NewUser(registerCommand.Email, registerCommand.Username, registerCommand.FullName, registerCommand.Phone)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, newUser.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.ErrEmailTaken
	}

	roleName := registerCommand.Role
	if roleName == "" {
		roleName = entities.DefaultRoleName
	}
	role, err := s.roleRepo.GetOrCreate(ctx, roleName)
	if err != nil {
		return nil, err
	}
	newUser.Roles = []entities.Role{*role}

	if err := newUser.SetPassword(registerCommand.Password, s.bcryptCost); err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	authResult, err := s.issueSession(ctx, createdUser, ip)
	if err != nil {
		return nil, err
	}

	return &command.RegisterCommandResult{Result: authResult}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginCommand, ip string) (*command.LoginCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Prior sessions stay valid; concurrent sessions per user are
	// allowed by design.
	authResult, err := s.issueSession(ctx, user, ip)
	if err != nil {
		return nil, err
	}

	return &command.LoginCommandResult{Result: authResult}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string, ip string) (*command.RefreshCommandResult, error) {
	token, err := s.tokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if token == nil || !token.Active(time.Now().UTC()) {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindById(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidRefreshToken
	}

	accessToken, expiresAt, jti, err := s.jwtService.CreateAccessToken(user, user.RoleNames())
	if err != nil {
		return nil, err
	}
	nextToken, err := s.buildRefreshToken(user, jti, ip)
	if err != nil {
		return nil, err
	}

	// Rotation is all-or-nothing: revoking the presented token and
	// inserting its replacement either both commit or both roll back.
	if err := s.tokenRepo.Rotate(ctx, token.Id, nextToken); err != nil {
		return nil, err
	}

	return &command.RefreshCommandResult{Result: &common.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: nextToken.Token,
		ExpiresAt:    expiresAt,
	}}, nil
}

// Logout revokes the session if it exists. Unknown or already-revoked
// tokens succeed silently.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	token, err := s.tokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if token == nil {
		return nil
	}
	return s.tokenRepo.Revoke(ctx, token.Id)
}

// issueSession mints an access token and persists a fresh refresh
// token for the user.
func (s *AuthService) issueSession(ctx context.Context, user *entities.User, ip string) (*common.AuthResult, error) {
	accessToken, expiresAt, jti, err := s.jwtService.CreateAccessToken(user, user.RoleNames())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.buildRefreshToken(user, jti, ip)
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &common.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *AuthService) buildRefreshToken(user *entities.User, accessTokenID, ip string) (*entities.RefreshToken, error) {
	opaque, err := s.jwtService.CreateRefreshToken()
	if err != nil {
		return nil, err
	}
	return entities.NewRefreshToken(user.Id, opaque, s.refreshTTL, accessTokenID, ip), nil
}
