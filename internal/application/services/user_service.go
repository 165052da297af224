package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"identity-service/internal/application/command"
	"identity-service/internal/application/interfaces"
	"identity-service/internal/application/mapper"
	"identity-service/internal/application/query"
	"identity-service/internal/domain"
	"identity-service/internal/domain/repositories"
	"identity-service/internal/infrastructure"
)

const profileCacheTTL = 24 * time.Hour

type UserService struct {
	userRepo     repositories.UserRepository
	redisService *infrastructure.RedisService
}

func NewUserService(userRepo repositories.UserRepository, redisService *infrastructure.RedisService) interfaces.UserService {
	return &UserService{
		userRepo:     userRepo,
		redisService: redisService,
	}
}

func (s *UserService) GetAll(ctx context.Context) (*query.UserQueryListResult, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &query.UserQueryListResult{}
	for _, user := range users {
		result.Result = append(result.Result, mapper.NewUserResultFromEntity(user))
	}
	return result, nil
}

func (s *UserService) GetById(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error) {
	// Try the profile cache first; any miss or cache error falls
	// through to the database.
	if cachedUser, err := s.redisService.GetProfile(ctx, id.String()); err == nil && cachedUser != nil {
		return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(cachedUser)}, nil
	}

	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	cacheable := *user
	cacheable.PasswordHash = "" // hashes never enter the cache
	if err := s.redisService.SetProfile(ctx, id.String(), &cacheable, profileCacheTTL); err != nil {
		log.Printf("failed to cache user profile: %v", err)
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, updateCommand *command.UpdateUserCommand) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := user.UpdateProfile(updateCommand.FullName, updateCommand.Phone, updateCommand.IsActive); err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.redisService.DeleteProfile(ctx, id.String()); err != nil {
		log.Printf("failed to invalidate cached profile: %v", err)
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(updatedUser)}, nil
}

func (s *UserService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	if err := s.redisService.DeleteProfile(ctx, id.String()); err != nil {
		log.Printf("failed to invalidate cached profile: %v", err)
	}
	return nil
}
