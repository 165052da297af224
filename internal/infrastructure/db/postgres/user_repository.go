package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"identity-service/internal/domain"
	"identity-service/internal/domain/entities"
	"identity-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := mapToModel(userEntity)
	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	// Read back the created user so returned roles carry their ids.
	return r.FindById(ctx, userEntity.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	err := r.db.WithContext(ctx).Preload("Roles").Where("id = ?", id).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	err := r.db.WithContext(ctx).Preload("Roles").Where("email = ?", email).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToEntity(&userModel), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).Preload("Roles").Order("created_at").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, mapToEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	updates := map[string]interface{}{
		"full_name":  user.FullName,
		"phone":      user.Phone,
		"is_active":  user.IsActive,
		"updated_at": user.UpdatedAt,
	}
	res := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", user.Id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.FindById(ctx, user.Id)
}

func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "deleted_at": now, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func mapToModel(user *entities.User) UserModel {
	roles := make([]RoleModel, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, RoleModel{Id: role.Id, Name: role.Name})
	}
	return UserModel{
		Id:           user.Id,
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		FullName:     user.FullName,
		Phone:        user.Phone,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
		Roles:        roles,
	}
}

func mapToEntity(userModel *UserModel) *entities.User {
	roles := make([]entities.Role, 0, len(userModel.Roles))
	for _, role := range userModel.Roles {
		roles = append(roles, entities.Role{Id: role.Id, Name: role.Name})
	}
	user := &entities.User{
		Id:           userModel.Id,
		Email:        userModel.Email,
		Username:     userModel.Username,
		PasswordHash: userModel.PasswordHash,
		FullName:     userModel.FullName,
		Phone:        userModel.Phone,
		IsActive:     userModel.IsActive,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
		Roles:        roles,
	}
	if userModel.DeletedAt.Valid {
		deletedAt := userModel.DeletedAt.Time
		user.DeletedAt = &deletedAt
	}
	return user
}
