package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"identity-service/internal/domain/entities"
	"identity-service/internal/domain/repositories"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return &RoleRepository{db: db}
}

// GetOrCreate resolves a role by its unique name, inserting it on
// first reference. A duplicate-key error means a concurrent caller
// created the row between our lookup and insert; the role is
// re-fetched instead of failing.
func (r *RoleRepository) GetOrCreate(ctx context.Context, name string) (*entities.Role, error) {
	var roleModel RoleModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&roleModel).Error
	if err == nil {
		return &entities.Role{Id: roleModel.Id, Name: roleModel.Name}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	roleModel = RoleModel{Name: name}
	if err := r.db.WithContext(ctx).Create(&roleModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.db.WithContext(ctx).Where("name = ?", name).First(&roleModel).Error; err != nil {
				return nil, err
			}
			return &entities.Role{Id: roleModel.Id, Name: roleModel.Name}, nil
		}
		return nil, err
	}

	return &entities.Role{Id: roleModel.Id, Name: roleModel.Name}, nil
}
