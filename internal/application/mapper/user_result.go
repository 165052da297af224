package mapper

import (
	"identity-service/internal/application/common"
	"identity-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		Email:     user.Email,
		Username:  user.Username,
		FullName:  user.FullName,
		Phone:     user.Phone,
		IsActive:  user.IsActive,
		Roles:     user.RoleNames(),
		CreatedAt: user.CreatedAt,
	}
}
