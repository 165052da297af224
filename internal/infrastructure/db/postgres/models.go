package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:256;not null"`
	Username     string    `gorm:"size:100;not null"`
	PasswordHash string    `gorm:"not null"`
	FullName     string
	Phone        string
	IsActive     bool `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
	Roles        []RoleModel    `gorm:"many2many:user_roles"`
}

func (UserModel) TableName() string {
	return "users"
}

type RoleModel struct {
	Id   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

func (RoleModel) TableName() string {
	return "roles"
}

type RefreshTokenModel struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Token         string    `gorm:"uniqueIndex;not null"`
	AccessTokenID string
	ExpiresAt     time.Time `gorm:"not null"`
	RevokedAt     *time.Time
	CreatedAt     time.Time
	CreatedByIP   string
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
