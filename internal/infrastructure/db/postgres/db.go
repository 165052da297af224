// Package postgres implements the domain repository interfaces on top
// of GORM. Error translation is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey, which the repositories
// map to the domain conflict errors.
package postgres

import (
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL with the given DSN.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(pgdriver.Open(dsn), &gorm.Config{TranslateError: true})
}

// AutoMigrate creates or updates the identity tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &RoleModel{}, &RefreshTokenModel{})
}
