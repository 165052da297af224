package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"identity-service/internal/application/interfaces"
	"identity-service/internal/infrastructure"
	"identity-service/internal/infrastructure/db/postgres"
)

// newTestDB opens an isolated in-memory database per test. The shared
// cache keeps the schema visible across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))
	return db
}

func newTestAuthService(t *testing.T, db *gorm.DB) interfaces.AuthService {
	t.Helper()

	jwtService := infrastructure.NewJWTService("test-secret", "trm-api", "trm-clients", 15*time.Minute)
	return NewAuthService(
		postgres.NewUserRepository(db),
		postgres.NewRoleRepository(db),
		postgres.NewRefreshTokenRepository(db),
		jwtService,
		bcrypt.MinCost,
		14*24*time.Hour,
	)
}

func newTestUserService(t *testing.T, db *gorm.DB) interfaces.UserService {
	t.Helper()

	// No address configured: the cache degrades to a pass-through.
	redisService := infrastructure.NewRedisService("", "", 0)
	return NewUserService(postgres.NewUserRepository(db), redisService)
}
