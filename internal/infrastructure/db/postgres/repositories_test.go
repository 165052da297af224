package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"identity-service/internal/domain"
	"identity-service/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestRoleGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	created, err := repo.GetOrCreate(ctx, "Tenant")
	require.NoError(t, err)
	assert.NotZero(t, created.Id)

	fetched, err := repo.GetOrCreate(ctx, "Tenant")
	require.NoError(t, err)
	assert.Equal(t, created.Id, fetched.Id, "second call reuses the existing row")

	other, err := repo.GetOrCreate(ctx, "Admin")
	require.NoError(t, err)
	assert.NotEqual(t, created.Id, other.Id)
}

func TestUserCreateTranslatesDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first, err := entities.NewValidatedUser(entities.NewUser("a@x.com", "alice", "", ""))
	require.NoError(t, err)
	_, err = repo.Create(ctx, first)
	require.NoError(t, err)

	// Same email straight at the store: the unique constraint must
	// come back as the domain conflict error.
	second, err := entities.NewValidatedUser(entities.NewUser("a@x.com", "bobby", "", ""))
	require.NoError(t, err)
	_, err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRefreshTokenRotateIsExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	old := entities.NewRefreshToken(userID, "token-old", time.Hour, "", "")
	require.NoError(t, repo.Create(ctx, old))

	next := entities.NewRefreshToken(userID, "token-next", time.Hour, "", "")
	require.NoError(t, repo.Rotate(ctx, old.Id, next))

	// Rotating the same token again loses the guarded revoke and the
	// replacement insert rolls back with it.
	again := entities.NewRefreshToken(userID, "token-again", time.Hour, "", "")
	err := repo.Rotate(ctx, old.Id, again)
	assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)

	missing, err := repo.FindByToken(ctx, "token-again")
	require.NoError(t, err)
	assert.Nil(t, missing, "failed rotation must not leave a new session behind")
}

func TestRefreshTokenUniqueConstraint(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, entities.NewRefreshToken(uuid.New(), "same-token", time.Hour, "", "")))
	err := repo.Create(ctx, entities.NewRefreshToken(uuid.New(), "same-token", time.Hour, "", ""))
	assert.ErrorIs(t, err, domain.ErrDuplicateToken)
}

func TestRevokeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	token := entities.NewRefreshToken(uuid.New(), "token-1", time.Hour, "", "")
	require.NoError(t, repo.Create(ctx, token))

	require.NoError(t, repo.Revoke(ctx, token.Id))
	revoked, err := repo.FindByToken(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, revoked.RevokedAt)
	first := *revoked.RevokedAt

	require.NoError(t, repo.Revoke(ctx, token.Id))
	revoked, err = repo.FindByToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, first, *revoked.RevokedAt, "re-revoking keeps the original timestamp")

	// Revoking an unknown id is a no-op.
	assert.NoError(t, repo.Revoke(ctx, uuid.New()))
}
