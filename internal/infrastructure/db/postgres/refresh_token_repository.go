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

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) repositories.RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *entities.RefreshToken) error {
	tokenModel := mapTokenToModel(token)
	if err := r.db.WithContext(ctx).Create(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateToken
		}
		return err
	}
	return nil
}

func (r *RefreshTokenRepository) FindByToken(ctx context.Context, token string) (*entities.RefreshToken, error) {
	var tokenModel RefreshTokenModel
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&tokenModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapTokenToEntity(&tokenModel), nil
}

// Revoke stamps revoked_at on an active token. Already-revoked tokens
// keep their original revocation time, which makes logout idempotent.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&RefreshTokenModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now().UTC()).Error
}

// Rotate revokes the consumed token and inserts its replacement
// atomically. The guarded update (revoked_at IS NULL) means only one
// of two concurrent rotations of the same token can win; the loser
// sees zero affected rows and fails as already-revoked.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, oldID uuid.UUID, next *entities.RefreshToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&RefreshTokenModel{}).
			Where("id = ? AND revoked_at IS NULL", oldID).
			Update("revoked_at", time.Now().UTC())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidRefreshToken
		}

		nextModel := mapTokenToModel(next)
		if err := tx.Create(&nextModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateToken
			}
			return err
		}
		return nil
	})
}

func mapTokenToModel(token *entities.RefreshToken) RefreshTokenModel {
	return RefreshTokenModel{
		Id:            token.Id,
		UserID:        token.UserID,
		Token:         token.Token,
		AccessTokenID: token.AccessTokenID,
		ExpiresAt:     token.ExpiresAt,
		RevokedAt:     token.RevokedAt,
		CreatedAt:     token.CreatedAt,
		CreatedByIP:   token.CreatedByIP,
	}
}

func mapTokenToEntity(tokenModel *RefreshTokenModel) *entities.RefreshToken {
	return &entities.RefreshToken{
		Id:            tokenModel.Id,
		UserID:        tokenModel.UserID,
		Token:         tokenModel.Token,
		AccessTokenID: tokenModel.AccessTokenID,
		ExpiresAt:     tokenModel.ExpiresAt,
		RevokedAt:     tokenModel.RevokedAt,
		CreatedAt:     tokenModel.CreatedAt,
		CreatedByIP:   tokenModel.CreatedByIP,
	}
}
