//go:generate mockery --name TokenRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"life_as_game/internal/middleware"
	"life_as_game/internal/model"

	"gorm.io/gorm"
)

// TokenRepository はメール認証トークンの永続化を担当するインターフェース。
type TokenRepository interface {
	Create(ctx context.Context, db *gorm.DB, token *model.UserVerificationToken) error
	FindByToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error)
	Delete(ctx context.Context, db *gorm.DB, token string) error
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

func (r *gormTokenRepository) Create(ctx context.Context, db *gorm.DB, token *model.UserVerificationToken) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Create(token).Error; err != nil {
		logger.Error("Error creating verification token in DB", "error", err)
		return fmt.Errorf("gormTokenRepository.Create: %w", err)
	}
	return nil
}

func (r *gormTokenRepository) FindByToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error) {
	logger := middleware.GetLogger(ctx)
	var record model.UserVerificationToken

	result := db.WithContext(ctx).Where("token = ?", token).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding verification token in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTokenRepository.FindByToken: %w", result.Error)
	}
	return &record, nil
}

func (r *gormTokenRepository) Delete(ctx context.Context, db *gorm.DB, token string) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("token = ?", token).Delete(&model.UserVerificationToken{})
	if result.Error != nil {
		logger.Error("Error deleting verification token in DB", "error", result.Error)
		return fmt.Errorf("gormTokenRepository.Delete: %w", result.Error)
	}
	return nil
}
