//go:generate mockery --name DailyLogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"life_as_game/internal/middleware"
	"life_as_game/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyLogRepository は追記専用のセッションログを扱います。更新・削除は提供しない。
type DailyLogRepository interface {
	Create(ctx context.Context, tx *gorm.DB, log *model.DailyLog) error
	FindByCharacter(ctx context.Context, db *gorm.DB, characterID uuid.UUID, limit int) ([]*model.DailyLog, error)
}

type gormDailyLogRepository struct{}

func NewGormDailyLogRepository() DailyLogRepository {
	return &gormDailyLogRepository{}
}

func (r *gormDailyLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.DailyLog) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(log)
	if result.Error != nil {
		logger.Error("Error creating daily log in DB",
			"error", result.Error,
			"character_id", log.CharacterID.String(),
		)
		return fmt.Errorf("gormDailyLogRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDailyLogRepository) FindByCharacter(ctx context.Context, db *gorm.DB, characterID uuid.UUID, limit int) ([]*model.DailyLog, error) {
	logger := middleware.GetLogger(ctx)
	var logs []*model.DailyLog
	result := db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs)
	if result.Error != nil {
		logger.Error("Error finding daily logs in DB",
			"error", result.Error,
			"character_id", characterID.String(),
		)
		return nil, fmt.Errorf("gormDailyLogRepository.FindByCharacter: %w", result.Error)
	}
	return logs, nil
}
