//go:generate mockery --name CharacterRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"life_as_game/internal/middleware"
	"life_as_game/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type CharacterRepository interface {
	Create(ctx context.Context, tx *gorm.DB, character *model.Character) error
	FindByID(ctx context.Context, db *gorm.DB, characterID uuid.UUID) (*model.Character, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Character, error)
	FindRankedByMinLevel(ctx context.Context, db *gorm.DB, minLevel int) ([]*model.Character, error)
	ApplyProgress(ctx context.Context, tx *gorm.DB, characterID uuid.UUID, expectedXP int, updates map[string]interface{}) error
}

type gormCharacterRepository struct{}

func NewGormCharacterRepository() CharacterRepository {
	return &gormCharacterRepository{}
}

func (r *gormCharacterRepository) Create(ctx context.Context, tx *gorm.DB, character *model.Character) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(character)
	if result.Error != nil {
		// user_idの一意制約違反 (レースコンディションで重複チェックをすり抜けた場合)
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create character",
				"error", result.Error,
				"character_name", character.Name,
			)
			return model.ErrConflict
		}

		logger.Error("Error creating character in DB",
			"error", result.Error,
			"character_name", character.Name,
		)
		return fmt.Errorf("gormCharacterRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCharacterRepository) FindByID(ctx context.Context, db *gorm.DB, characterID uuid.UUID) (*model.Character, error) {
	logger := middleware.GetLogger(ctx)
	var character model.Character
	result := db.WithContext(ctx).Where("character_id = ?", characterID).First(&character)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding character by ID in DB",
			"error", result.Error,
			"character_id", characterID.String(),
		)
		return nil, fmt.Errorf("gormCharacterRepository.FindByID: %w", result.Error)
	}
	return &character, nil
}

func (r *gormCharacterRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Character, error) {
	logger := middleware.GetLogger(ctx)
	var character model.Character
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&character)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding character by user ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormCharacterRepository.FindByUserID: %w", result.Error)
	}
	return &character, nil
}

// FindRankedByMinLevel はランキング対象（minLevel以上）の全キャラクターを
// XPの降順で返します。ランキングは読み取り専用のスナップショットでよい。
func (r *gormCharacterRepository) FindRankedByMinLevel(ctx context.Context, db *gorm.DB, minLevel int) ([]*model.Character, error) {
	logger := middleware.GetLogger(ctx)
	var characters []*model.Character
	result := db.WithContext(ctx).
		Where("level >= ?", minLevel).
		Order("xp DESC").
		Find(&characters)
	if result.Error != nil {
		logger.Error("Error finding ranked characters in DB",
			"error", result.Error,
			"min_level", minLevel,
		)
		return nil, fmt.Errorf("gormCharacterRepository.FindRankedByMinLevel: %w", result.Error)
	}
	return characters, nil
}

// ApplyProgress は楽観的並行制御付きでキャラクターの進行状態を更新します。
// WHERE句に更新前のXPを含めた条件付きUPDATEで、同一キャラクターへの
// 並行更新があった場合は RowsAffected が0になり model.ErrConflict を返す。
// 呼び出し元は再読込してリトライする。
func (r *gormCharacterRepository) ApplyProgress(ctx context.Context, tx *gorm.DB, characterID uuid.UUID, expectedXP int, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.Character{}).
		Where("character_id = ? AND xp = ?", characterID, expectedXP).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error applying character progress in DB",
			"error", result.Error,
			"character_id", characterID.String(),
		)
		return fmt.Errorf("gormCharacterRepository.ApplyProgress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// 並行更新に負けたか、対象が存在しない。区別は呼び出し元の再読込に任せる。
		return model.ErrConflict
	}
	return nil
}
