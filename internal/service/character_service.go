// internal/service/character_service.go
package service

import (
	"context"
	"errors"
	"time"

	"life_as_game/internal/game"
	"life_as_game/internal/middleware"
	"life_as_game/internal/model"
	"life_as_game/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applyMaxRetries は楽観ロック競合時の再試行上限。
const applyMaxRetries = 3

type CharacterService interface {
	CreateCharacter(ctx context.Context, userID uuid.UUID, req *model.CreateCharacterRequest) (*model.CharacterResponse, error)
	GetCharacterByUser(ctx context.Context, userID uuid.UUID) (*model.CharacterResponse, error)
	ApplySession(ctx context.Context, userID uuid.UUID, text string, result *model.SessionResult) (*model.SessionOutcome, error)
	ListLogs(ctx context.Context, userID uuid.UUID) ([]*model.DailyLog, error)
}

type characterService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	charRepo    repository.CharacterRepository
	logRepo     repository.DailyLogRepository
	logPageSize int
}

func NewCharacterService(db *gorm.DB, charRepo repository.CharacterRepository, logRepo repository.DailyLogRepository, logPageSize int) CharacterService {
	return &characterService{
		db:          db,
		charRepo:    charRepo,
		logRepo:     logRepo,
		logPageSize: logPageSize,
	}
}

func (s *characterService) CreateCharacter(ctx context.Context, userID uuid.UUID, req *model.CreateCharacterRequest) (*model.CharacterResponse, error) {
	logger := middleware.GetLogger(ctx)

	// 1ユーザーにつきキャラクターは1体まで
	_, err := s.charRepo.FindByUserID(ctx, s.db, userID)
	if err == nil {
		return nil, model.NewAppError("CONFLICT", "キャラクターは既に作成されています", "", model.ErrConflict)
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error checking existing character", "error", err)
		return nil, model.ErrInternalServer
	}

	character := &model.Character{
		CharacterID: uuid.New(),
		UserID:      &userID,
		Name:        req.Name,
		Level:       1,
		XP:          0,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.charRepo.Create(ctx, tx, character)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("CONFLICT", "キャラクターは既に作成されています", "", err)
		}
		logger.Error("Transaction failed for CreateCharacter", "error", err)
		return nil, model.ErrInternalServer
	}

	return model.NewCharacterResponse(character), nil
}

func (s *characterService) GetCharacterByUser(ctx context.Context, userID uuid.UUID) (*model.CharacterResponse, error) {
	character, err := s.charRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return model.NewCharacterResponse(character), nil
}

// ApplySession は分析結果をキャラクターに適用し、プレイログを記録します。
// ステータス更新は直前のXP値を条件にした楽観ロックで行い、
// 競合した場合は最新状態を読み直して再計算します(最大 applyMaxRetries 回)。
// ステータス更新とログ記録は同一トランザクションで行い、片方だけが残ることはありません。
func (s *characterService) ApplySession(ctx context.Context, userID uuid.UUID, text string, result *model.SessionResult) (*model.SessionOutcome, error) {
	logger := middleware.GetLogger(ctx)

	character, err := s.charRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= applyMaxRetries; attempt++ {
		if attempt > 1 {
			// 競合後はIDで最新状態を読み直す
			character, err = s.charRepo.FindByID(ctx, s.db, character.CharacterID)
			if err != nil {
				return nil, err
			}
		}

		oldXP := character.XP
		newXP := oldXP + result.XP
		newStats := character.Stats().Add(result.Delta)
		newLevel := game.LevelForXP(newXP)
		levelUp := game.DetectLevelUp(oldXP, newXP)

		updates := map[string]interface{}{
			"xp":     newXP,
			"level":  newLevel,
			"focus":  newStats.Focus,
			"health": newStats.Health,
			"mental": newStats.Mental,
			"growth": newStats.Growth,
		}

		dailyLog := &model.DailyLog{
			LogID:       uuid.New(),
			CharacterID: character.CharacterID,
			LogDate:     time.Now(),
			RawText:     text,
			FocusDelta:  result.Delta.Focus,
			HealthDelta: result.Delta.Health,
			MentalDelta: result.Delta.Mental,
			GrowthDelta: result.Delta.Growth,
			XPGained:    result.XP,
			Comment:     result.Comment,
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.charRepo.ApplyProgress(ctx, tx, character.CharacterID, oldXP, updates); err != nil {
				return err
			}
			return s.logRepo.Create(ctx, tx, dailyLog)
		})
		if err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Concurrent update detected, retrying",
					"character_id", character.CharacterID.String(),
					"attempt", attempt,
				)
				continue
			}
			logger.Error("Transaction failed for ApplySession", "error", err)
			return nil, model.ErrInternalServer
		}

		// 更新後の状態をメモリ上で反映してレスポンスを作る
		character.XP = newXP
		character.Level = newLevel
		character.Focus = newStats.Focus
		character.Health = newStats.Health
		character.Mental = newStats.Mental
		character.Growth = newStats.Growth

		outcome := &model.SessionOutcome{
			Result:    result,
			Character: model.NewCharacterResponse(character),
			LevelUp:   levelUp,
		}
		if levelUp.Occurred {
			msg := game.MessageForLevel(levelUp.NewLevel)
			outcome.LevelMessage = &msg
		}
		return outcome, nil
	}

	logger.Error("ApplySession gave up after retries", "user_id", userID.String())
	return nil, model.ErrConflict
}

func (s *characterService) ListLogs(ctx context.Context, userID uuid.UUID) ([]*model.DailyLog, error) {
	logger := middleware.GetLogger(ctx)

	character, err := s.charRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.FindByCharacter(ctx, s.db, character.CharacterID, s.logPageSize)
	if err != nil {
		logger.Error("Error listing daily logs", "error", err)
		return nil, model.ErrInternalServer
	}
	return logs, nil
}
