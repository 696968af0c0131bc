// internal/service/roster_service.go
package service

import (
	"context"
	"errors"
	"math/rand"

	"life_as_game/internal/game"
	"life_as_game/internal/middleware"
	"life_as_game/internal/model"
	"life_as_game/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RosterService interface {
	GetRoster(ctx context.Context, userID uuid.UUID) (*model.RosterResponse, error)
}

type rosterService struct {
	db         *gorm.DB
	charRepo   repository.CharacterRepository
	minLevel   int
	sampleSize int
}

func NewRosterService(db *gorm.DB, charRepo repository.CharacterRepository, minLevel, sampleSize int) RosterService {
	return &rosterService{
		db:         db,
		charRepo:   charRepo,
		minLevel:   minLevel,
		sampleSize: sampleSize,
	}
}

// GetRoster はランキング参加者の一覧を返します。
// 自分のキャラクターがminLevel未満の場合は参加資格なしとして拒否する。
// 他プレイヤーは匿名化し、ランダムに最大sampleSize件だけ返す。
func (s *rosterService) GetRoster(ctx context.Context, userID uuid.UUID) (*model.RosterResponse, error) {
	logger := middleware.GetLogger(ctx)

	self, err := s.charRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	if self.Level < s.minLevel {
		return nil, model.NewAppError(
			"NOT_ELIGIBLE",
			"ランキングに参加するにはレベルが足りません",
			"",
			model.ErrNotEligible,
		)
	}

	// XP降順で取得済み
	ranked, err := s.charRepo.FindRankedByMinLevel(ctx, s.db, s.minLevel)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Error fetching ranked characters", "error", err)
		return nil, model.ErrInternalServer
	}

	totalPlayers := len(ranked)

	// 自分よりXPが多いキャラクターの数 (同値は上位扱いしない)
	higherRanked := 0
	for _, c := range ranked {
		if c.XP > self.XP {
			higherRanked++
		}
	}

	selfEntry := model.RosterEntry{
		Name:      self.Name,
		Level:     self.Level,
		PlayStyle: game.PlayStyleFor(self.Stats()),
		RankTier:  game.RankTier(totalPlayers, higherRanked),
		IsSelf:    true,
	}

	// 自分以外をシャッフルして最大sampleSize件を匿名で返す
	others := make([]*model.Character, 0, totalPlayers)
	for _, c := range ranked {
		if c.CharacterID == self.CharacterID {
			continue
		}
		others = append(others, c)
	}
	rand.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if len(others) > s.sampleSize {
		others = others[:s.sampleSize]
	}

	otherEntries := make([]model.RosterEntry, 0, len(others))
	for _, c := range others {
		higher := 0
		for _, r := range ranked {
			if r.XP > c.XP {
				higher++
			}
		}
		otherEntries = append(otherEntries, model.RosterEntry{
			Level:     c.Level,
			PlayStyle: game.PlayStyleFor(c.Stats()),
			RankTier:  game.RankTier(totalPlayers, higher),
			IsSelf:    false,
		})
	}

	return &model.RosterResponse{
		Self:          selfEntry,
		Others:        otherEntries,
		TotalEligible: totalPlayers,
	}, nil
}
