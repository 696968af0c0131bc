// internal/service/roster_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"life_as_game/internal/game"
	"life_as_game/internal/model"
	"life_as_game/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedCharacter(name string, level, xp int) *model.Character {
	userID := uuid.New()
	return &model.Character{
		CharacterID: uuid.New(),
		UserID:      &userID,
		Name:        name,
		Level:       level,
		XP:          xp,
		Growth:      10,
	}
}

func Test_rosterService_GetRoster(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	t.Run("正常系: 自分と匿名化された他プレイヤーが返る", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)

		self := rankedCharacter("自分", 6, 3000)
		self.UserID = &userID
		ranked := []*model.Character{
			rankedCharacter("上位", 10, 9000),
			rankedCharacter("中位", 7, 5000),
			self,
			rankedCharacter("下位", 5, 2000),
		}

		charRepo.On("FindByUserID", ctx, db, userID).Return(self, nil).Once()
		charRepo.On("FindRankedByMinLevel", ctx, db, 5).Return(ranked, nil).Once()

		svc := NewRosterService(db, charRepo, 5, 10)
		resp, err := svc.GetRoster(ctx, userID)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 4, resp.TotalEligible)

		// 自分の行には名前が入る
		assert.True(t, resp.Self.IsSelf)
		assert.Equal(t, "自分", resp.Self.Name)
		assert.Equal(t, 6, resp.Self.Level)
		// 4人中、自分より上が2人なので上位50% → active
		assert.Equal(t, game.TierActive, resp.Self.RankTier)

		// 他プレイヤーは自分を含まず、名前は伏せられる
		assert.Len(t, resp.Others, 3)
		for _, entry := range resp.Others {
			assert.False(t, entry.IsSelf)
			assert.Empty(t, entry.Name)
			assert.NotEmpty(t, entry.PlayStyle)
			assert.NotEmpty(t, entry.RankTier)
		}
		charRepo.AssertExpectations(t)
	})

	t.Run("正常系: 他プレイヤーは最大サンプル数に切り詰められる", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)

		self := rankedCharacter("自分", 6, 3000)
		self.UserID = &userID
		ranked := []*model.Character{self}
		for i := 0; i < 15; i++ {
			ranked = append(ranked, rankedCharacter("他", 5, 1000+i))
		}

		charRepo.On("FindByUserID", ctx, db, userID).Return(self, nil).Once()
		charRepo.On("FindRankedByMinLevel", ctx, db, 5).Return(ranked, nil).Once()

		svc := NewRosterService(db, charRepo, 5, 10)
		resp, err := svc.GetRoster(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, 16, resp.TotalEligible)
		assert.Len(t, resp.Others, 10)
	})

	t.Run("正常系: 参加者が自分だけならトップ10%扱い", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)

		self := rankedCharacter("自分", 6, 3000)
		self.UserID = &userID

		charRepo.On("FindByUserID", ctx, db, userID).Return(self, nil).Once()
		charRepo.On("FindRankedByMinLevel", ctx, db, 5).Return([]*model.Character{self}, nil).Once()

		svc := NewRosterService(db, charRepo, 5, 10)
		resp, err := svc.GetRoster(ctx, userID)

		require.NoError(t, err)
		// 母数が少なすぎる間は区間を計算しない
		assert.Equal(t, game.TierActive, resp.Self.RankTier)
		assert.Empty(t, resp.Others)
		assert.Equal(t, 1, resp.TotalEligible)
	})

	t.Run("異常系: レベル不足は参加不可", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)

		self := rankedCharacter("自分", 3, 1500)
		self.UserID = &userID

		charRepo.On("FindByUserID", ctx, db, userID).Return(self, nil).Once()

		svc := NewRosterService(db, charRepo, 5, 10)
		resp, err := svc.GetRoster(ctx, userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotEligible)
		assert.Nil(t, resp)
		charRepo.AssertNotCalled(t, "FindRankedByMinLevel", ctx, db, 5)
	})

	t.Run("異常系: キャラクター未作成", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)

		charRepo.On("FindByUserID", ctx, db, userID).Return(nil, model.ErrNotFound).Once()

		svc := NewRosterService(db, charRepo, 5, 10)
		resp, err := svc.GetRoster(ctx, userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
	})

	t.Run("異常系: ランキング取得でDBエラー", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)

		self := rankedCharacter("自分", 6, 3000)
		self.UserID = &userID

		charRepo.On("FindByUserID", ctx, db, userID).Return(self, nil).Once()
		charRepo.On("FindRankedByMinLevel", ctx, db, 5).Return(nil, errors.New("db error")).Once()

		svc := NewRosterService(db, charRepo, 5, 10)
		resp, err := svc.GetRoster(ctx, userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, resp)
	})
}
