// internal/service/character_service_test.go
package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"life_as_game/internal/game"
	"life_as_game/internal/model"
	"life_as_game/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
// リポジトリはモックするが、サービスが db.Transaction を使うため形だけ用意する。
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testCharacter(userID uuid.UUID) *model.Character {
	return &model.Character{
		CharacterID: uuid.New(),
		UserID:      &userID,
		Name:        "テスト冒険者",
		Level:       1,
		XP:          400,
		Focus:       3,
		Health:      1,
		Mental:      2,
		Growth:      5,
	}
}

// --- Test CreateCharacter ---
func Test_characterService_CreateCharacter(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(charRepo *mocks.CharacterRepository, logRepo *mocks.DailyLogRepository)
		wantErr   error
	}{
		{
			name: "正常系: キャラクター作成成功",
			setupMock: func(charRepo *mocks.CharacterRepository, logRepo *mocks.DailyLogRepository) {
				charRepo.On("FindByUserID", ctx, db, userID).Return(nil, model.ErrNotFound).Once()
				charRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Character")).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 既にキャラクターが存在する",
			setupMock: func(charRepo *mocks.CharacterRepository, logRepo *mocks.DailyLogRepository) {
				charRepo.On("FindByUserID", ctx, db, userID).Return(testCharacter(userID), nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 作成時に一意制約違反 (レースコンディション)",
			setupMock: func(charRepo *mocks.CharacterRepository, logRepo *mocks.DailyLogRepository) {
				charRepo.On("FindByUserID", ctx, db, userID).Return(nil, model.ErrNotFound).Once()
				charRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Character")).Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charRepo := new(mocks.CharacterRepository)
			logRepo := new(mocks.DailyLogRepository)
			tt.setupMock(charRepo, logRepo)

			svc := NewCharacterService(db, charRepo, logRepo, 30)
			resp, err := svc.CreateCharacter(ctx, userID, &model.CreateCharacterRequest{Name: "テスト冒険者"})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, "テスト冒険者", resp.Name)
				assert.Equal(t, 1, resp.Level)
				assert.Equal(t, 0, resp.XP)
			}
			charRepo.AssertExpectations(t)
		})
	}
}

// --- Test ApplySession ---
func Test_characterService_ApplySession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	result := &model.SessionResult{
		Delta:   game.Stats{Focus: 2, Health: 1, Mental: -1, Growth: 3},
		XP:      75,
		Comment: "今日はよく集中できたね!",
	}

	t.Run("正常系: セッション適用成功 (レベルアップなし)", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)
		logRepo := new(mocks.DailyLogRepository)
		character := testCharacter(userID) // XP 400

		charRepo.On("FindByUserID", ctx, db, userID).Return(character, nil).Once()
		charRepo.On("ApplyProgress", ctx, mock.AnythingOfType("*gorm.DB"), character.CharacterID, 400, mock.AnythingOfType("map[string]interface {}")).
			Return(nil).Once()
		logRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.DailyLog")).Return(nil).Once()

		svc := NewCharacterService(db, charRepo, logRepo, 30)
		outcome, err := svc.ApplySession(ctx, userID, "仕事に集中して、新しい技術を学んだ", result)

		require.NoError(t, err)
		require.NotNil(t, outcome)
		assert.Equal(t, 475, outcome.Character.XP)
		assert.Equal(t, 1, outcome.Character.Level)
		assert.False(t, outcome.LevelUp.Occurred)
		assert.Nil(t, outcome.LevelMessage)
		// スタットは加算される
		assert.Equal(t, 5, outcome.Character.Focus)
		assert.Equal(t, 2, outcome.Character.Health)
		assert.Equal(t, 1, outcome.Character.Mental)
		assert.Equal(t, 8, outcome.Character.Growth)
		charRepo.AssertExpectations(t)
		logRepo.AssertExpectations(t)
	})

	t.Run("正常系: レベルアップ発生時はメッセージ付き", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)
		logRepo := new(mocks.DailyLogRepository)
		character := testCharacter(userID)
		character.XP = 450 // 450 + 75 = 525 >= 500 でレベル2

		charRepo.On("FindByUserID", ctx, db, userID).Return(character, nil).Once()
		charRepo.On("ApplyProgress", ctx, mock.AnythingOfType("*gorm.DB"), character.CharacterID, 450, mock.AnythingOfType("map[string]interface {}")).
			Return(nil).Once()
		logRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.DailyLog")).Return(nil).Once()

		svc := NewCharacterService(db, charRepo, logRepo, 30)
		outcome, err := svc.ApplySession(ctx, userID, "ジムで運動した", result)

		require.NoError(t, err)
		require.True(t, outcome.LevelUp.Occurred)
		assert.Equal(t, 1, outcome.LevelUp.PreviousLevel)
		assert.Equal(t, 2, outcome.LevelUp.NewLevel)
		assert.Equal(t, 2, outcome.Character.Level)
		require.NotNil(t, outcome.LevelMessage)
		assert.NotEmpty(t, outcome.LevelMessage.Title)
	})

	t.Run("正常系: 競合時は読み直して再試行する", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)
		logRepo := new(mocks.DailyLogRepository)
		stale := testCharacter(userID) // XP 400
		fresh := *stale
		fresh.XP = 500 // 他のリクエストにより更新済み

		charRepo.On("FindByUserID", ctx, db, userID).Return(stale, nil).Once()
		charRepo.On("ApplyProgress", ctx, mock.AnythingOfType("*gorm.DB"), stale.CharacterID, 400, mock.AnythingOfType("map[string]interface {}")).
			Return(model.ErrConflict).Once()
		// 2回目以降の読み直しはIDで行われる
		charRepo.On("FindByID", ctx, db, stale.CharacterID).Return(&fresh, nil).Once()
		charRepo.On("ApplyProgress", ctx, mock.AnythingOfType("*gorm.DB"), stale.CharacterID, 500, mock.AnythingOfType("map[string]interface {}")).
			Return(nil).Once()
		logRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.DailyLog")).Return(nil).Once()

		svc := NewCharacterService(db, charRepo, logRepo, 30)
		outcome, err := svc.ApplySession(ctx, userID, "読書をした", result)

		require.NoError(t, err)
		// 再試行後は最新のXPを起点に計算される
		assert.Equal(t, 575, outcome.Character.XP)
		charRepo.AssertExpectations(t)
		logRepo.AssertExpectations(t)
	})

	t.Run("異常系: 競合が続く場合は上限で諦める", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)
		logRepo := new(mocks.DailyLogRepository)
		character := testCharacter(userID)

		charRepo.On("FindByUserID", ctx, db, userID).Return(character, nil).Once()
		charRepo.On("FindByID", ctx, db, character.CharacterID).Return(character, nil).Times(2)
		charRepo.On("ApplyProgress", ctx, mock.AnythingOfType("*gorm.DB"), character.CharacterID, 400, mock.AnythingOfType("map[string]interface {}")).
			Return(model.ErrConflict).Times(3)

		svc := NewCharacterService(db, charRepo, logRepo, 30)
		outcome, err := svc.ApplySession(ctx, userID, "散歩した", result)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, outcome)
		// ログは一度も書かれない
		logRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: ステータス更新失敗時はログも書かれない", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)
		logRepo := new(mocks.DailyLogRepository)
		character := testCharacter(userID)

		charRepo.On("FindByUserID", ctx, db, userID).Return(character, nil).Once()
		charRepo.On("ApplyProgress", ctx, mock.AnythingOfType("*gorm.DB"), character.CharacterID, 400, mock.AnythingOfType("map[string]interface {}")).
			Return(errors.New("db write error")).Once()

		svc := NewCharacterService(db, charRepo, logRepo, 30)
		outcome, err := svc.ApplySession(ctx, userID, "昼寝した", result)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, outcome)
		logRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: キャラクターが存在しない", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)
		logRepo := new(mocks.DailyLogRepository)

		charRepo.On("FindByUserID", ctx, db, userID).Return(nil, model.ErrNotFound).Once()

		svc := NewCharacterService(db, charRepo, logRepo, 30)
		outcome, err := svc.ApplySession(ctx, userID, "何もしなかった", result)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, outcome)
	})
}

// --- 競合時の整合性テスト ---
// CAS方式のリポジトリを模したインメモリ実装で、並行適用しても
// 成功した回数分だけXPとログが増えることを確認する。
type casCharacterStore struct {
	mu        sync.Mutex
	character model.Character
	logs      []*model.DailyLog
}

func (s *casCharacterStore) Create(ctx context.Context, tx *gorm.DB, c *model.Character) error {
	return nil
}

func (s *casCharacterStore) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.character
	return &c, nil
}

func (s *casCharacterStore) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.character
	return &c, nil
}

func (s *casCharacterStore) FindRankedByMinLevel(ctx context.Context, db *gorm.DB, minLevel int) ([]*model.Character, error) {
	return nil, nil
}

func (s *casCharacterStore) ApplyProgress(ctx context.Context, tx *gorm.DB, characterID uuid.UUID, expectedXP int, updates map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.character.XP != expectedXP {
		return model.ErrConflict
	}
	s.character.XP = updates["xp"].(int)
	s.character.Level = updates["level"].(int)
	s.character.Focus = updates["focus"].(int)
	s.character.Health = updates["health"].(int)
	s.character.Mental = updates["mental"].(int)
	s.character.Growth = updates["growth"].(int)
	return nil
}

type casLogStore struct {
	store *casCharacterStore
}

func (s *casLogStore) Create(ctx context.Context, tx *gorm.DB, log *model.DailyLog) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.logs = append(s.store.logs, log)
	return nil
}

func (s *casLogStore) FindByCharacter(ctx context.Context, db *gorm.DB, characterID uuid.UUID, limit int) ([]*model.DailyLog, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.store.logs, nil
}

func Test_characterService_ApplySession_Concurrent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	store := &casCharacterStore{character: *testCharacter(userID)}
	svc := NewCharacterService(db, store, &casLogStore{store: store}, 30)

	result := &model.SessionResult{
		Delta:   game.Stats{Focus: 1},
		XP:      10,
		Comment: "継続は力なり",
	}

	const workers = 8
	var wg sync.WaitGroup
	var successMu sync.Mutex
	successes := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ApplySession(ctx, userID, "並行テスト", result)
			if err == nil {
				successMu.Lock()
				successes++
				successMu.Unlock()
			} else {
				// 再試行上限に達した場合のみ競合エラーを許容する
				assert.ErrorIs(t, err, model.ErrConflict)
			}
		}()
	}
	wg.Wait()

	require.Greater(t, successes, 0)
	// 成功した回数分だけが反映され、更新の消失や部分適用は起きない
	assert.Equal(t, 400+10*successes, store.character.XP)
	assert.Equal(t, 3+successes, store.character.Focus)
	assert.Len(t, store.logs, successes)
}

// --- Test ListLogs ---
func Test_characterService_ListLogs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	t.Run("正常系: ログ一覧取得成功", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)
		logRepo := new(mocks.DailyLogRepository)
		character := testCharacter(userID)

		logs := []*model.DailyLog{
			{LogID: uuid.New(), CharacterID: character.CharacterID, RawText: "今日は勉強した", XPGained: 50},
		}

		charRepo.On("FindByUserID", ctx, db, userID).Return(character, nil).Once()
		logRepo.On("FindByCharacter", ctx, db, character.CharacterID, 30).Return(logs, nil).Once()

		svc := NewCharacterService(db, charRepo, logRepo, 30)
		got, err := svc.ListLogs(ctx, userID)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		charRepo.AssertExpectations(t)
		logRepo.AssertExpectations(t)
	})

	t.Run("異常系: キャラクターが存在しない", func(t *testing.T) {
		charRepo := new(mocks.CharacterRepository)
		logRepo := new(mocks.DailyLogRepository)

		charRepo.On("FindByUserID", ctx, db, userID).Return(nil, model.ErrNotFound).Once()

		svc := NewCharacterService(db, charRepo, logRepo, 30)
		got, err := svc.ListLogs(ctx, userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, got)
	})
}
