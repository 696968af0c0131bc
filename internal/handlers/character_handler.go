// internal/handlers/character_handler.go
package handlers

import (
	"errors"
	"net/http"

	"life_as_game/internal/middleware"
	"life_as_game/internal/model"
	"life_as_game/internal/service"
	"life_as_game/internal/webutil"
)

type CharacterHandler struct {
	service service.CharacterService
}

func NewCharacterHandler(s service.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: s}
}

// CreateCharacter は認証済みユーザーのキャラクターを作成します。1ユーザー1体まで。
func (h *CharacterHandler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("user_id", userID.String())

	var req model.CreateCharacterRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	character, err := h.service.CreateCharacter(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating character in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Character created successfully", "character_id", character.CharacterID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, character, logger)
}

// GetMyCharacter は認証済みユーザー自身のキャラクターを返します
func (h *CharacterHandler) GetMyCharacter(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("user_id", userID.String())

	character, err := h.service.GetCharacterByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Character not found for user")
		} else {
			logger.Error("Error getting character from service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, character, logger)
}

// ListMyLogs は認証済みユーザーのプレイログ一覧を新しい順に返します
func (h *CharacterHandler) ListMyLogs(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("user_id", userID.String())

	logs, err := h.service.ListLogs(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing logs in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if logs == nil {
		logs = []*model.DailyLog{}
	}
	logger.Info("Logs listed successfully", "count", len(logs))
	webutil.RespondWithJSON(w, http.StatusOK, logs, logger)
}
