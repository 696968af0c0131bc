// internal/handlers/roster_handler.go
package handlers

import (
	"errors"
	"net/http"

	"life_as_game/internal/middleware"
	"life_as_game/internal/model"
	"life_as_game/internal/service"
	"life_as_game/internal/webutil"
)

type RosterHandler struct {
	service service.RosterService
}

func NewRosterHandler(s service.RosterService) *RosterHandler {
	return &RosterHandler{service: s}
}

// GetRoster はランキング参加者の一覧を返します
func (h *RosterHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("user_id", userID.String())

	roster, err := h.service.GetRoster(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotEligible) || errors.Is(err, model.ErrNotFound) {
			logger.Info("Roster not available for user", "error", err)
		} else {
			logger.Error("Error getting roster from service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Roster retrieved successfully", "total_eligible", roster.TotalEligible)
	webutil.RespondWithJSON(w, http.StatusOK, roster, logger)
}
