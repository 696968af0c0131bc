// internal/handlers/journal_handler.go
package handlers

import (
	"net/http"

	"life_as_game/internal/middleware"
	"life_as_game/internal/model"
	"life_as_game/internal/service"
	"life_as_game/internal/webutil"
)

type JournalHandler struct {
	analyzer service.Analyzer
	charSvc  service.CharacterService
}

func NewJournalHandler(analyzer service.Analyzer, charSvc service.CharacterService) *JournalHandler {
	return &JournalHandler{
		analyzer: analyzer,
		charSvc:  charSvc,
	}
}

// SubmitJournal は1日の記録を分析し、結果をキャラクターに適用します
func (h *JournalHandler) SubmitJournal(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("user_id", userID.String())

	var req model.AnalyzeRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		logger.Error("Journal analysis failed", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	outcome, err := h.charSvc.ApplySession(r.Context(), userID, req.Text, result)
	if err != nil {
		logger.Error("Error applying session in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Journal applied successfully",
		"xp_gained", result.XP,
		"level_up", outcome.LevelUp.Occurred,
	)
	webutil.RespondWithJSON(w, http.StatusOK, outcome, logger)
}

// AnalyzeTrial は未登録ユーザー向けのお試し分析です。
// 分析結果のみを返し、永続化は一切行わない。
func (h *JournalHandler) AnalyzeTrial(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.AnalyzeRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		logger.Error("Trial analysis failed", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Trial analysis succeeded", "xp", result.XP)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
