// internal/model/analysis.go
package model

import "life_as_game/internal/game"

// AnalyzeRequest はジャーナル分析APIのリクエストボディ
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required,min=1,max=4000"`
}

// AnalyzerResponse は外部アナライザが返すJSONをそのまま受ける中間DTOです。
// フィールド欠落を検出するため全てポインタ型にし、契約範囲はvalidateタグで表す。
// 範囲外・欠落・型不一致はすべて ErrAnalysisFormat として扱い、補正はしない。
type AnalyzerResponse struct {
	Stats   *AnalyzerStats `json:"stats" validate:"required"`
	XP      *int           `json:"xp" validate:"required,min=0,max=200"`
	Comment *string        `json:"comment" validate:"required,min=1"`
}

// AnalyzerStats は1セッション分のスタット増分（各 [-3, +3]）
type AnalyzerStats struct {
	Focus  *int `json:"focus" validate:"required,min=-3,max=3"`
	Health *int `json:"health" validate:"required,min=-3,max=3"`
	Mental *int `json:"mental" validate:"required,min=-3,max=3"`
	Growth *int `json:"growth" validate:"required,min=-3,max=3"`
}

// SessionResult は検証済みのアナライザ出力（コアが消費する形）です
type SessionResult struct {
	Delta   game.Stats `json:"stats"`
	XP      int        `json:"xp"`
	Comment string     `json:"comment"`
}

// ToSessionResult は検証済みのAnalyzerResponseを値型に変換します。
// 呼び出し前にvalidatorでの検証が済んでいることが前提。
func (r *AnalyzerResponse) ToSessionResult() *SessionResult {
	return &SessionResult{
		Delta: game.Stats{
			Focus:  *r.Stats.Focus,
			Health: *r.Stats.Health,
			Mental: *r.Stats.Mental,
			Growth: *r.Stats.Growth,
		},
		XP:      *r.XP,
		Comment: *r.Comment,
	}
}

// SessionOutcome はセッション適用APIのレスポンスDTO
type SessionOutcome struct {
	Result    *SessionResult     `json:"result"`
	Character *CharacterResponse `json:"character"`
	LevelUp   game.LevelUp       `json:"level_up"`
	// レベルアップ発生時のみ設定される
	LevelMessage *game.LevelMessage `json:"level_message,omitempty"`
}
