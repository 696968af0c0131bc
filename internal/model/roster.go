// internal/model/roster.go
package model

// RosterEntry はランキング画面の1行分です。
// 他プレイヤーの行では匿名化のため Name を空にし、レベル・スタイル・区間のみ返す。
type RosterEntry struct {
	Name      string `json:"name,omitempty"`
	Level     int    `json:"level"`
	PlayStyle string `json:"play_style"`
	RankTier  string `json:"rank_tier"`
	IsSelf    bool   `json:"is_self"`
}

// RosterResponse はランキングAPIのレスポンスDTO
type RosterResponse struct {
	Self          RosterEntry   `json:"self"`
	Others        []RosterEntry `json:"others"`
	TotalEligible int           `json:"total_eligible"` // レベル5以上の総数
}
