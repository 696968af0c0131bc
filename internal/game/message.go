// internal/game/message.go
package game

import "fmt"

// LevelMessage はレベル到達時にユーザーへ表示するタイトルとメッセージです。
type LevelMessage struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsSpecial bool   `json:"is_special"`
}

// レベルごとの定義済みメッセージ（10以降はフォールバック）
var levelMessages = map[int]LevelMessage{
	1:  {Title: "Lv.1 · プレイ開始", Message: "最初のキャラクターが作成されました。", IsSpecial: false},
	2:  {Title: "🎉 レベルアップ! Lv.2 到達", Message: "一日を「意識的に」プレイし始めています。", IsSpecial: true},
	3:  {Title: "🎉 Lv.3 達成", Message: "自分の一日を客観的に見始めています。", IsSpecial: false},
	4:  {Title: "🎉 Lv.4 到達", Message: "プレイが習慣になりました。", IsSpecial: false},
	5:  {Title: "🎉 Lv.5 達成", Message: "このゲームのルールを理解しました。", IsSpecial: true},
	6:  {Title: "🎉 Lv.6 到達", Message: "プレイに「調整」が入り始めました。", IsSpecial: false},
	7:  {Title: "🎉 Lv.7 達成", Message: "あなたらしいプレイスタイルが見えてきました。", IsSpecial: false},
	8:  {Title: "🎉 Lv.8 到達", Message: "継続が一番強いスキルになりました。", IsSpecial: false},
	9:  {Title: "🎉 Lv.9 達成", Message: "すでに十分うまくプレイできています。", IsSpecial: false},
	10: {Title: "👑 Lv.10 到達", Message: "あなたはこのゲームのベテランです。", IsSpecial: true},
}

// MessageForLevel は指定レベルのメッセージを返します。未定義のレベルは汎用文言。
func MessageForLevel(level int) LevelMessage {
	if msg, ok := levelMessages[level]; ok {
		return msg
	}
	return LevelMessage{
		Title:     fmt.Sprintf("🎉 Lv.%d 達成", level),
		Message:   "プレイを続けています。",
		IsSpecial: false,
	}
}
