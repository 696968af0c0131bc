// internal/game/level.go
package game

import "math"

// レベルカーブの定数
// requiredXP(level) = floor(baseXP * growthRate^(level-1))
const (
	baseXP     = 500
	growthRate = 1.5
)

// RequiredXP は level から level+1 に上がるために必要なXPを返します。
// レベルごとに50%ずつ増える等比カーブ（切り捨てのみここで発生）。
func RequiredXP(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(baseXP * math.Pow(growthRate, float64(level-1))))
}

// LevelForXP は累積XPから現在のレベルを計算します。
// レベル1から順に必要XPを引いていき、次のレベル分が残高に収まらなくなったら終了。
func LevelForXP(totalXP int) int {
	level := 1
	accumulated := 0
	for {
		required := RequiredXP(level)
		if accumulated+required > totalXP {
			break
		}
		accumulated += required
		level++
	}
	return level
}

// XPIntoLevel は現在のレベル内で消費済みのXPを返します。
// 常に [0, RequiredXP(level)) の範囲に収まります。
func XPIntoLevel(totalXP, level int) int {
	accumulated := 0
	for l := 1; l < level; l++ {
		accumulated += RequiredXP(l)
	}
	return totalXP - accumulated
}

// XPToNextLevel は次のレベルアップまでに必要な残りXPを返します。
func XPToNextLevel(totalXP, level int) int {
	return RequiredXP(level) - XPIntoLevel(totalXP, level)
}

// LevelUp は1回の更新をまたいだレベルアップ判定の結果です。
// 1回の大きなXP獲得で複数レベル跨ぐこともある（両端のレベルのみ報告）。
type LevelUp struct {
	Occurred      bool `json:"occurred"`
	PreviousLevel int  `json:"previous_level"`
	NewLevel      int  `json:"new_level"`
}

// DetectLevelUp は更新前後の累積XPを比較してレベルアップを判定します。
func DetectLevelUp(oldXP, newXP int) LevelUp {
	prev := LevelForXP(oldXP)
	next := LevelForXP(newXP)
	return LevelUp{
		Occurred:      next > prev,
		PreviousLevel: prev,
		NewLevel:      next,
	}
}
