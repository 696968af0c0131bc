// internal/game/style.go
package game

// Stats はキャラクターの4つの累積スタットです。
// 1セッションあたりの増分は [-3, +3] ですが、累積値は上限・下限なし。
type Stats struct {
	Focus  int `json:"focus"`
	Health int `json:"health"`
	Mental int `json:"mental"`
	Growth int `json:"growth"`
}

// Add は増分を要素ごとに加算した新しいStatsを返します。クランプはしない。
func (s Stats) Add(delta Stats) Stats {
	return Stats{
		Focus:  s.Focus + delta.Focus,
		Health: s.Health + delta.Health,
		Mental: s.Mental + delta.Mental,
		Growth: s.Growth + delta.Growth,
	}
}

// TotalActivity は各スタットの絶対値の合計（活動量の指標）を返します。
func (s Stats) TotalActivity() int {
	return abs(s.Focus) + abs(s.Health) + abs(s.Mental) + abs(s.Growth)
}

// プレイスタイルのラベル（評価を含まない中立的な表現）
const (
	StyleEarlyStage = "early-stage"
	StyleBalanced   = "balanced"
	StyleGrowth     = "growth-focused"
	StyleMental     = "mental-stability"
	StyleFocus      = "focus-driven"
	StyleHealth     = "health-oriented"
	StyleFreeform   = "freeform"
)

// PlayStyleFor はスタットの相対的な大きさからプレイスタイルを導出します。
// 同率の場合の優先順位は growth → mental → focus → health で固定。
func PlayStyleFor(s Stats) string {
	total := s.TotalActivity()

	// 活動量が少なすぎて分類できない
	if total < 10 {
		return StyleEarlyStage
	}

	// スタット間の開き（符号付きの最大-最小）が小さければバランス型
	spread := maxOf(s.Focus, s.Health, s.Mental, s.Growth) - minOf(s.Focus, s.Health, s.Mental, s.Growth)
	if spread < 20 && total > 20 {
		return StyleBalanced
	}

	maxMagnitude := maxOf(abs(s.Focus), abs(s.Health), abs(s.Mental), abs(s.Growth))
	switch {
	case abs(s.Growth) == maxMagnitude:
		return StyleGrowth
	case abs(s.Mental) == maxMagnitude:
		return StyleMental
	case abs(s.Focus) == maxMagnitude:
		return StyleFocus
	case abs(s.Health) == maxMagnitude:
		return StyleHealth
	}

	// ここには到達しないはずだが、分類不能時のフォールバック
	return StyleFreeform
}

// ランキング区間のラベル
const (
	TierTop10  = "top-10-percent"
	TierTop30  = "top-30-percent"
	TierActive = "active"
)

// RankTier は母集団内の順位からパーセンタイル区間を導出します。
// totalPlayers は対象（レベル5以上）の総数、higherRanked は自分よりXPが
// 真に大きいプレイヤー数。2人未満ではランキング自体が成立しない。
func RankTier(totalPlayers, higherRanked int) string {
	if totalPlayers < 2 {
		return TierActive
	}

	percentile := float64(higherRanked) / float64(totalPlayers) * 100

	switch {
	case percentile <= 10:
		return TierTop10
	case percentile <= 30:
		return TierTop30
	default:
		return TierActive
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func maxOf(first int, rest ...int) int {
	m := first
	for _, n := range rest {
		if n > m {
			m = n
		}
	}
	return m
}

func minOf(first int, rest ...int) int {
	m := first
	for _, n := range rest {
		if n < m {
			m = n
		}
	}
	return m
}
