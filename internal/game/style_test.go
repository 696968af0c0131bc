// internal/game/style_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayStyleFor(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  string
	}{
		{
			name:  "活動量ゼロは分類不能",
			stats: Stats{},
			want:  StyleEarlyStage,
		},
		{
			name:  "活動量10未満は分類不能",
			stats: Stats{Focus: 2, Health: 3, Mental: 2, Growth: 2},
			want:  StyleEarlyStage,
		},
		{
			name:  "開きが小さく活動量が多ければバランス型",
			stats: Stats{Focus: 15, Health: 14, Mental: 13, Growth: 16},
			want:  StyleBalanced,
		},
		{
			name:  "growthが突出していれば成長型",
			stats: Stats{Focus: 5, Health: 3, Mental: 2, Growth: 40},
			want:  StyleGrowth,
		},
		{
			name:  "mentalが最大ならメンタル型",
			stats: Stats{Focus: 5, Health: 3, Mental: 30, Growth: 2},
			want:  StyleMental,
		},
		{
			name:  "focusが最大なら集中型",
			stats: Stats{Focus: 30, Health: 3, Mental: 5, Growth: 2},
			want:  StyleFocus,
		},
		{
			name:  "healthが最大なら健康型",
			stats: Stats{Focus: 3, Health: 30, Mental: 5, Growth: 2},
			want:  StyleHealth,
		},
		{
			name:  "負方向の大きさも絶対値で判定する",
			stats: Stats{Focus: 2, Health: -30, Mental: 5, Growth: 2},
			want:  StyleHealth,
		},
		{
			name:  "同率ならgrowthが優先される",
			stats: Stats{Focus: 25, Health: 1, Mental: 1, Growth: 25},
			want:  StyleGrowth,
		},
		{
			name:  "growth以外の同率ならmentalが優先される",
			stats: Stats{Focus: 25, Health: 25, Mental: 25, Growth: 1},
			want:  StyleMental,
		},
		{
			name:  "活動量が10以上20以下かつ開き小はバランス型にならない",
			stats: Stats{Focus: 4, Health: 4, Mental: 4, Growth: 5},
			want:  StyleGrowth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlayStyleFor(tt.stats))
		})
	}
}

func TestStatsAdd(t *testing.T) {
	base := Stats{Focus: 10, Health: -2, Mental: 0, Growth: 5}
	delta := Stats{Focus: -3, Health: 3, Mental: 1, Growth: 0}

	got := base.Add(delta)
	assert.Equal(t, Stats{Focus: 7, Health: 1, Mental: 1, Growth: 5}, got)

	// 元の値は変更されない
	assert.Equal(t, Stats{Focus: 10, Health: -2, Mental: 0, Growth: 5}, base)
}

func TestStatsTotalActivity(t *testing.T) {
	assert.Equal(t, 0, Stats{}.TotalActivity())
	assert.Equal(t, 10, Stats{Focus: -3, Health: 3, Mental: -2, Growth: 2}.TotalActivity())
}

func TestRankTier(t *testing.T) {
	tests := []struct {
		name         string
		totalPlayers int
		higherRanked int
		want         string
	}{
		{name: "1人ではランキング不成立", totalPlayers: 1, higherRanked: 0, want: TierActive},
		{name: "0人でも不成立", totalPlayers: 0, higherRanked: 0, want: TierActive},
		{name: "100人中5位は上位10%", totalPlayers: 100, higherRanked: 5, want: TierTop10},
		{name: "ちょうど10%は上位10%", totalPlayers: 100, higherRanked: 10, want: TierTop10},
		{name: "100人中25位は上位30%", totalPlayers: 100, higherRanked: 25, want: TierTop30},
		{name: "ちょうど30%は上位30%", totalPlayers: 100, higherRanked: 30, want: TierTop30},
		{name: "100人中50位はそれ以外", totalPlayers: 100, higherRanked: 50, want: TierActive},
		{name: "2人で首位は上位10%", totalPlayers: 2, higherRanked: 0, want: TierTop10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RankTier(tt.totalPlayers, tt.higherRanked))
		})
	}
}
