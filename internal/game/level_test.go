// internal/game/level_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredXP(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{name: "レベル1は500", level: 1, want: 500},
		{name: "レベル2は750", level: 2, want: 750},
		{name: "レベル3は1125", level: 3, want: 1125},
		{name: "レベル4は切り捨てで1687", level: 4, want: 1687},
		{name: "レベル0は1として扱う", level: 0, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredXP(tt.level))
		})
	}
}

func TestRequiredXP_StrictlyIncreasing(t *testing.T) {
	// コストが単調増加でないとLevelForXPの打ち切り条件が壊れる
	for level := 1; level <= 30; level++ {
		require.Greater(t, RequiredXP(level+1), RequiredXP(level), "level %d", level)
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		name    string
		totalXP int
		want    int
	}{
		{name: "0XPはレベル1", totalXP: 0, want: 1},
		{name: "499XPはまだレベル1", totalXP: 499, want: 1},
		{name: "500XPでレベル2", totalXP: 500, want: 2},
		{name: "1249XPはまだレベル2", totalXP: 1249, want: 2},
		{name: "1250XPでレベル3", totalXP: 1250, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelForXP(tt.totalXP))
		})
	}
}

func TestLevelForXP_WithinLevelInvariants(t *testing.T) {
	// 代表的なXP値でレベルとレベル内XPの不変条件を確認する
	samples := []int{0, 1, 499, 500, 501, 1249, 1250, 4061, 4062, 10000, 123456}

	for _, xp := range samples {
		level := LevelForXP(xp)
		require.GreaterOrEqual(t, level, 1, "xp=%d", xp)

		into := XPIntoLevel(xp, level)
		assert.GreaterOrEqual(t, into, 0, "xp=%d", xp)
		assert.Less(t, into, RequiredXP(level), "xp=%d", xp)

		// レベルとレベル内XPから元の累積XPが厳密に復元できること
		reconstructed := into
		for l := 1; l < level; l++ {
			reconstructed += RequiredXP(l)
		}
		assert.Equal(t, xp, reconstructed, "xp=%d", xp)

		// 残りXP + 消費済みXP = そのレベルの必要XP
		assert.Equal(t, RequiredXP(level), XPIntoLevel(xp, level)+XPToNextLevel(xp, level), "xp=%d", xp)
	}
}

func TestDetectLevelUp(t *testing.T) {
	tests := []struct {
		name  string
		oldXP int
		newXP int
		want  LevelUp
	}{
		{
			name:  "400から600でレベル1→2",
			oldXP: 400,
			newXP: 600,
			want:  LevelUp{Occurred: true, PreviousLevel: 1, NewLevel: 2},
		},
		{
			name:  "境界をまたがなければ発生しない",
			oldXP: 100,
			newXP: 499,
			want:  LevelUp{Occurred: false, PreviousLevel: 1, NewLevel: 1},
		},
		{
			name:  "1回の大きな獲得で複数レベルをまたぐ",
			oldXP: 0,
			newXP: 1300,
			want:  LevelUp{Occurred: true, PreviousLevel: 1, NewLevel: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLevelUp(tt.oldXP, tt.newXP))
		})
	}
}

func TestDetectLevelUp_NoOpIsIdempotent(t *testing.T) {
	for _, xp := range []int{0, 499, 500, 1250, 99999} {
		got := DetectLevelUp(xp, xp)
		assert.False(t, got.Occurred, "xp=%d", xp)
		assert.Equal(t, got.PreviousLevel, got.NewLevel, "xp=%d", xp)
		assert.Equal(t, LevelForXP(xp), got.NewLevel, "xp=%d", xp)
	}
}

func TestMessageForLevel(t *testing.T) {
	assert.True(t, MessageForLevel(5).IsSpecial)
	assert.True(t, MessageForLevel(10).IsSpecial)
	assert.False(t, MessageForLevel(3).IsSpecial)

	// テーブル外のレベルは汎用メッセージ
	fallback := MessageForLevel(42)
	assert.Contains(t, fallback.Title, "Lv.42")
	assert.False(t, fallback.IsSpecial)
}
