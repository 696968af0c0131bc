// internal/model/daily_log.go
package model

import (
	"time"

	"life_as_game/internal/game"

	"github.com/google/uuid"
)

// DailyLog は分析済みセッション1回分の不変レコードです。
// 追記専用で、更新・削除の経路は存在しない。同じ日付の複数レコードも許容する。
type DailyLog struct {
	LogID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"log_id"`
	CharacterID uuid.UUID `gorm:"type:uuid;not null;index" json:"character_id"`
	LogDate     time.Time `gorm:"type:date;not null;index" json:"log_date"`
	RawText     string    `gorm:"not null" json:"raw_text"` // 監査・再集計用に原文のまま保存
	FocusDelta  int       `gorm:"not null" json:"focus_delta"`
	HealthDelta int       `gorm:"not null" json:"health_delta"`
	MentalDelta int       `gorm:"not null" json:"mental_delta"`
	GrowthDelta int       `gorm:"not null" json:"growth_delta"`
	XPGained    int       `gorm:"not null" json:"xp_gained"`
	Comment     string    `gorm:"not null" json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}

// Delta は1セッション分の増分を値型として取り出します
func (l *DailyLog) Delta() game.Stats {
	return game.Stats{
		Focus:  l.FocusDelta,
		Health: l.HealthDelta,
		Mental: l.MentalDelta,
		Growth: l.GrowthDelta,
	}
}
