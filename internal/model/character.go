// internal/model/character.go
package model

import (
	"time"

	"life_as_game/internal/game"

	"github.com/google/uuid"
)

// Character はプレイヤー1人分の永続的な進行状態を表します。
// Level は常に game.LevelForXP(XP) と一致し、単独では更新されない。
// XP は単調非減少。スタットの累積値は負にもなり得る（クランプなし）。
type Character struct {
	CharacterID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"character_id"`
	UserID      *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"-"` // 匿名（お試し）キャラクターではnull
	Name        string     `gorm:"not null" json:"name"`
	Level       int        `gorm:"not null;default:1" json:"level"`
	XP          int        `gorm:"not null;default:0" json:"xp"`
	Focus       int        `gorm:"not null;default:0" json:"focus"`
	Health      int        `gorm:"not null;default:0" json:"health"`
	Mental      int        `gorm:"not null;default:0" json:"mental"`
	Growth      int        `gorm:"not null;default:0" json:"growth"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Character) TableName() string {
	return "characters"
}

// Stats は4つの累積スタットを値型として取り出します
func (c *Character) Stats() game.Stats {
	return game.Stats{
		Focus:  c.Focus,
		Health: c.Health,
		Mental: c.Mental,
		Growth: c.Growth,
	}
}

// キャラクター作成リクエストDTO
type CreateCharacterRequest struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
}

// CharacterResponse はレベル内の進捗とプレイスタイルを付加したレスポンスDTO
type CharacterResponse struct {
	Character
	XPIntoLevel   int    `json:"xp_into_level"`
	XPToNextLevel int    `json:"xp_to_next_level"`
	PlayStyle     string `json:"play_style"`
}

// NewCharacterResponse は派生値を計算してレスポンスを組み立てます
func NewCharacterResponse(c *Character) *CharacterResponse {
	return &CharacterResponse{
		Character:     *c,
		XPIntoLevel:   game.XPIntoLevel(c.XP, c.Level),
		XPToNextLevel: game.XPToNextLevel(c.XP, c.Level),
		PlayStyle:     game.PlayStyleFor(c.Stats()),
	}
}
