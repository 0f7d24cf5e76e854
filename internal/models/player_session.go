package models

import (
	"time"

	"gorm.io/datatypes"
)

// PlayerSession persists one listener's player state between restarts
type PlayerSession struct {
	ID                  string         `json:"id" gorm:"primaryKey;size:64"`
	EpisodeList         datatypes.JSON `json:"episode_list"`
	CurrentEpisodeIndex int            `json:"current_episode_index" gorm:"not null;default:0"`
	IsPlaying           bool           `json:"is_playing" gorm:"not null;default:false"`
	IsPlayingOne        bool           `json:"is_playing_one" gorm:"not null;default:false"`
	IsLooping           bool           `json:"is_looping" gorm:"not null;default:false"`
	IsShuffling         bool           `json:"is_shuffling" gorm:"not null;default:false"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" gorm:"index"`
}

// TableName pins the table name used by the migrate command
func (PlayerSession) TableName() string {
	return "player_sessions"
}

// All returns every model managed by AutoMigrate
func All() []any {
	return []any{&PlayerSession{}}
}
