package models

import (
	"time"

	"gorm.io/gorm"
)

type Tournament struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	Game              string         `gorm:"size:10;not null;index" json:"game"` // PUBG | BGMI
	Mode              string         `gorm:"size:10;not null" json:"mode"`       // SOLO | DUO | SQUAD
	Map               string         `gorm:"size:64" json:"map"`
	EntryFeeCents     int64          `gorm:"not null;default:0" json:"entry_fee_cents"`
	PrizePoolCents    int64          `gorm:"not null;default:0" json:"prize_pool_cents"`
	PerKillCents      int64          `gorm:"not null;default:0" json:"per_kill_cents"`
	StartTime         time.Time      `gorm:"not null;index" json:"start_time"`
	MaxPlayers        int            `gorm:"not null;default:100" json:"max_players"`
	RegisteredPlayers int            `gorm:"not null;default:0" json:"registered_players"`
	Status            string         `gorm:"size:20;not null;default:'UPCOMING';index" json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

// SlotsLeft is computed for list/detail responses, not stored.
func (t *Tournament) SlotsLeft() int {
	left := t.MaxPlayers - t.RegisteredPlayers
	if left < 0 {
		return 0
	}
	return left
}
