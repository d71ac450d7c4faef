package models

import (
	"time"

	"gorm.io/gorm"
)

// SquadMember is a saved teammate on a player's roster, reused when joining
// duo/squad tournaments.
type SquadMember struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	OwnerID    uint           `gorm:"not null;index" json:"owner_id"`
	Name       string         `gorm:"size:64;not null" json:"name"`
	InGameName string         `gorm:"size:64;not null" json:"in_game_name"`
	GameID     string         `gorm:"size:64" json:"game_id"` // in-game player ID
	Role       string         `gorm:"size:20;default:'MEMBER'" json:"role"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (SquadMember) TableName() string {
	return "squad_members"
}
