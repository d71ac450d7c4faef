package models

import (
	"time"

	"gorm.io/gorm"
)

// Match is one team's entry in a tournament, created on join. Result fields
// are filled by the submitting player and confirmed by an admin.
type Match struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	TournamentID uint           `gorm:"not null;index" json:"tournament_id"`
	OwnerID      uint           `gorm:"not null;index" json:"owner_id"` // user who joined
	Game         string         `gorm:"size:10" json:"game"`
	Mode         string         `gorm:"size:10" json:"mode"`
	Map          string         `gorm:"size:64" json:"map"`
	ScheduledAt  time.Time      `gorm:"index" json:"scheduled_at"`
	Status       string         `gorm:"size:20;not null;default:'PENDING';index" json:"status"`

	// Room details, nil until an admin assigns them.
	RoomID        *string    `gorm:"size:64" json:"-"`
	RoomPassword  *string    `gorm:"size:64" json:"-"`
	RoomVisibleAt *time.Time `json:"room_visible_at,omitempty"`

	// Result
	Position        int    `gorm:"default:0" json:"position"`
	Kills           int    `gorm:"default:0" json:"kills"`
	ScreenshotURL   string `gorm:"size:512" json:"screenshot_url,omitempty"`
	ResultSubmitted bool   `gorm:"default:false" json:"result_submitted"`
	ResultApproved  bool   `gorm:"default:false" json:"result_approved"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Tournament Tournament    `gorm:"foreignKey:TournamentID" json:"-"`
	Members    []MatchMember `gorm:"foreignKey:MatchID" json:"members,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// MatchMember is the settled team-member shape: always a user reference plus
// a role, never a bare ID or loose object.
type MatchMember struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MatchID  uint   `gorm:"not null;index" json:"match_id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	Username string `gorm:"size:64" json:"username"`
	Role     string `gorm:"size:20;default:'MEMBER'" json:"role"` // LEADER | MEMBER

	CreatedAt time.Time `json:"created_at"`
}

func (MatchMember) TableName() string {
	return "match_members"
}

// RoomVisible reports whether room details may be shown at t. Details stay
// hidden until the admin has assigned them and the reveal time has passed.
func (m *Match) RoomVisible(t time.Time) bool {
	if m.RoomID == nil || m.RoomVisibleAt == nil {
		return false
	}
	return !t.Before(*m.RoomVisibleAt)
}

// RoomView returns the serializable room block for API responses, with
// credentials withheld until RoomVisible.
func (m *Match) RoomView(t time.Time) map[string]interface{} {
	if m.RoomID == nil {
		return map[string]interface{}{"assigned": false}
	}
	view := map[string]interface{}{
		"assigned":   true,
		"visible_at": m.RoomVisibleAt,
	}
	if m.RoomVisible(t) {
		view["room_id"] = *m.RoomID
		view["room_password"] = *m.RoomPassword
	}
	return view
}
