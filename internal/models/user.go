package models

import (
	"time"

	"arena/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Username           string         `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email              string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash       string         `gorm:"size:255" json:"-"`
	CountryCode        string         `gorm:"size:5;not null;default:'+91';index:idx_users_phone,unique" json:"country_code"`
	PhoneNumber        string         `gorm:"size:20;not null;index:idx_users_phone,unique" json:"phone_number"`
	Role               string         `gorm:"size:20;not null;index" json:"role"` // PLAYER | ADMIN
	WalletBalanceCents int64          `gorm:"not null;default:0" json:"wallet_balance_cents"`
	Currency           string         `gorm:"size:3;not null;default:'INR'" json:"currency"` // INR | NGN | USD
	KYCStatus          string         `gorm:"size:20;not null;default:'NOT_SUBMITTED';index" json:"kyc_status"`
	Game               string         `gorm:"size:10;default:'BGMI'" json:"game"` // PUBG | BGMI
	GameMode           string         `gorm:"size:10;default:'SQUAD'" json:"game_mode"`
	InGameName         string         `gorm:"size:64" json:"in_game_name"`
	AvatarURL          string         `gorm:"size:512" json:"avatar_url"`
	GoogleID           *string        `gorm:"uniqueIndex;size:255" json:"-"` // nil for password signups
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool       { return u.Role == domain.RoleAdmin }
func (u *User) KYCVerified() bool   { return u.KYCStatus == domain.KYCVerified }

// Phone returns the dialable composite of country code and number.
func (u *User) Phone() string { return u.CountryCode + u.PhoneNumber }
