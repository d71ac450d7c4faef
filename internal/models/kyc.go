package models

import (
	"time"

	"gorm.io/gorm"
)

type KYCDocument struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	DocumentType   string         `gorm:"size:20;not null" json:"document_type"` // AADHAAR, PAN, PASSPORT, NATIONAL_ID
	DocumentNumber string         `gorm:"size:64;not null" json:"document_number"`
	FrontImageURL  string         `gorm:"size:512" json:"front_image_url"`
	BackImageURL   string         `gorm:"size:512" json:"back_image_url,omitempty"`
	Status         string         `gorm:"size:20;not null;default:'PENDING';index" json:"status"` // PENDING, VERIFIED, REJECTED
	ReviewNote     string         `gorm:"size:255" json:"review_note,omitempty"`
	ReviewedBy     *uint          `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time     `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (KYCDocument) TableName() string {
	return "kyc_documents"
}
