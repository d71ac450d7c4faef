package repository

import (
	"arena/internal/models"

	"gorm.io/gorm"
)

type KYCRepository struct {
	db *gorm.DB
}

func NewKYCRepository(db *gorm.DB) *KYCRepository {
	return &KYCRepository{db: db}
}

func (r *KYCRepository) Create(d *models.KYCDocument) error {
	return r.db.Create(d).Error
}

func (r *KYCRepository) GetByID(id uint) (*models.KYCDocument, error) {
	var d models.KYCDocument
	err := r.db.First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// LatestByUserID returns the most recent submission for the user.
func (r *KYCRepository) LatestByUserID(userID uint) (*models.KYCDocument, error) {
	var d models.KYCDocument
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *KYCRepository) ListByStatus(status string, limit, offset int) ([]models.KYCDocument, error) {
	q := r.db.Order("created_at ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.KYCDocument
	err := q.Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *KYCRepository) Update(d *models.KYCDocument) error {
	return r.db.Save(d).Error
}
