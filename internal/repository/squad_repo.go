package repository

import (
	"arena/internal/models"

	"gorm.io/gorm"
)

type SquadRepository struct {
	db *gorm.DB
}

func NewSquadRepository(db *gorm.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) Create(m *models.SquadMember) error {
	return r.db.Create(m).Error
}

func (r *SquadRepository) GetByID(id uint) (*models.SquadMember, error) {
	var m models.SquadMember
	err := r.db.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SquadRepository) ListByOwner(ownerID uint) ([]models.SquadMember, error) {
	var list []models.SquadMember
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *SquadRepository) Update(m *models.SquadMember) error {
	return r.db.Save(m).Error
}

func (r *SquadRepository) Delete(id, ownerID uint) error {
	return r.db.Where("owner_id = ?", ownerID).Delete(&models.SquadMember{}, id).Error
}
