package repository

import (
	"arena/internal/models"

	"gorm.io/gorm"
)

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) CreateWithTx(tx *gorm.DB, m *models.Match) error {
	return tx.Create(m).Error
}

func (r *MatchRepository) GetByID(id uint) (*models.Match, error) {
	var m models.Match
	err := r.db.Preload("Members").First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MatchRepository) ListByTournament(tournamentID uint) ([]models.Match, error) {
	var list []models.Match
	err := r.db.Preload("Members").Where("tournament_id = ?", tournamentID).Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *MatchRepository) ListByUser(userID uint, limit, offset int) ([]models.Match, error) {
	var list []models.Match
	err := r.db.Preload("Members").
		Joins("LEFT JOIN match_members ON match_members.match_id = matches.id").
		Where("matches.owner_id = ? OR match_members.user_id = ?", userID, userID).
		Group("matches.id").
		Order("matches.created_at DESC").Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

func (r *MatchRepository) Update(m *models.Match) error {
	return r.db.Save(m).Error
}

// ListPendingResults returns matches with a submitted but unapproved result.
func (r *MatchRepository) ListPendingResults(limit, offset int) ([]models.Match, error) {
	var list []models.Match
	err := r.db.Preload("Members").
		Where("result_submitted = ? AND result_approved = ?", true, false).
		Order("updated_at ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
