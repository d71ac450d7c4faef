package repository

import (
	"arena/internal/domain"
	"arena/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TournamentRepository struct {
	db *gorm.DB
}

func NewTournamentRepository(db *gorm.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) Create(t *models.Tournament) error {
	return r.db.Create(t).Error
}

func (r *TournamentRepository) GetByID(id uint) (*models.Tournament, error) {
	var t models.Tournament
	err := r.db.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByIDForUpdate locks the tournament row for the duration of tx. Used by
// the join flow so the slot check and counter increment cannot interleave.
func (r *TournamentRepository) GetByIDForUpdate(tx *gorm.DB, id uint) (*models.Tournament, error) {
	var t models.Tournament
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TournamentRepository) List(game, status string, limit, offset int) ([]models.Tournament, error) {
	q := r.db.Order("start_time ASC")
	if game != "" {
		q = q.Where("game = ?", game)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.Tournament
	err := q.Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *TournamentRepository) Update(t *models.Tournament) error {
	return r.db.Save(t).Error
}

func (r *TournamentRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Tournament{}).Where("id = ?", id).Update("status", status).Error
}

func (r *TournamentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Tournament{}, id).Error
}

// IncrementRegisteredWithTx bumps the registered counter inside tx. The caller
// holds the row lock; each join call counts once.
func (r *TournamentRepository) IncrementRegisteredWithTx(tx *gorm.DB, id uint) error {
	return tx.Model(&models.Tournament{}).Where("id = ?", id).
		Update("registered_players", gorm.Expr("registered_players + 1")).Error
}

// HasJoined reports whether the user already owns or belongs to a match in
// the tournament.
func (r *TournamentRepository) HasJoined(tx *gorm.DB, tournamentID, userID uint) (bool, error) {
	var count int64
	err := tx.Model(&models.Match{}).
		Joins("LEFT JOIN match_members ON match_members.match_id = matches.id").
		Where("matches.tournament_id = ? AND (matches.owner_id = ? OR match_members.user_id = ?)", tournamentID, userID, userID).
		Count(&count).Error
	return count > 0, err
}

// JoinedUserIDs returns owner IDs of every match in the tournament, used for
// refunds when an upcoming tournament is cancelled.
func (r *TournamentRepository) JoinedUserIDs(id uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Match{}).Where("tournament_id = ?", id).Pluck("owner_id", &ids).Error
	return ids, err
}

// MarkLiveDue flips UPCOMING tournaments whose start time has passed to LIVE.
func (r *TournamentRepository) MarkLiveDue() (int64, error) {
	res := r.db.Model(&models.Tournament{}).
		Where("status = ? AND start_time <= NOW()", domain.TournamentUpcoming).
		Update("status", domain.TournamentLive)
	return res.RowsAffected, res.Error
}
