package repository

import (
	"arena/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateWithTx inserts a wallet transaction inside an open DB transaction so
// the history row and the balance update commit together.
func (r *TransactionRepository) CreateWithTx(tx *gorm.DB, t *models.WalletTransaction) error {
	return tx.Create(t).Error
}

func (r *TransactionRepository) GetByID(id uint) (*models.WalletTransaction, error) {
	var t models.WalletTransaction
	err := r.db.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) ListByUserID(userID uint, limit, offset int) ([]models.WalletTransaction, error) {
	var list []models.WalletTransaction
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *TransactionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.WalletTransaction{}).Where("id = ?", id).Update("status", status).Error
}
