package service

import (
	"errors"

	"arena/internal/domain"
	"arena/internal/models"
	"arena/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidTxType     = errors.New("invalid transaction type")
)

// LedgerService applies typed wallet transactions. The balance check and the
// mutation happen under one row lock, and the history row commits in the same
// DB transaction as the balance update, so a debit can never race another
// transaction for the same user into a negative balance.
type LedgerService struct {
	db     *gorm.DB
	txRepo *repository.TransactionRepository
}

func NewLedgerService(db *gorm.DB, txRepo *repository.TransactionRepository) *LedgerService {
	return &LedgerService{db: db, txRepo: txRepo}
}

// CreateTransaction records a transaction for the user and applies the signed
// delta to their balance. Returns the created entry with BalanceAfter set.
func (s *LedgerService) CreateTransaction(userID uint, txType string, amountCents int64, reference, details string) (*models.WalletTransaction, error) {
	var entry *models.WalletTransaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		entry, err = s.apply(tx, userID, txType, amountCents, reference, details)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateTransactionWithTx applies a transaction inside an already-open DB
// transaction. The tournament join flow uses this so the entry-fee debit and
// the slot increment commit or roll back together.
func (s *LedgerService) CreateTransactionWithTx(tx *gorm.DB, userID uint, txType string, amountCents int64, reference, details string) (*models.WalletTransaction, error) {
	return s.apply(tx, userID, txType, amountCents, reference, details)
}

func (s *LedgerService) apply(tx *gorm.DB, userID uint, txType string, amountCents int64, reference, details string) (*models.WalletTransaction, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	sign := domain.TxSign(txType)
	if sign == 0 {
		return nil, ErrInvalidTxType
	}

	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	newBalance := user.WalletBalanceCents + sign*amountCents
	if newBalance < 0 {
		return nil, ErrInsufficientFunds
	}

	if err := tx.Model(&models.User{}).Where("id = ?", userID).
		Update("wallet_balance_cents", newBalance).Error; err != nil {
		return nil, err
	}

	entry := &models.WalletTransaction{
		UserID:       userID,
		Type:         txType,
		AmountCents:  amountCents,
		BalanceAfter: newBalance,
		Status:       domain.TxStatusCompleted,
		Reference:    reference,
		Details:      details,
	}
	if err := s.txRepo.CreateWithTx(tx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Balance returns the user's current wallet balance in cents.
func (s *LedgerService) Balance(userID uint) (int64, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.WalletBalanceCents, nil
}
