package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"arena/internal/database"
	"arena/internal/domain"
	"arena/internal/models"
	"arena/internal/repository"
	"arena/internal/service"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("ARENA_TEST_DSN")
	if dsn == "" {
		t.Skip("ARENA_TEST_DSN not set")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := time.Now().UnixNano()
	u := &models.User{
		Username:    fmt.Sprintf("player%d", n),
		Email:       fmt.Sprintf("player%d@example.com", n),
		CountryCode: "+91",
		PhoneNumber: fmt.Sprintf("9%09d", n%1000000000),
		Role:        domain.RolePlayer,
		Currency:    "INR",
		KYCStatus:   domain.KYCNotSubmitted,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func newLedger(db *gorm.DB) *service.LedgerService {
	return service.NewLedgerService(db, repository.NewTransactionRepository(db))
}

func TestLedgerDepositsAccumulate(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db)
	user := createUser(t, db)

	amounts := []int64{10000, 2500, 499}
	var sum int64
	for _, a := range amounts {
		entry, err := ledger.CreateTransaction(user.ID, domain.TxDeposit, a, "", "test deposit")
		if err != nil {
			t.Fatalf("deposit %d: %v", a, err)
		}
		sum += a
		if entry.BalanceAfter != sum {
			t.Fatalf("BalanceAfter = %d; want %d", entry.BalanceAfter, sum)
		}
	}

	balance, err := ledger.Balance(user.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != sum {
		t.Fatalf("balance = %d; want %d", balance, sum)
	}
}

func TestLedgerRejectsOverdraft(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db)
	user := createUser(t, db)

	if _, err := ledger.CreateTransaction(user.ID, domain.TxDeposit, 50000, "", ""); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	// 500.00 -> 250.00 -> 0.00, then the next debit must fail
	steps := []int64{25000, 25000}
	for _, a := range steps {
		if _, err := ledger.CreateTransaction(user.ID, domain.TxWithdrawal, a, "", ""); err != nil {
			t.Fatalf("withdraw %d: %v", a, err)
		}
	}
	if _, err := ledger.CreateTransaction(user.ID, domain.TxWithdrawal, 1, "", ""); err != service.ErrInsufficientFunds {
		t.Fatalf("overdraft err = %v; want ErrInsufficientFunds", err)
	}

	balance, err := ledger.Balance(user.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 0 {
		t.Fatalf("balance after overdraft attempt = %d; want 0", balance)
	}

	// the rejected debit must not leave a history row
	var count int64
	if err := db.Model(&models.WalletTransaction{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	if count != 3 {
		t.Fatalf("transaction rows = %d; want 3", count)
	}
}

func TestLedgerMissingUserLeavesNoRow(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db)

	const ghost = uint(999999999)
	if _, err := ledger.CreateTransaction(ghost, domain.TxDeposit, 1000, "", ""); err != service.ErrUserNotFound {
		t.Fatalf("err = %v; want ErrUserNotFound", err)
	}

	var count int64
	if err := db.Model(&models.WalletTransaction{}).Where("user_id = ?", ghost).Count(&count).Error; err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	if count != 0 {
		t.Fatalf("dangling transaction rows = %d; want 0", count)
	}
}

func TestLedgerRejectsBadInput(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db)
	user := createUser(t, db)

	if _, err := ledger.CreateTransaction(user.ID, domain.TxDeposit, 0, "", ""); err != service.ErrInvalidAmount {
		t.Fatalf("zero amount err = %v; want ErrInvalidAmount", err)
	}
	if _, err := ledger.CreateTransaction(user.ID, domain.TxDeposit, -500, "", ""); err != service.ErrInvalidAmount {
		t.Fatalf("negative amount err = %v; want ErrInvalidAmount", err)
	}
	if _, err := ledger.CreateTransaction(user.ID, "GIFT", 500, "", ""); err != service.ErrInvalidTxType {
		t.Fatalf("unknown type err = %v; want ErrInvalidTxType", err)
	}
}
