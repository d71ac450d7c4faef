package handler

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"arena/config"
	"arena/internal/domain"
	"arena/internal/middleware"
	"arena/internal/models"
	"arena/internal/repository"
	"arena/internal/service"

	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	cfg            *config.Config
	ledger         *service.LedgerService
	withdrawalRepo *repository.WithdrawalRepository
	userRepo       *repository.UserRepository
}

func NewWithdrawalHandler(
	cfg *config.Config,
	ledger *service.LedgerService,
	withdrawalRepo *repository.WithdrawalRepository,
	userRepo *repository.UserRepository,
) *WithdrawalHandler {
	return &WithdrawalHandler{
		cfg:            cfg,
		ledger:         ledger,
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
	}
}

type CreateWithdrawalRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// Create initiates a payout to the player's phone-linked account. Requires
// verified KYC. The wallet is debited up front; the provider callback either
// confirms the payout or triggers a refund.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if !user.KYCVerified() {
		c.JSON(http.StatusForbidden, gin.H{"error": "KYC verification required before withdrawal"})
		return
	}
	var req CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AmountCents < h.cfg.Wallet.MinWithdrawalCents || req.AmountCents > h.cfg.Wallet.MaxWithdrawalCents {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"amount must be between %d and %d cents",
			h.cfg.Wallet.MinWithdrawalCents, h.cfg.Wallet.MaxWithdrawalCents)})
		return
	}
	phone := normalizePhone(user.CountryCode, req.PhoneNumber)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phone number"})
		return
	}

	orderID := fmt.Sprintf("wd-%s", uuid.New().String())
	tx, err := h.ledger.CreateTransaction(userID, domain.TxWithdrawal, req.AmountCents, orderID, "withdrawal to "+phone)
	if err != nil {
		switch err {
		case service.ErrInsufficientFunds:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient balance"})
		case service.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			log.Printf("[Withdrawal] debit failed user=%d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to debit wallet"})
		}
		return
	}

	w := &models.Withdrawal{
		UserID:        userID,
		OrderID:       orderID,
		AmountCents:   req.AmountCents,
		Currency:      user.Currency,
		PhoneNumber:   phone,
		TransactionID: tx.ID,
		Status:        domain.TxStatusPending,
	}
	if err := h.withdrawalRepo.Create(w); err != nil {
		// roll the debit back so the money is not stranded
		if _, rerr := h.ledger.CreateTransaction(userID, domain.TxRefund, req.AmountCents, orderID, "withdrawal record failed"); rerr != nil {
			log.Printf("[Withdrawal] refund after record failure also failed user=%d: %v", userID, rerr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record withdrawal"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":           w.ID,
		"order_id":     orderID,
		"amount_cents": req.AmountCents,
		"phone_number": phone,
		"status":       w.Status,
		"message":      "Withdrawal initiated. You will be notified once it is processed.",
	})
}

// List returns the user's withdrawals, newest first.
func (h *WithdrawalHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pagination(c, 50)
	list, err := h.withdrawalRepo.ListByUserID(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list withdrawals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": list})
}

// normalizePhone strips formatting and prefixes the country dial code so the
// payout provider always receives the full international number.
func normalizePhone(countryCode, s string) string {
	cc := regexp.MustCompile(`\D`).ReplaceAllString(countryCode, "")
	s = regexp.MustCompile(`\D`).ReplaceAllString(s, "")
	if cc == "" || s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "0")
	if !strings.HasPrefix(s, cc) {
		s = cc + s
	}
	if len(s) < 10 || len(s) > 15 {
		return ""
	}
	return s
}
