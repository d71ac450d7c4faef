package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"arena/config"
	"arena/internal/domain"
	"arena/internal/middleware"
	"arena/internal/repository"
	"arena/internal/service"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	cfg      *config.Config
	ledger   *service.LedgerService
	txRepo   *repository.TransactionRepository
	notifSvc *service.NotificationService
}

func NewWalletHandler(cfg *config.Config, ledger *service.LedgerService, txRepo *repository.TransactionRepository, notifSvc *service.NotificationService) *WalletHandler {
	return &WalletHandler{cfg: cfg, ledger: ledger, txRepo: txRepo, notifSvc: notifSvc}
}

// GetBalance returns the current user's wallet balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID := middleware.GetUserID(c)
	balance, err := h.ledger.Balance(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance_cents": balance})
}

// GetTransactions returns the current user's wallet history, newest first.
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pagination(c, 50)
	list, err := h.txRepo.ListByUserID(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": list})
}

type CreateTransactionRequest struct {
	UserID      uint   `json:"user_id"`
	Type        string `json:"type" binding:"required,oneof=DEPOSIT WITHDRAWAL PRIZE ENTRY_FEE REFUND"`
	AmountCents int64  `json:"amount_cents" binding:"required,min=1"`
	Details     string `json:"details"`
}

// CreateTransaction applies a typed wallet transaction. Players may only move
// their own wallet; admins may target any user. The balance check and update
// are atomic, so an over-balance debit is rejected without touching the store.
func (h *WalletHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middleware.GetUserID(c)
	role, _ := c.Get("role")
	if roleStr, _ := role.(string); roleStr == domain.RoleAdmin && req.UserID != 0 {
		userID = req.UserID
	}
	if req.Type == domain.TxDeposit && req.AmountCents < h.cfg.Wallet.MinDepositCents {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"minimum deposit is %d cents", h.cfg.Wallet.MinDepositCents)})
		return
	}

	tx, err := h.ledger.CreateTransaction(userID, req.Type, req.AmountCents, "", req.Details)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case service.ErrInsufficientFunds:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient balance"})
		case service.ErrInvalidAmount, service.ErrInvalidTxType:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[Wallet] transaction failed user=%d type=%s: %v", userID, req.Type, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "transaction failed"})
		}
		return
	}

	if h.notifSvc != nil {
		_ = h.notifSvc.Notify(userID, domain.NotifWallet, "Wallet updated",
			req.Type+" applied to your wallet", map[string]interface{}{
				"transaction_id": tx.ID,
				"balance_cents":  tx.BalanceAfter,
			})
	}
	c.JSON(http.StatusCreated, gin.H{
		"transaction":        tx,
		"user_balance_cents": tx.BalanceAfter,
	})
}

func pagination(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
