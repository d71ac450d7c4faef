package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"arena/config"
	"arena/internal/domain"
	"arena/internal/repository"
	"arena/internal/service"

	"github.com/gin-gonic/gin"
)

// PayoutCallback is the webhook payload from the payout provider.
type PayoutCallback struct {
	OrderID           string `json:"order_id"`
	MerchantOrderID   string `json:"merchant_order_id"`
	Status            string `json:"status"`
	StatusDescription string `json:"status_description"`
	ProviderRef       string `json:"transaction_uuid"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
}

type WithdrawalWebhookHandler struct {
	cfg            *config.Config
	withdrawalRepo *repository.WithdrawalRepository
	ledger         *service.LedgerService
	notifSvc       *service.NotificationService
}

func NewWithdrawalWebhookHandler(
	cfg *config.Config,
	withdrawalRepo *repository.WithdrawalRepository,
	ledger *service.LedgerService,
	notifSvc *service.NotificationService,
) *WithdrawalWebhookHandler {
	return &WithdrawalWebhookHandler{
		cfg:            cfg,
		withdrawalRepo: withdrawalRepo,
		ledger:         ledger,
		notifSvc:       notifSvc,
	}
}

// Handle processes the payout callback. On COMPLETED: mark the withdrawal
// done. On failure: refund the debit. Unknown or already-settled orders are
// acknowledged without action so the provider stops retrying.
func (h *WithdrawalWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[Withdrawal callback] ReadBody error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if h.cfg.Payout.WebhookSecret != "" {
		if !h.verifySignature(body, c.GetHeader("X-Webhook-Signature")) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}
	var payload PayoutCallback
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[Withdrawal callback] json unmarshal error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	orderID := payload.MerchantOrderID
	if orderID == "" {
		orderID = payload.OrderID
	}
	if orderID == "" {
		log.Printf("[Withdrawal callback] no order_id in payload")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	w, err := h.withdrawalRepo.GetByOrderID(orderID)
	if err != nil || w == nil {
		log.Printf("[Withdrawal callback] withdrawal not found for order_id=%s", orderID)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	if w.Status != domain.TxStatusPending {
		log.Printf("[Withdrawal callback] withdrawal %d already %s for order_id=%s", w.ID, w.Status, orderID)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	if payload.Status == "COMPLETED" {
		now := time.Now()
		w.Status = domain.TxStatusCompleted
		w.CompletedAt = &now
		w.ProviderRef = payload.ProviderRef
		if err := h.withdrawalRepo.Update(w); err != nil {
			log.Printf("[Withdrawal callback] update failed: %v", err)
		}
		if h.notifSvc != nil {
			_ = h.notifSvc.Notify(w.UserID, domain.NotifWallet, "Withdrawal completed",
				"Your payout has been processed", map[string]interface{}{"order_id": orderID})
		}
		log.Printf("[Withdrawal callback] withdrawal %d COMPLETED for order_id=%s", w.ID, orderID)
	} else {
		w.Status = domain.TxStatusFailed
		w.ProviderRef = payload.ProviderRef
		if err := h.withdrawalRepo.Update(w); err != nil {
			log.Printf("[Withdrawal callback] update failed: %v", err)
		}
		if _, err := h.ledger.CreateTransaction(w.UserID, domain.TxRefund, w.AmountCents, orderID, "withdrawal failed: "+payload.StatusDescription); err != nil {
			log.Printf("[Withdrawal callback] refund failed user=%d order_id=%s: %v", w.UserID, orderID, err)
		}
		if h.notifSvc != nil {
			_ = h.notifSvc.Notify(w.UserID, domain.NotifWallet, "Withdrawal failed",
				"The amount was returned to your wallet", map[string]interface{}{"order_id": orderID})
		}
		log.Printf("[Withdrawal callback] withdrawal %d FAILED, refunded %d cents to user %d", w.ID, w.AmountCents, w.UserID)
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *WithdrawalWebhookHandler) verifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.cfg.Payout.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
