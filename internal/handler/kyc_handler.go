package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"arena/internal/domain"
	"arena/internal/middleware"
	"arena/internal/models"
	"arena/internal/repository"
	"arena/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type KYCHandler struct {
	kycRepo  *repository.KYCRepository
	userRepo *repository.UserRepository
	notifSvc *service.NotificationService
}

func NewKYCHandler(kycRepo *repository.KYCRepository, userRepo *repository.UserRepository, notifSvc *service.NotificationService) *KYCHandler {
	return &KYCHandler{kycRepo: kycRepo, userRepo: userRepo, notifSvc: notifSvc}
}

type SubmitKYCRequest struct {
	DocumentType   string `json:"document_type" binding:"required,oneof=AADHAAR PAN PASSPORT NATIONAL_ID"`
	DocumentNumber string `json:"document_number" binding:"required,min=4,max=64"`
	FrontImageURL  string `json:"front_image_url" binding:"required,url"`
	BackImageURL   string `json:"back_image_url" binding:"omitempty,url"`
}

// Submit files a KYC document. Resubmission is allowed only after a rejection.
func (h *KYCHandler) Submit(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if user.KYCStatus == domain.KYCPending || user.KYCStatus == domain.KYCVerified {
		c.JSON(http.StatusConflict, gin.H{"error": "KYC already " + user.KYCStatus})
		return
	}
	var req SubmitKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc := &models.KYCDocument{
		UserID:         userID,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		FrontImageURL:  req.FrontImageURL,
		BackImageURL:   req.BackImageURL,
		Status:         domain.KYCPending,
	}
	if err := h.kycRepo.Create(doc); err != nil {
		log.Printf("[KYC] submit failed user=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit document"})
		return
	}
	if err := h.userRepo.UpdateKYCStatus(userID, domain.KYCPending); err != nil {
		log.Printf("[KYC] status update failed user=%d: %v", userID, err)
	}
	c.JSON(http.StatusCreated, gin.H{"document": doc})
}

// GetMine returns the user's latest submission and overall status.
func (h *KYCHandler) GetMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	doc, err := h.kycRepo.LatestByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"kyc_status": user.KYCStatus, "document": doc})
}

// List is admin-only, defaulting to the pending review queue.
func (h *KYCHandler) List(c *gin.Context) {
	limit, offset := pagination(c, 50)
	status := c.DefaultQuery("status", domain.KYCPending)
	list, err := h.kycRepo.ListByStatus(status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": list})
}

type ReviewKYCRequest struct {
	Status string `json:"status" binding:"required,oneof=VERIFIED REJECTED"`
	Note   string `json:"note"`
}

// Review is admin-only: verifies or rejects a pending document and updates
// the user's KYC status.
func (h *KYCHandler) Review(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	id := parseID(c)
	doc, err := h.kycRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load document"})
		return
	}
	if doc.Status != domain.KYCPending {
		c.JSON(http.StatusConflict, gin.H{"error": "document already reviewed"})
		return
	}
	var req ReviewKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now := time.Now()
	doc.Status = req.Status
	doc.ReviewNote = req.Note
	doc.ReviewedBy = &adminID
	doc.ReviewedAt = &now
	if err := h.kycRepo.Update(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update document"})
		return
	}
	if err := h.userRepo.UpdateKYCStatus(doc.UserID, req.Status); err != nil {
		log.Printf("[KYC] user status update failed user=%d: %v", doc.UserID, err)
	}
	if h.notifSvc != nil {
		title := "KYC verified"
		body := "You can now withdraw your winnings"
		if req.Status == domain.KYCRejected {
			title = "KYC rejected"
			body = req.Note
		}
		_ = h.notifSvc.Notify(doc.UserID, domain.NotifKYC, title, body, map[string]interface{}{
			"document_id": doc.ID,
			"status":      req.Status,
		})
	}
	c.JSON(http.StatusOK, gin.H{"document": doc})
}
