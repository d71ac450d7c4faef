package handler

import (
	"net/http"

	"arena/internal/domain"
	"arena/internal/middleware"
	"arena/internal/repository"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	userRepo *repository.UserRepository
}

func NewMeHandler(userRepo *repository.UserRepository) *MeHandler {
	return &MeHandler{userRepo: userRepo}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

type UpdateProfileRequest struct {
	Username   *string `json:"username" binding:"omitempty,min=3,max=64"`
	Game       *string `json:"game" binding:"omitempty,oneof=PUBG BGMI"`
	GameMode   *string `json:"game_mode" binding:"omitempty,oneof=SOLO DUO SQUAD"`
	InGameName *string `json:"in_game_name" binding:"omitempty,max=64"`
	Currency   *string `json:"currency" binding:"omitempty,oneof=INR NGN USD"`
	AvatarURL  *string `json:"avatar_url" binding:"omitempty,url"`
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username != nil && *req.Username != u.Username {
		if _, err := h.userRepo.GetByUsername(*req.Username); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		u.Username = *req.Username
	}
	if req.Game != nil {
		u.Game = *req.Game
	}
	if req.GameMode != nil {
		u.GameMode = *req.GameMode
	}
	if req.InGameName != nil {
		u.InGameName = *req.InGameName
	}
	if req.Currency != nil && domain.IsValidCurrency(*req.Currency) {
		u.Currency = *req.Currency
	}
	if req.AvatarURL != nil {
		u.AvatarURL = *req.AvatarURL
	}
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
