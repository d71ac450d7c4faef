package handler

import (
	"errors"
	"net/http"

	"arena/internal/middleware"
	"arena/internal/models"
	"arena/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SquadHandler struct {
	repo *repository.SquadRepository
}

func NewSquadHandler(repo *repository.SquadRepository) *SquadHandler {
	return &SquadHandler{repo: repo}
}

func (h *SquadHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.repo.ListByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list squad members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"squad_members": list})
}

type SquadMemberRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=64"`
	InGameName string `json:"in_game_name" binding:"required,min=1,max=64"`
	GameID     string `json:"game_id"`
	Role       string `json:"role" binding:"omitempty,oneof=LEADER MEMBER"`
}

func (h *SquadHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req SquadMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := &models.SquadMember{
		OwnerID:    userID,
		Name:       req.Name,
		InGameName: req.InGameName,
		GameID:     req.GameID,
		Role:       req.Role,
	}
	if m.Role == "" {
		m.Role = "MEMBER"
	}
	if err := h.repo.Create(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add squad member"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"squad_member": m})
}

func (h *SquadHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := parseID(c)
	m, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Squad member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load squad member"})
		return
	}
	if m.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	var req SquadMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.Name = req.Name
	m.InGameName = req.InGameName
	m.GameID = req.GameID
	if req.Role != "" {
		m.Role = req.Role
	}
	if err := h.repo.Update(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update squad member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"squad_member": m})
}

func (h *SquadHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := parseID(c)
	if err := h.repo.Delete(id, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove squad member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
