package handler

import (
	"net/http"
	"strconv"

	"arena/internal/repository"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	repo *repository.LeaderboardRepository
}

func NewLeaderboardHandler(repo *repository.LeaderboardRepository) *LeaderboardHandler {
	return &LeaderboardHandler{repo: repo}
}

// Top returns the player ranking over approved results, optionally filtered
// by game.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	rows, err := h.repo.Top(c.Query("game"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": rows})
}
