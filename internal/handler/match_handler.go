package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"arena/internal/domain"
	"arena/internal/middleware"
	"arena/internal/repository"
	"arena/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MatchHandler struct {
	matchRepo *repository.MatchRepository
	resultSvc *service.ResultService
	tourSvc   *service.TournamentService
	notifSvc  *service.NotificationService
}

func NewMatchHandler(
	matchRepo *repository.MatchRepository,
	resultSvc *service.ResultService,
	tourSvc *service.TournamentService,
	notifSvc *service.NotificationService,
) *MatchHandler {
	return &MatchHandler{matchRepo: matchRepo, resultSvc: resultSvc, tourSvc: tourSvc, notifSvc: notifSvc}
}

// Get returns a match. Room credentials appear only once visible, and only
// to the team or an admin.
func (h *MatchHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := parseID(c)
	m, err := h.matchRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load match"})
		return
	}
	role, _ := c.Get("role")
	isAdmin := role == domain.RoleAdmin
	onTeam := m.OwnerID == userID
	for _, member := range m.Members {
		if member.UserID == userID {
			onTeam = true
		}
	}
	resp := gin.H{"match": m}
	if onTeam || isAdmin {
		resp["room"] = m.RoomView(time.Now())
	}
	c.JSON(http.StatusOK, resp)
}

// ListMine returns the authenticated user's matches with room views.
func (h *MatchHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pagination(c, 20)
	list, err := h.matchRepo.ListByUser(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list matches"})
		return
	}
	now := time.Now()
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, gin.H{"match": list[i], "room": list[i].RoomView(now)})
	}
	c.JSON(http.StatusOK, gin.H{"matches": out})
}

type SubmitResultRequest struct {
	Position      int    `json:"position" binding:"required,min=1"`
	Kills         int    `json:"kills" binding:"min=0"`
	ScreenshotURL string `json:"screenshot_url" binding:"required,url"`
}

// SubmitResult records the team's claimed result, pending admin approval.
func (h *MatchHandler) SubmitResult(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := parseID(c)
	var req SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.resultSvc.Submit(id, userID, req.Position, req.Kills, req.ScreenshotURL)
	if err != nil {
		switch err {
		case service.ErrMatchNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
		case service.ErrNotMatchOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case service.ErrResultAlreadySent:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("[Match] result submit failed match=%d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit result"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": m})
}

// ApproveResult is admin-only: confirms the result and pays prizes.
func (h *MatchHandler) ApproveResult(c *gin.Context) {
	id := parseID(c)
	m, prize, err := h.resultSvc.Approve(id)
	if err != nil {
		switch err {
		case service.ErrMatchNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
		case service.ErrResultNotSubmitted, service.ErrResultAlreadyPaid:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("[Match] result approve failed match=%d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve result"})
		}
		return
	}
	if h.notifSvc != nil && prize > 0 {
		for _, member := range m.Members {
			_ = h.notifSvc.Notify(member.UserID, domain.NotifResult, "Result approved",
				"Prize credited to your wallet", map[string]interface{}{
					"match_id":    m.ID,
					"prize_cents": prize,
				})
		}
	}
	c.JSON(http.StatusOK, gin.H{"match": m, "prize_cents": prize})
}

type AssignRoomRequest struct {
	RoomID       string     `json:"room_id" binding:"required"`
	RoomPassword string     `json:"room_password" binding:"required"`
	VisibleAt    *time.Time `json:"visible_at"`
}

// AssignRoom is admin-only: sets room credentials and notifies the team when
// they become visible immediately.
func (h *MatchHandler) AssignRoom(c *gin.Context) {
	id := parseID(c)
	var req AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.tourSvc.AssignRoom(id, req.RoomID, req.RoomPassword, req.VisibleAt)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
			return
		}
		log.Printf("[Match] room assign failed match=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign room"})
		return
	}
	if h.notifSvc != nil {
		for _, member := range m.Members {
			_ = h.notifSvc.Notify(member.UserID, domain.NotifRoom, "Room details assigned",
				"Lobby credentials unlock shortly before the match", map[string]interface{}{
					"match_id":   m.ID,
					"visible_at": m.RoomVisibleAt,
				})
		}
	}
	c.JSON(http.StatusOK, gin.H{"match": m, "room": m.RoomView(time.Now())})
}

// ListPendingResults is admin-only: submitted but unapproved results.
func (h *MatchHandler) ListPendingResults(c *gin.Context) {
	limit, offset := pagination(c, 50)
	list, err := h.matchRepo.ListPendingResults(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list results"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": list})
}
