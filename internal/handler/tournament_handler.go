package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"arena/internal/domain"
	"arena/internal/middleware"
	"arena/internal/models"
	"arena/internal/repository"
	"arena/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TournamentHandler struct {
	tournamentRepo *repository.TournamentRepository
	matchRepo      *repository.MatchRepository
	svc            *service.TournamentService
	notifSvc       *service.NotificationService
}

func NewTournamentHandler(
	tournamentRepo *repository.TournamentRepository,
	matchRepo *repository.MatchRepository,
	svc *service.TournamentService,
	notifSvc *service.NotificationService,
) *TournamentHandler {
	return &TournamentHandler{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		svc:            svc,
		notifSvc:       notifSvc,
	}
}

func (h *TournamentHandler) List(c *gin.Context) {
	limit, offset := pagination(c, 20)
	list, err := h.tournamentRepo.List(c.Query("game"), c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tournaments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tournaments": list})
}

func (h *TournamentHandler) Get(c *gin.Context) {
	id := parseID(c)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tournament id"})
		return
	}
	t, err := h.tournamentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tournament"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tournament": t, "slots_left": t.SlotsLeft()})
}

type CreateTournamentRequest struct {
	Title          string    `json:"title" binding:"required"`
	Game           string    `json:"game" binding:"required,oneof=PUBG BGMI"`
	Mode           string    `json:"mode" binding:"required,oneof=SOLO DUO SQUAD"`
	Map            string    `json:"map"`
	EntryFeeCents  int64     `json:"entry_fee_cents" binding:"min=0"`
	PrizePoolCents int64     `json:"prize_pool_cents" binding:"min=0"`
	PerKillCents   int64     `json:"per_kill_cents" binding:"min=0"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	MaxPlayers     int       `json:"max_players" binding:"required,min=1"`
}

// Create is admin-only.
func (h *TournamentHandler) Create(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &models.Tournament{
		Title:          req.Title,
		Game:           req.Game,
		Mode:           req.Mode,
		Map:            req.Map,
		EntryFeeCents:  req.EntryFeeCents,
		PrizePoolCents: req.PrizePoolCents,
		PerKillCents:   req.PerKillCents,
		StartTime:      req.StartTime,
		MaxPlayers:     req.MaxPlayers,
		Status:         domain.TournamentUpcoming,
	}
	if err := h.tournamentRepo.Create(t); err != nil {
		log.Printf("[Tournament] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tournament"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tournament": t})
}

type UpdateTournamentRequest struct {
	Title          *string    `json:"title"`
	Map            *string    `json:"map"`
	EntryFeeCents  *int64     `json:"entry_fee_cents"`
	PrizePoolCents *int64     `json:"prize_pool_cents"`
	PerKillCents   *int64     `json:"per_kill_cents"`
	StartTime      *time.Time `json:"start_time"`
	MaxPlayers     *int       `json:"max_players"`
	Status         *string    `json:"status" binding:"omitempty,oneof=UPCOMING LIVE COMPLETED"`
}

// Update is admin-only; cancellation goes through Cancel for refunds.
func (h *TournamentHandler) Update(c *gin.Context) {
	id := parseID(c)
	t, err := h.tournamentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tournament"})
		return
	}
	var req UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Map != nil {
		t.Map = *req.Map
	}
	if req.EntryFeeCents != nil {
		t.EntryFeeCents = *req.EntryFeeCents
	}
	if req.PrizePoolCents != nil {
		t.PrizePoolCents = *req.PrizePoolCents
	}
	if req.PerKillCents != nil {
		t.PerKillCents = *req.PerKillCents
	}
	if req.StartTime != nil {
		t.StartTime = *req.StartTime
	}
	if req.MaxPlayers != nil {
		t.MaxPlayers = *req.MaxPlayers
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if err := h.tournamentRepo.Update(t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update tournament"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tournament": t})
}

// Cancel is admin-only: marks the tournament cancelled and refunds entry fees.
func (h *TournamentHandler) Cancel(c *gin.Context) {
	id := parseID(c)
	t, err := h.svc.Cancel(id)
	if err != nil {
		switch err {
		case service.ErrTournamentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Tournament not found"})
		case service.ErrRegistrationClosed:
			c.JSON(http.StatusConflict, gin.H{"error": "only upcoming tournaments can be cancelled"})
		default:
			log.Printf("[Tournament] cancel failed id=%d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel tournament"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"tournament": t})
}

// Delete is admin-only and only removes tournaments nobody joined; otherwise
// cancel with refunds.
func (h *TournamentHandler) Delete(c *gin.Context) {
	id := parseID(c)
	t, err := h.tournamentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tournament"})
		return
	}
	if t.RegisteredPlayers > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "tournament has registrations; cancel it instead"})
		return
	}
	if err := h.tournamentRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tournament"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type JoinRequest struct {
	Teammates []service.Teammate `json:"teammates"`
}

// Join registers the authenticated player into the tournament, debiting the
// entry fee and creating the team's match.
func (h *TournamentHandler) Join(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := parseID(c)
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	match, err := h.svc.Join(id, userID, req.Teammates)
	if err != nil {
		switch err {
		case service.ErrTournamentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Tournament not found"})
		case service.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case service.ErrInsufficientFunds:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient balance"})
		case service.ErrRegistrationClosed, service.ErrTournamentFull, service.ErrAlreadyJoined, service.ErrTeamSize:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("[Tournament] join failed user=%d tournament=%d: %v", userID, id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join tournament"})
		}
		return
	}
	if h.notifSvc != nil {
		_ = h.notifSvc.Notify(userID, domain.NotifTournament, "Tournament joined",
			"Your slot is confirmed", map[string]interface{}{"match_id": match.ID})
	}
	c.JSON(http.StatusCreated, gin.H{"match": match})
}

// Matches lists matches of a tournament (admin view).
func (h *TournamentHandler) Matches(c *gin.Context) {
	id := parseID(c)
	if _, err := h.tournamentRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tournament"})
		return
	}
	list, err := h.matchRepo.ListByTournament(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list matches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": list})
}

func parseID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
