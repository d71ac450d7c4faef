package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"arena/internal/domain"
	"arena/internal/models"
	"arena/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrTournamentNotFound = errors.New("Tournament not found")
	ErrRegistrationClosed = errors.New("registration closed")
	ErrTournamentFull     = errors.New("tournament is full")
	ErrAlreadyJoined      = errors.New("already joined this tournament")
	ErrTeamSize           = errors.New("team size does not match tournament mode")
)

// Teammate is a join-request team member before persistence.
type Teammate struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Username string `json:"username"`
}

type TournamentService struct {
	db             *gorm.DB
	tournamentRepo *repository.TournamentRepository
	matchRepo      *repository.MatchRepository
	userRepo       *repository.UserRepository
	ledger         *LedgerService
	roomRevealLead time.Duration
}

func NewTournamentService(
	db *gorm.DB,
	tournamentRepo *repository.TournamentRepository,
	matchRepo *repository.MatchRepository,
	userRepo *repository.UserRepository,
	ledger *LedgerService,
	roomRevealLead time.Duration,
) *TournamentService {
	return &TournamentService{
		db:             db,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		userRepo:       userRepo,
		ledger:         ledger,
		roomRevealLead: roomRevealLead,
	}
}

// Join registers the user (plus teammates for duo/squad) into a tournament.
// The whole flow runs in one DB transaction: tournament row locked, slot
// check, entry-fee debit, match creation, counter increment. Any failure
// rolls the entire join back.
//
// The registered counter moves by exactly 1 per join call regardless of team
// size: slots are sold per entry, not per player.
func (s *TournamentService) Join(tournamentID, userID uint, teammates []Teammate) (*models.Match, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var match *models.Match
	err = s.db.Transaction(func(tx *gorm.DB) error {
		t, err := s.tournamentRepo.GetByIDForUpdate(tx, tournamentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTournamentNotFound
			}
			return err
		}
		if t.Status != domain.TournamentUpcoming {
			return ErrRegistrationClosed
		}
		if t.RegisteredPlayers >= t.MaxPlayers {
			return ErrTournamentFull
		}
		if len(teammates)+1 != domain.TeamSize(t.Mode) {
			return ErrTeamSize
		}
		joined, err := s.tournamentRepo.HasJoined(tx, tournamentID, userID)
		if err != nil {
			return err
		}
		if joined {
			return ErrAlreadyJoined
		}

		if t.EntryFeeCents > 0 {
			ref := fmt.Sprintf("tournament:%d", t.ID)
			if _, err := s.ledger.CreateTransactionWithTx(tx, userID, domain.TxEntryFee, t.EntryFeeCents, ref, t.Title); err != nil {
				return err
			}
		}

		match = &models.Match{
			TournamentID: t.ID,
			OwnerID:      userID,
			Game:         t.Game,
			Mode:         t.Mode,
			Map:          t.Map,
			ScheduledAt:  t.StartTime,
			Status:       domain.MatchPending,
			Members: append([]models.MatchMember{{
				UserID:   userID,
				Username: user.Username,
				Role:     "LEADER",
			}}, memberRows(teammates)...),
		}
		if err := s.matchRepo.CreateWithTx(tx, match); err != nil {
			return err
		}
		return s.tournamentRepo.IncrementRegisteredWithTx(tx, t.ID)
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func memberRows(teammates []Teammate) []models.MatchMember {
	rows := make([]models.MatchMember, 0, len(teammates))
	for _, tm := range teammates {
		rows = append(rows, models.MatchMember{
			UserID:   tm.UserID,
			Username: tm.Username,
			Role:     "MEMBER",
		})
	}
	return rows
}

// Cancel marks an upcoming tournament cancelled and refunds entry fees to
// every joined player. Refund failures are logged and skipped so one broken
// wallet does not block the rest.
func (s *TournamentService) Cancel(tournamentID uint) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(tournamentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	if t.Status != domain.TournamentUpcoming {
		return nil, ErrRegistrationClosed
	}
	if err := s.tournamentRepo.UpdateStatus(t.ID, domain.TournamentCancelled); err != nil {
		return nil, err
	}
	t.Status = domain.TournamentCancelled

	if t.EntryFeeCents > 0 {
		userIDs, err := s.tournamentRepo.JoinedUserIDs(t.ID)
		if err != nil {
			return t, err
		}
		ref := fmt.Sprintf("tournament:%d", t.ID)
		for _, uid := range userIDs {
			if _, err := s.ledger.CreateTransaction(uid, domain.TxRefund, t.EntryFeeCents, ref, "tournament cancelled: "+t.Title); err != nil {
				log.Printf("[Tournament] refund failed user=%d tournament=%d: %v", uid, t.ID, err)
			}
		}
	}
	return t, nil
}

// AssignRoom sets room credentials on a match. visibleAt defaults to the
// reveal lead before the scheduled start; a past default becomes visible now.
func (s *TournamentService) AssignRoom(matchID uint, roomID, roomPassword string, visibleAt *time.Time) (*models.Match, error) {
	m, err := s.matchRepo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	if visibleAt == nil {
		v := m.ScheduledAt.Add(-s.roomRevealLead)
		if v.Before(time.Now()) {
			v = time.Now()
		}
		visibleAt = &v
	}
	m.RoomID = &roomID
	m.RoomPassword = &roomPassword
	m.RoomVisibleAt = visibleAt
	m.Status = domain.MatchOngoing
	if err := s.matchRepo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}
