package service

import (
	"errors"
	"fmt"

	"arena/internal/domain"
	"arena/internal/models"
	"arena/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrMatchNotFound       = errors.New("match not found")
	ErrResultAlreadySent   = errors.New("result already submitted")
	ErrResultNotSubmitted  = errors.New("no result submitted for this match")
	ErrResultAlreadyPaid   = errors.New("result already approved")
	ErrNotMatchOwner       = errors.New("only the match owner can submit a result")
)

type ResultService struct {
	matchRepo      *repository.MatchRepository
	tournamentRepo *repository.TournamentRepository
	ledger         *LedgerService
}

func NewResultService(matchRepo *repository.MatchRepository, tournamentRepo *repository.TournamentRepository, ledger *LedgerService) *ResultService {
	return &ResultService{matchRepo: matchRepo, tournamentRepo: tournamentRepo, ledger: ledger}
}

// Submit records the owner's claimed result. One submission per match;
// corrections go through an admin.
func (s *ResultService) Submit(matchID, userID uint, position, kills int, screenshotURL string) (*models.Match, error) {
	m, err := s.matchRepo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if m.OwnerID != userID {
		return nil, ErrNotMatchOwner
	}
	if m.ResultSubmitted {
		return nil, ErrResultAlreadySent
	}
	m.Position = position
	m.Kills = kills
	m.ScreenshotURL = screenshotURL
	m.ResultSubmitted = true
	m.Status = domain.MatchCompleted
	if err := s.matchRepo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

// PrizeCents computes the payout for a result: the winner takes the prize
// pool, everyone earns the per-kill reward.
func PrizeCents(t *models.Tournament, position, kills int) int64 {
	total := t.PerKillCents * int64(kills)
	if position == 1 {
		total += t.PrizePoolCents
	}
	return total
}

// Approve confirms a submitted result and pays the prize to every team
// member through the ledger.
func (s *ResultService) Approve(matchID uint) (*models.Match, int64, error) {
	m, err := s.matchRepo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrMatchNotFound
		}
		return nil, 0, err
	}
	if !m.ResultSubmitted {
		return nil, 0, ErrResultNotSubmitted
	}
	if m.ResultApproved {
		return nil, 0, ErrResultAlreadyPaid
	}
	t, err := s.tournamentRepo.GetByID(m.TournamentID)
	if err != nil {
		return nil, 0, err
	}

	prize := PrizeCents(t, m.Position, m.Kills)
	if prize > 0 {
		ref := fmt.Sprintf("match:%d", m.ID)
		details := fmt.Sprintf("%s: position %d, %d kills", t.Title, m.Position, m.Kills)
		for _, member := range m.Members {
			if _, err := s.ledger.CreateTransaction(member.UserID, domain.TxPrize, prize, ref, details); err != nil {
				return nil, 0, err
			}
		}
	}

	m.ResultApproved = true
	if err := s.matchRepo.Update(m); err != nil {
		return nil, 0, err
	}
	return m, prize, nil
}
