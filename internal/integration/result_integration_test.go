package integration

import (
	"testing"

	"arena/internal/domain"
	"arena/internal/repository"
	"arena/internal/service"

	"gorm.io/gorm"
)

func newResultService(db *gorm.DB) *service.ResultService {
	return service.NewResultService(
		repository.NewMatchRepository(db),
		repository.NewTournamentRepository(db),
		newLedger(db),
	)
}

func TestResultApprovalPaysTeam(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db)
	tourSvc := newTournamentService(db)
	resultSvc := newResultService(db)

	leader := createUser(t, db)
	mate := createUser(t, db)
	tour := createTournament(t, db, domain.ModeDuo, 0, 25)

	match, err := tourSvc.Join(tour.ID, leader.ID, []service.Teammate{{UserID: mate.ID, Username: "mate"}})
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	// winner with 6 kills: prize pool + per-kill reward
	if _, err := resultSvc.Submit(match.ID, leader.ID, 1, 6, "https://cdn.example/shot.png"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	approved, prize, err := resultSvc.Approve(match.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	want := tour.PrizePoolCents + 6*tour.PerKillCents
	if prize != want {
		t.Fatalf("prize = %d; want %d", prize, want)
	}
	if !approved.ResultApproved {
		t.Fatal("match not flagged approved")
	}

	for _, uid := range []uint{leader.ID, mate.ID} {
		balance, err := ledger.Balance(uid)
		if err != nil {
			t.Fatalf("balance user %d: %v", uid, err)
		}
		if balance != want {
			t.Fatalf("balance user %d = %d; want %d", uid, balance, want)
		}
	}

	// approval is one-shot
	if _, _, err := resultSvc.Approve(match.ID); err != service.ErrResultAlreadyPaid {
		t.Fatalf("second approve err = %v; want ErrResultAlreadyPaid", err)
	}
}

func TestResultSubmitOwnerOnlyAndOnce(t *testing.T) {
	db := testDB(t)
	tourSvc := newTournamentService(db)
	resultSvc := newResultService(db)

	owner := createUser(t, db)
	stranger := createUser(t, db)
	tour := createTournament(t, db, domain.ModeSolo, 0, 25)

	match, err := tourSvc.Join(tour.ID, owner.ID, nil)
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	if _, err := resultSvc.Submit(match.ID, stranger.ID, 3, 2, ""); err != service.ErrNotMatchOwner {
		t.Fatalf("stranger submit err = %v; want ErrNotMatchOwner", err)
	}
	if _, err := resultSvc.Submit(match.ID, owner.ID, 3, 2, ""); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := resultSvc.Submit(match.ID, owner.ID, 1, 9, ""); err != service.ErrResultAlreadySent {
		t.Fatalf("resubmit err = %v; want ErrResultAlreadySent", err)
	}
}
