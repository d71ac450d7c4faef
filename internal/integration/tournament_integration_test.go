package integration

import (
	"testing"
	"time"

	"arena/internal/domain"
	"arena/internal/models"
	"arena/internal/repository"
	"arena/internal/service"

	"gorm.io/gorm"
)

func newTournamentService(db *gorm.DB) *service.TournamentService {
	return service.NewTournamentService(
		db,
		repository.NewTournamentRepository(db),
		repository.NewMatchRepository(db),
		repository.NewUserRepository(db),
		newLedger(db),
		15*time.Minute,
	)
}

func createTournament(t *testing.T, db *gorm.DB, mode string, entryFeeCents int64, maxPlayers int) *models.Tournament {
	t.Helper()
	tour := &models.Tournament{
		Title:          "Erangel Evening Scrims",
		Game:           domain.GameBGMI,
		Mode:           mode,
		Map:            "Erangel",
		EntryFeeCents:  entryFeeCents,
		PrizePoolCents: 100000,
		PerKillCents:   500,
		StartTime:      time.Now().Add(2 * time.Hour),
		MaxPlayers:     maxPlayers,
		Status:         domain.TournamentUpcoming,
	}
	if err := db.Create(tour).Error; err != nil {
		t.Fatalf("create tournament: %v", err)
	}
	return tour
}

func TestJoinDebitsFeeAndCountsOneSlot(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db)
	svc := newTournamentService(db)

	leader := createUser(t, db)
	mates := []service.Teammate{
		{UserID: createUser(t, db).ID, Username: "mate1"},
		{UserID: createUser(t, db).ID, Username: "mate2"},
		{UserID: createUser(t, db).ID, Username: "mate3"},
	}
	tour := createTournament(t, db, domain.ModeSquad, 5000, 25)

	if _, err := ledger.CreateTransaction(leader.ID, domain.TxDeposit, 20000, "", ""); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	match, err := svc.Join(tour.ID, leader.ID, mates)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if len(match.Members) != 4 {
		t.Fatalf("match members = %d; want 4", len(match.Members))
	}

	balance, err := ledger.Balance(leader.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 15000 {
		t.Fatalf("balance after join = %d; want 15000", balance)
	}

	var got models.Tournament
	if err := db.First(&got, tour.ID).Error; err != nil {
		t.Fatalf("reload tournament: %v", err)
	}
	// one slot per entry, not per player
	if got.RegisteredPlayers != 1 {
		t.Fatalf("registered_players = %d; want 1", got.RegisteredPlayers)
	}
}

func TestJoinRejectsDuplicateAndRollsBack(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db)
	svc := newTournamentService(db)

	user := createUser(t, db)
	tour := createTournament(t, db, domain.ModeSolo, 5000, 25)

	if _, err := ledger.CreateTransaction(user.ID, domain.TxDeposit, 20000, "", ""); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}
	if _, err := svc.Join(tour.ID, user.ID, nil); err != nil {
		t.Fatalf("first join: %v", err)
	}
	if _, err := svc.Join(tour.ID, user.ID, nil); err != service.ErrAlreadyJoined {
		t.Fatalf("second join err = %v; want ErrAlreadyJoined", err)
	}

	// the rejected join must not debit again or burn a slot
	balance, err := ledger.Balance(user.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 15000 {
		t.Fatalf("balance = %d; want 15000", balance)
	}
	var got models.Tournament
	if err := db.First(&got, tour.ID).Error; err != nil {
		t.Fatalf("reload tournament: %v", err)
	}
	if got.RegisteredPlayers != 1 {
		t.Fatalf("registered_players = %d; want 1", got.RegisteredPlayers)
	}
}

func TestJoinRejectsWhenBroke(t *testing.T) {
	db := testDB(t)
	svc := newTournamentService(db)

	user := createUser(t, db)
	tour := createTournament(t, db, domain.ModeSolo, 5000, 25)

	if _, err := svc.Join(tour.ID, user.ID, nil); err != service.ErrInsufficientFunds {
		t.Fatalf("join err = %v; want ErrInsufficientFunds", err)
	}

	var count int64
	if err := db.Model(&models.Match{}).Where("owner_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count matches: %v", err)
	}
	if count != 0 {
		t.Fatalf("match rows after failed join = %d; want 0", count)
	}
}

func TestJoinRejectsFullTournament(t *testing.T) {
	db := testDB(t)
	svc := newTournamentService(db)

	user := createUser(t, db)
	tour := createTournament(t, db, domain.ModeSolo, 0, 1)
	if err := db.Model(tour).Update("registered_players", 1).Error; err != nil {
		t.Fatalf("fill tournament: %v", err)
	}

	if _, err := svc.Join(tour.ID, user.ID, nil); err != service.ErrTournamentFull {
		t.Fatalf("join err = %v; want ErrTournamentFull", err)
	}
}

func TestJoinRejectsWrongTeamSize(t *testing.T) {
	db := testDB(t)
	svc := newTournamentService(db)

	user := createUser(t, db)
	tour := createTournament(t, db, domain.ModeDuo, 0, 25)

	if _, err := svc.Join(tour.ID, user.ID, nil); err != service.ErrTeamSize {
		t.Fatalf("solo join into duo err = %v; want ErrTeamSize", err)
	}
}

func TestJoinMissingTournament(t *testing.T) {
	db := testDB(t)
	svc := newTournamentService(db)
	user := createUser(t, db)

	if _, err := svc.Join(999999999, user.ID, nil); err != service.ErrTournamentNotFound {
		t.Fatalf("join err = %v; want ErrTournamentNotFound", err)
	}
}

func TestCancelRefundsEntryFees(t *testing.T) {
	db := testDB(t)
	ledger := newLedger(db)
	svc := newTournamentService(db)

	user := createUser(t, db)
	tour := createTournament(t, db, domain.ModeSolo, 5000, 25)

	if _, err := ledger.CreateTransaction(user.ID, domain.TxDeposit, 5000, "", ""); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}
	if _, err := svc.Join(tour.ID, user.ID, nil); err != nil {
		t.Fatalf("join: %v", err)
	}

	cancelled, err := svc.Cancel(tour.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != domain.TournamentCancelled {
		t.Fatalf("status = %s; want CANCELLED", cancelled.Status)
	}

	balance, err := ledger.Balance(user.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 5000 {
		t.Fatalf("balance after refund = %d; want 5000", balance)
	}
}
