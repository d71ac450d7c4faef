package repository

import (
	"gorm.io/gorm"
)

// LeaderboardRow aggregates approved results per player.
type LeaderboardRow struct {
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	MatchesPlayed int64  `json:"matches_played"`
	Wins          int64  `json:"wins"`
	TotalKills    int64  `json:"total_kills"`
	EarningsCents int64  `json:"earnings_cents"`
}

type LeaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Top ranks players by prize earnings, then kills, over approved match
// results. Earnings are summed per member so every teammate is credited.
func (r *LeaderboardRepository) Top(game string, limit int) ([]LeaderboardRow, error) {
	q := r.db.Table("matches").
		Select(`match_members.user_id AS user_id,
			match_members.username AS username,
			COUNT(DISTINCT matches.id) AS matches_played,
			SUM(CASE WHEN matches.position = 1 THEN 1 ELSE 0 END) AS wins,
			SUM(matches.kills) AS total_kills,
			SUM(tournaments.per_kill_cents * matches.kills + CASE WHEN matches.position = 1 THEN tournaments.prize_pool_cents ELSE 0 END) AS earnings_cents`).
		Joins("JOIN match_members ON match_members.match_id = matches.id").
		Joins("JOIN tournaments ON tournaments.id = matches.tournament_id").
		Where("matches.result_approved = ?", true)
	if game != "" {
		q = q.Where("matches.game = ?", game)
	}
	var rows []LeaderboardRow
	err := q.Group("match_members.user_id, match_members.username").
		Order("earnings_cents DESC, total_kills DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
