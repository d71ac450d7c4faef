package service

import (
	"testing"

	"arena/internal/models"
)

func TestPrizeCents(t *testing.T) {
	tour := &models.Tournament{PrizePoolCents: 50000, PerKillCents: 500}

	cases := []struct {
		position, kills int
		want            int64
	}{
		{1, 0, 50000},
		{1, 8, 54000},
		{2, 8, 4000},
		{50, 0, 0},
	}
	for _, tc := range cases {
		if got := PrizeCents(tour, tc.position, tc.kills); got != tc.want {
			t.Fatalf("PrizeCents(pos=%d, kills=%d) = %d; want %d", tc.position, tc.kills, got, tc.want)
		}
	}
}

func TestPrizeCentsNoPerKillReward(t *testing.T) {
	tour := &models.Tournament{PrizePoolCents: 10000, PerKillCents: 0}
	if got := PrizeCents(tour, 3, 12); got != 0 {
		t.Fatalf("kills must not pay without a per-kill reward, got %d", got)
	}
	if got := PrizeCents(tour, 1, 12); got != 10000 {
		t.Fatalf("winner payout = %d; want 10000", got)
	}
}
