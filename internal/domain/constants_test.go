package domain

import "testing"

func TestTxSign(t *testing.T) {
	cases := []struct {
		txType string
		want   int64
	}{
		{TxDeposit, 1},
		{TxPrize, 1},
		{TxRefund, 1},
		{TxWithdrawal, -1},
		{TxEntryFee, -1},
		{"BOGUS", 0},
	}
	for _, tc := range cases {
		if got := TxSign(tc.txType); got != tc.want {
			t.Fatalf("TxSign(%s) = %d; want %d", tc.txType, got, tc.want)
		}
	}
}

func TestTeamSize(t *testing.T) {
	cases := []struct {
		mode string
		want int
	}{
		{ModeSolo, 1},
		{ModeDuo, 2},
		{ModeSquad, 4},
		{"TRIO", 0},
	}
	for _, tc := range cases {
		if got := TeamSize(tc.mode); got != tc.want {
			t.Fatalf("TeamSize(%s) = %d; want %d", tc.mode, got, tc.want)
		}
	}
}

func TestIsValidCurrency(t *testing.T) {
	for _, code := range Currencies {
		if !IsValidCurrency(code) {
			t.Fatalf("IsValidCurrency(%s) = false; want true", code)
		}
	}
	if IsValidCurrency("EUR") {
		t.Fatal("IsValidCurrency(EUR) = true; want false")
	}
	if IsValidCurrency("inr") {
		t.Fatal("IsValidCurrency(inr) = true; want false")
	}
}
