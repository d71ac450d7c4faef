package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"arena/config"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		countryCode, phone string
		want               string
	}{
		{"+91", "9876543210", "919876543210"},
		{"+91", "09876543210", "919876543210"},
		{"+91", "919876543210", "919876543210"},
		{"+91", "98765-43210", "919876543210"},
		{"+234", "08012345678", "2348012345678"},
		{"+1", "415-555-0100", "14155550100"},
		{"+91", "", ""},
		{"", "9876543210", ""},
		{"+91", "123", ""},
	}
	for _, tc := range cases {
		if got := normalizePhone(tc.countryCode, tc.phone); got != tc.want {
			t.Fatalf("normalizePhone(%q, %q) = %q; want %q", tc.countryCode, tc.phone, got, tc.want)
		}
	}
}

func TestWebhookSignature(t *testing.T) {
	h := &WithdrawalWebhookHandler{cfg: &config.Config{
		Payout: config.PayoutConfig{WebhookSecret: "s3cret"},
	}}
	body := []byte(`{"order_id":"wd-abc","status":"COMPLETED"}`)
	mac := hmac.New(sha256.New, []byte("s3cret"))
	mac.Write(body)
	sig := hex.EncodeToString(mac.Sum(nil))

	if !h.verifySignature(body, sig) {
		t.Fatal("valid signature rejected")
	}
	if h.verifySignature(body, "deadbeef") {
		t.Fatal("bad signature accepted")
	}
	if h.verifySignature([]byte(`{"order_id":"wd-other"}`), sig) {
		t.Fatal("signature accepted for a different body")
	}
}
