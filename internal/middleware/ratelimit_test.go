package middleware

import (
	"testing"
	"time"
)

func TestInMemoryRateLimiterAllow(t *testing.T) {
	l := NewInMemoryRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("request over the limit should be rejected")
	}
	// other keys are tracked independently
	if !l.Allow("5.6.7.8") {
		t.Fatal("fresh key should be allowed")
	}
}

func TestInMemoryRateLimiterWindowExpiry(t *testing.T) {
	l := NewInMemoryRateLimiter(1, 20*time.Millisecond)

	if !l.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("k") {
		t.Fatal("second immediate request should be rejected")
	}
	time.Sleep(30 * time.Millisecond)
	if !l.Allow("k") {
		t.Fatal("request after the window should be allowed")
	}
}
