package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("client") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("client") {
		t.Fatal("request over limit should be blocked")
	}
}

func TestRateLimiterIsolatesIdentifiers(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.Allow("a") {
		t.Fatal("first request for a should be allowed")
	}
	if !rl.Allow("b") {
		t.Fatal("first request for b should be allowed")
	}
	if rl.Allow("a") {
		t.Fatal("second request for a should be blocked")
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("client") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("client") {
		t.Fatal("second request in window should be blocked")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("client") {
		t.Fatal("request after window reset should be allowed")
	}
}
