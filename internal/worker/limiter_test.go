package worker

import "testing"

func TestLimiter_BurstThenThrottle(t *testing.T) {
	limiter := NewLimiter(60, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("request beyond burst should be rejected")
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(60, 1)

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("first client should be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("first client should be throttled")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Error("second client must have its own budget")
	}
}

func TestLimiter_DefaultBurst(t *testing.T) {
	limiter := NewLimiter(60, 0)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected fallback burst of 5, got %d", limiter.defaultBurst)
	}
}
