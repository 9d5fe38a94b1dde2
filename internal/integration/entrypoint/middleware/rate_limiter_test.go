package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to the limit then blocks", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("expected attempt %d to be allowed", i+1)
			}
		}
		if rl.allow("10.0.0.1") {
			t.Error("expected the fourth attempt to be blocked")
		}
	})

	t.Run("keys are tracked independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("10.0.0.1") {
			t.Fatal("expected first key to be allowed")
		}
		if !rl.allow("10.0.0.2") {
			t.Error("expected a different key to be allowed")
		}
		if rl.allow("10.0.0.1") {
			t.Error("expected the exhausted key to stay blocked")
		}
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Fatal("expected first attempt to be allowed")
		}
		time.Sleep(5 * time.Millisecond)
		if !rl.allow("10.0.0.1") {
			t.Error("expected the attempt after window expiry to be allowed")
		}
	})

	t.Run("reset clears all state", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		rl.allow("10.0.0.1")
		rl.Reset()
		if !rl.allow("10.0.0.1") {
			t.Error("expected the key to be allowed after reset")
		}
	})
}
