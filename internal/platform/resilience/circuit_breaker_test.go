package resilience

import (
	"errors"
	"testing"
	"time"
)

func testBreaker(threshold, halfOpenMax int, openTimeout time.Duration) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: threshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMax,
	})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	b, _ := testBreaker(3, 1, time.Minute)

	for i := 0; i < 3; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("closed breaker rejected request %d: %v", i, err)
		}
		b.RecordFailure()
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", got)
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	t.Parallel()

	b, now := testBreaker(1, 1, time.Minute)
	b.RecordFailure()

	*now = now.Add(2 * time.Minute)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe allowed: %v", err)
	}
	b.RecordSuccess()

	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", got)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	b, now := testBreaker(1, 1, time.Minute)
	b.RecordFailure()

	*now = now.Add(2 * time.Minute)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe allowed: %v", err)
	}
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected reopened circuit, got %v", err)
	}
}

func TestSingleFlight_SharesResult(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	calls := 0
	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, _, _ = g.Do("key", func() (any, error) {
			calls++
			close(started)
			<-release
			return "first", nil
		})
	}()

	<-started
	done := make(chan struct{})
	go func() {
		val, err, shared := g.Do("key", func() (any, error) {
			calls++
			return "second", nil
		})
		if !shared || err != nil || val != "first" {
			t.Errorf("expected shared first result, got val=%v err=%v shared=%t", val, err, shared)
		}
		close(done)
	}()

	// Give the second caller time to join the in-flight call.
	time.Sleep(10 * time.Millisecond)
	close(release)
	<-done

	if calls != 1 {
		t.Fatalf("expected one execution, got %d", calls)
	}
}
