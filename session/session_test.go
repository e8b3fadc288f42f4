package session

import (
	"testing"
	"time"

	"github.com/dragonmc/lazygate/mc"
)

func TestOccupancyFallingEdgeFiresOnlyOnce(t *testing.T) {
	zeroCount := 0
	o := NewOccupancy(10*time.Millisecond, func() { zeroCount++ }, func() {})

	o.Inc()
	o.Inc()
	o.Dec()
	o.Dec()

	time.Sleep(30 * time.Millisecond)
	if zeroCount != 1 {
		t.Fatalf("expected exactly one zero edge, got %d", zeroCount)
	}
}

func TestOccupancyDebounceAbsorbsBurst(t *testing.T) {
	zeroCount := 0
	o := NewOccupancy(20*time.Millisecond, func() { zeroCount++ }, func() {})

	o.Inc()
	o.Dec() // drops to zero, arms debounce
	o.Inc() // cancels it before it fires
	o.Dec()

	time.Sleep(40 * time.Millisecond)
	if zeroCount != 1 {
		t.Fatalf("expected exactly one zero edge after the burst settles, got %d", zeroCount)
	}
}

func TestOccupancyRisingEdgeFiresOnlyFromZero(t *testing.T) {
	nonZeroCount := 0
	o := NewOccupancy(0, func() {}, func() { nonZeroCount++ })

	o.Inc()
	o.Inc()
	o.Inc()

	if nonZeroCount != 1 {
		t.Fatalf("expected exactly one non-zero edge, got %d", nonZeroCount)
	}
}

func TestNewLoginSessionDerivesOfflineUUID(t *testing.T) {
	s := NewLoginSession(nil, 754, "Alice")
	if s.Username != "Alice" {
		t.Fatalf("got %q", s.Username)
	}
	if s.UUID != mc.OfflineUUID("Alice") {
		t.Fatalf("got UUID %v, want %v", s.UUID, mc.OfflineUUID("Alice"))
	}
	if s.Role != RoleHoldingForStart {
		t.Fatalf("got role %v", s.Role)
	}
	if s.CountsTowardOccupancy() {
		t.Fatal("a session still waiting for the backend to start should not count toward occupancy")
	}
}
