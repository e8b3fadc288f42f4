package lifecycle

import (
	"testing"
	"time"

	"github.com/dragonmc/lazygate/config"
)

func fakeSpawn(exitCh chan int) SpawnFunc {
	return func(cfg config.Configuration) (int, <-chan int, error) {
		return 1234, exitCh, nil
	}
}

func fakeProbe(status *ServerStatus, err error) ProbeFunc {
	return func(address string) (*ServerStatus, error) {
		return status, err
	}
}

func TestEnsureRunningFromStoppedStartsChild(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.StartTimeout = 5
	exitCh := make(chan int)
	c := NewController(cfg, fakeSpawn(exitCh), fakeProbe(&ServerStatus{}, nil))

	stop := make(chan struct{})
	defer close(stop)
	go c.Run(stop)

	c.EnsureRunning()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if c.Snapshot().State == Started {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected Started, got %v", c.Snapshot().State)
}

func TestEnsureRunningIsNoopWhileStarting(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.StartTimeout = 5
	exitCh := make(chan int)

	spawnCount := 0
	spawn := func(cfg config.Configuration) (int, <-chan int, error) {
		spawnCount++
		return 1234, exitCh, nil
	}

	// Never resolve the probe, so the backend stays in Starting.
	probe := func(address string) (*ServerStatus, error) {
		time.Sleep(time.Hour)
		return nil, nil
	}

	c := NewController(cfg, spawn, probe)
	stop := make(chan struct{})
	defer close(stop)
	go c.Run(stop)

	c.EnsureRunning()
	time.Sleep(20 * time.Millisecond)
	c.EnsureRunning()
	time.Sleep(20 * time.Millisecond)

	if spawnCount != 1 {
		t.Fatalf("expected exactly one spawn, got %d", spawnCount)
	}
}

func TestCrashObservedTransitionsToCrashed(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.StartTimeout = 5
	exitCh := make(chan int, 1)
	c := NewController(cfg, fakeSpawn(exitCh), fakeProbe(&ServerStatus{}, nil))

	stop := make(chan struct{})
	defer close(stop)
	go c.Run(stop)

	c.EnsureRunning()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && c.Snapshot().State != Started {
		time.Sleep(10 * time.Millisecond)
	}

	c.OnCrashObserved(139)

	deadline = time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if c.Snapshot().State == Crashed {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected Crashed, got %v", c.Snapshot().State)
}
