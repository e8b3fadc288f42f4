package lifecycle

import (
	"time"

	"github.com/dragonmc/lazygate/mc"
)

// State is the tagged variant BackendState walks through. Transitions are
// owned exclusively by Controller; every other package only ever observes
// a State via a Snapshot.
type State byte

const (
	Stopped State = iota
	Starting
	Started
	Stopping
	Crashed
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Starting:
		return "Starting"
	case Started:
		return "Started"
	case Stopping:
		return "Stopping"
	case Crashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// ServerStatus is the cached copy of the last successful probe response,
// retained across Stopping/Stopped so the status responder can still serve
// a realistic MOTD while the backend is down.
type ServerStatus struct {
	Response mc.StatusResponse
	CachedAt time.Time
}

// Snapshot is an atomic, read-only view of BackendState handed to callers
// outside the controller -- the connection handler, the status responder,
// the occupancy tracker. It must never be mutated by its receiver.
type Snapshot struct {
	State        State
	PID          int
	Since        time.Time
	RunningSince time.Time
	LastExitCode int
	Status       *ServerStatus
}

// backendState is the controller's private, mutable bookkeeping; Snapshot
// is derived from it on every read.
type backendState struct {
	state           State
	pid             int
	since           time.Time
	runningSince    time.Time
	lastExitCode    int
	status          *ServerStatus
	keepOnlineUntil time.Time
	killAt          time.Time
}

func (b *backendState) snapshot() Snapshot {
	return Snapshot{
		State:        b.state,
		PID:          b.pid,
		Since:        b.since,
		RunningSince: b.runningSince,
		LastExitCode: b.lastExitCode,
		Status:       b.status,
	}
}
