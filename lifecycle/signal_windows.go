//go:build windows

package lifecycle

import "github.com/dragonmc/lazygate/logging"

// stopBackendSignal is a no-op on Windows: RCON is mandatory for graceful
// stop there, per §6 "on Windows use RCON only". Reaching this function at
// all means RCON already failed, so the operator is told rather than
// silently killing the process out from under its world save.
func stopBackendSignal(pid int) {
	logging.Printf("lifecycle: no signal fallback on windows for pid %d; RCON stop failed", pid)
}

// forceKill still applies on Windows for the stop_timeout escalation --
// once the grace period has elapsed, terminating is preferable to leaving
// an unresponsive process running forever.
func forceKill(pid int) {
	p := lookupProcess(pid)
	if p == nil {
		return
	}
	if err := p.Kill(); err != nil {
		logging.Printf("lifecycle: force kill of pid %d failed: %v", pid, err)
	}
	unregisterProcess(pid)
}
