//go:build !windows

package lifecycle

import (
	"syscall"

	"github.com/dragonmc/lazygate/logging"
)

// stopBackendSignal sends SIGTERM to pid, the Unix fallback when RCON is
// unavailable or fails.
func stopBackendSignal(pid int) {
	p := lookupProcess(pid)
	if p == nil {
		return
	}
	if err := p.Signal(syscall.SIGTERM); err != nil {
		logging.Printf("lifecycle: SIGTERM to pid %d failed: %v", pid, err)
	}
}

// forceKill sends SIGKILL, the stop_timeout escalation.
func forceKill(pid int) {
	p := lookupProcess(pid)
	if p == nil {
		return
	}
	if err := p.Signal(syscall.SIGKILL); err != nil {
		logging.Printf("lifecycle: SIGKILL to pid %d failed: %v", pid, err)
	}
	unregisterProcess(pid)
}
