package lifecycle

import (
	"os"
	"sync"
)

// processRegistry maps PIDs to the *os.Process the controller spawned, so
// the signal/kill helpers can act on a process without the actor itself
// holding an os.Process handle (it only tracks the PID in backendState).
var processRegistry = struct {
	sync.Mutex
	m map[int]*os.Process
}{m: map[int]*os.Process{}}

func registerProcess(pid int, p *os.Process) {
	processRegistry.Lock()
	processRegistry.m[pid] = p
	processRegistry.Unlock()
}

func lookupProcess(pid int) *os.Process {
	processRegistry.Lock()
	defer processRegistry.Unlock()
	return processRegistry.m[pid]
}

func unregisterProcess(pid int) {
	processRegistry.Lock()
	delete(processRegistry.m, pid)
	processRegistry.Unlock()
}
