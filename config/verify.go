package config

import (
	"errors"
	"fmt"
)

// ErrConfigInvalid wraps every validation failure VerifyConfig reports, so
// callers can errors.Is it regardless of the specific field at fault.
var ErrConfigInvalid = errors.New("config: invalid configuration")

// VerifyConfig checks the invariants the rest of the program assumes hold:
// required addresses and the start command are set, the start and stop
// timeouts are positive, sleep_after is not negative, and Windows-only
// constraints (RCON mandatory for graceful stop) are honoured. Mirrors the
// teacher's VerifyConfigs duplicate-domain sweep, but over one config
// instead of many server configs.
func VerifyConfig(cfg Configuration) error {
	var problems []string

	if cfg.Network.PublicAddress == "" {
		problems = append(problems, "network.public_address is required")
	}
	if cfg.Network.BackendAddress == "" {
		problems = append(problems, "network.backend_address is required")
	}
	if cfg.Server.StartCommand == "" {
		problems = append(problems, "server.start_command is required")
	}
	if cfg.Timing.SleepAfterSeconds < 0 {
		problems = append(problems, "timing.sleep_after_seconds must be >= 0")
	}
	if cfg.Timing.StartTimeout <= 0 {
		problems = append(problems, "timing.start_timeout_seconds must be > 0")
	}
	if cfg.Timing.StopTimeout <= 0 {
		problems = append(problems, "timing.stop_timeout_seconds must be > 0")
	}
	if !cfg.Server.SendStopViaRcon && isWindowsGOOS() {
		problems = append(problems, "server.send_stop_via_rcon must be true on Windows: signal-based stop is unavailable")
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrConfigInvalid, problems)
}
