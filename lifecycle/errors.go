package lifecycle

import "errors"

var (
	errNoStartCommand    = errors.New("lifecycle: server.start_command is empty")
	errUnterminatedQuote = errors.New("lifecycle: start_command has an unterminated quote")

	// ErrRconUnavailable marks a graceful stop that failed over RCON with
	// no signal fallback available (Windows).
	ErrRconUnavailable = errors.New("lifecycle: rcon stop failed and no signal fallback is available on this platform")
)
