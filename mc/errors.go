package mc

import "errors"

// Error kinds the frame codec distinguishes, per the "Error kinds" list of
// the frame codec component. Each is a sentinel so callers can use
// errors.Is instead of string matching.
var (
	ErrTruncated        = errors.New("mc: packet truncated")
	ErrMalformed        = errors.New("mc: malformed packet")
	ErrOversizedVarInt  = errors.New("mc: VarInt is too big")
	ErrStringTooLong    = errors.New("mc: string exceeds maximum length")
	ErrUnexpectedPacket = errors.New("mc: unexpected packet id")

	ErrPacketTooBig = errors.New("mc: packet contains too much data")
)
