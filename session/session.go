// Package session tracks per-connection client state and aggregate
// occupancy, feeding the lifecycle controller's idle decision.
package session

import (
	"net"

	"github.com/dragonmc/lazygate/mc"
)

// Intent is the two flavours of connection a handshake can declare.
type Intent byte

const (
	IntentStatus Intent = iota
	IntentLogin
)

// Role tracks what a session is currently doing, which in turn decides
// whether it counts toward occupancy.
type Role byte

const (
	RoleStatusOnly Role = iota
	RoleHoldingForStart
	RoleInLobby
	RoleRelayed
)

// Session is the per-connection record the connection handler builds once
// it has read the handshake (and, for Login, the LoginStart).
type Session struct {
	Addr            net.Addr
	ProtocolVersion int32
	Intent          Intent
	Username        string
	UUID            mc.UUID
	Role            Role
}

// NewLoginSession builds a Session for a Login-intent connection, deriving
// the offline UUID from the claimed username.
func NewLoginSession(addr net.Addr, protocolVersion int32, username string) Session {
	return Session{
		Addr:            addr,
		ProtocolVersion: protocolVersion,
		Intent:          IntentLogin,
		Username:        username,
		UUID:            mc.OfflineUUID(username),
		Role:            RoleHoldingForStart,
	}
}

// NewStatusSession builds a Session for a Status-intent connection.
func NewStatusSession(addr net.Addr, protocolVersion int32) Session {
	return Session{
		Addr:            addr,
		ProtocolVersion: protocolVersion,
		Intent:          IntentStatus,
		Role:            RoleStatusOnly,
	}
}

// CountsTowardOccupancy reports whether this session's current role
// should be counted by the occupancy tracker.
func (s Session) CountsTowardOccupancy() bool {
	return s.Role == RoleInLobby || s.Role == RoleRelayed
}
