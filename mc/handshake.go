package mc

import "strings"

// HandshakeState is the next-state field of a handshake packet: 1 requests
// a status response, 2 begins login.
type HandshakeState VarInt

const (
	StatusState HandshakeState = 1
	LoginState  HandshakeState = 2

	HandshakePacketID byte = 0x00

	// forgeSeparator is the NUL byte FML/Forge clients splice into the
	// handshake's server-address field ahead of their mod-list marker.
	forgeSeparator = "\x00"
)

// ServerBoundHandshake is the first packet of every connection, carrying
// the protocol version the client speaks, the address it dialed (hostname
// as typed, possibly carrying a Forge marker), the port, and the state it
// wants to transition into.
type ServerBoundHandshake struct {
	ProtocolVersion VarInt
	ServerAddress   String
	ServerPort      UnsignedShort
	NextState       VarInt
}

// Marshal encodes the handshake as a Packet.
func (h ServerBoundHandshake) Marshal() Packet {
	return MarshalPacket(HandshakePacketID, h.ProtocolVersion, h.ServerAddress, h.ServerPort, h.NextState)
}

// UnmarshalServerBoundHandshake decodes a handshake Packet's fields.
func UnmarshalServerBoundHandshake(pk Packet) (ServerBoundHandshake, error) {
	var h ServerBoundHandshake
	if pk.ID != HandshakePacketID {
		return h, ErrUnexpectedPacket
	}
	err := pk.Scan(&h.ProtocolVersion, &h.ServerAddress, &h.ServerPort, &h.NextState)
	return h, err
}

// IsStatusRequest reports whether the handshake asks to move into the
// status state.
func (h ServerBoundHandshake) IsStatusRequest() bool {
	return h.NextState == VarInt(StatusState)
}

// IsLoginRequest reports whether the handshake asks to move into the login
// state.
func (h ServerBoundHandshake) IsLoginRequest() bool {
	return h.NextState == VarInt(LoginState)
}

// IsForgeAddress reports whether the server-address field carries a
// Forge/FML mod-list marker, spliced in by modded clients after the
// hostname the user actually typed.
func (h ServerBoundHandshake) IsForgeAddress() bool {
	return strings.Contains(string(h.ServerAddress), forgeSeparator)
}

// ParseServerAddress returns the hostname portion of the server-address
// field, with any Forge marker stripped off.
func (h ServerBoundHandshake) ParseServerAddress() string {
	addr := string(h.ServerAddress)
	if i := strings.Index(addr, forgeSeparator); i >= 0 {
		return addr[:i]
	}
	return addr
}
