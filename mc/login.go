package mc

import (
	"bytes"
	"crypto/md5"
)

const (
	LoginStartPacketID      byte = 0x00
	LoginDisconnectPacketID byte = 0x00
	LoginSuccessPacketID    byte = 0x02
)

// ServerBoundLoginStart is the first packet of the login sequence, naming
// the player the client claims to be.
type ServerBoundLoginStart struct {
	Name String
}

// Marshal encodes the login start as a Packet.
func (l ServerBoundLoginStart) Marshal() Packet {
	return MarshalPacket(LoginStartPacketID, l.Name)
}

// UnmarshalServerBoundLoginStart decodes a login-start Packet's fields.
func UnmarshalServerBoundLoginStart(pk Packet) (ServerBoundLoginStart, error) {
	var l ServerBoundLoginStart
	if pk.ID != LoginStartPacketID {
		return l, ErrUnexpectedPacket
	}
	name, err := DecodeBoundedString(bytes.NewReader(pk.Data))
	l.Name = String(name)
	return l, err
}

// ClientBoundLoginDisconnect kicks a client still in the login state,
// carrying a chat-component reason.
type ClientBoundLoginDisconnect struct {
	Reason Chat
}

// Marshal encodes the login disconnect as a Packet.
func (d ClientBoundLoginDisconnect) Marshal() Packet {
	return MarshalPacket(LoginDisconnectPacketID, d.Reason)
}

// ClientBoundLoginSuccess completes the login handshake, informing the
// client of the identity it has been granted.
type ClientBoundLoginSuccess struct {
	UUID     UUID
	Username String
}

// Marshal encodes the login success as a Packet.
func (s ClientBoundLoginSuccess) Marshal() Packet {
	return MarshalPacket(LoginSuccessPacketID, s.UUID, s.Username)
}

// OfflineUUID derives the offline-mode player UUID Mojang's client computes
// for unauthenticated logins: a version-3 UUID over the literal bytes of
// "OfflinePlayer:<name>", but NOT the RFC 4122 namespace+name variant --
// Mojang's UUID.nameUUIDFromBytes hashes only the given bytes, with no
// namespace UUID mixed in first. google/uuid.NewMD5 always prepends a
// namespace, so it cannot produce this value; the version/variant bits are
// set by hand instead.
func OfflineUUID(name string) UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = (sum[6] & 0x0f) | 0x30 // version 3
	sum[8] = (sum[8] & 0x3f) | 0x80 // variant RFC 4122
	return UUID(sum)
}
