package mc

import (
	"bytes"
	"encoding/json"
)

const (
	StatusRequestPacketID  byte = 0x00
	StatusResponsePacketID byte = 0x00
	StatusPingPacketID     byte = 0x01
	StatusPongPacketID     byte = 0x01
)

// ServerBoundStatusRequest carries no fields; its presence alone asks for
// a status response.
type ServerBoundStatusRequest struct{}

// UnmarshalServerBoundStatusRequest validates the packet ID of an
// (empty) status request.
func UnmarshalServerBoundStatusRequest(pk Packet) (ServerBoundStatusRequest, error) {
	if pk.ID != StatusRequestPacketID {
		return ServerBoundStatusRequest{}, ErrUnexpectedPacket
	}
	return ServerBoundStatusRequest{}, nil
}

// ServerBoundStatusPing echoes a client-chosen payload that the proxy must
// return unchanged in a Pong.
type ServerBoundStatusPing struct {
	Payload Long
}

// UnmarshalServerBoundStatusPing decodes a status ping Packet.
func UnmarshalServerBoundStatusPing(pk Packet) (ServerBoundStatusPing, error) {
	var p ServerBoundStatusPing
	if pk.ID != StatusPingPacketID {
		return p, ErrUnexpectedPacket
	}
	err := pk.Scan(&p.Payload)
	return p, err
}

// ClientBoundStatusPong is the reply to a ServerBoundStatusPing, carrying
// the same payload back.
type ClientBoundStatusPong struct {
	Payload Long
}

// Marshal encodes the status pong as a Packet.
func (p ClientBoundStatusPong) Marshal() Packet {
	return MarshalPacket(StatusPongPacketID, p.Payload)
}

// StatusResponse is the JSON document served for server-list ping,
// matching the Notchian wire format.
type StatusResponse struct {
	Version     VersionJSON     `json:"version"`
	Players     PlayersJSON     `json:"players"`
	Description DescriptionJSON `json:"description"`
	Favicon     string          `json:"favicon,omitempty"`
}

type VersionJSON struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type PlayersJSON struct {
	Max    int                `json:"max"`
	Online int                `json:"online"`
	Sample []PlayerSampleJSON `json:"sample,omitempty"`
}

type PlayerSampleJSON struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// DescriptionJSON is a minimal chat-component carrying the MOTD as plain
// text; the status package fills Text directly from the configured MOTD.
type DescriptionJSON struct {
	Text string `json:"text"`
}

// ClientBoundStatusResponse wraps the marshalled StatusResponse JSON as the
// single String field the wire protocol expects.
type ClientBoundStatusResponse struct {
	JSONResponse String
}

// Marshal encodes the status response as a Packet.
func (r ClientBoundStatusResponse) Marshal() Packet {
	return MarshalPacket(StatusResponsePacketID, r.JSONResponse)
}

// NewStatusResponsePacket marshals a StatusResponse to JSON and wraps it.
func NewStatusResponsePacket(resp StatusResponse) (Packet, error) {
	buf, err := json.Marshal(resp)
	if err != nil {
		return Packet{}, err
	}
	return ClientBoundStatusResponse{JSONResponse: String(buf)}.Marshal(), nil
}

// ParseStatusResponse decodes a status-response Packet's JSON body, used
// by the probe to validate the backend's reply.
func ParseStatusResponse(pk Packet) (StatusResponse, error) {
	var resp StatusResponse
	if pk.ID != StatusResponsePacketID {
		return resp, ErrUnexpectedPacket
	}
	var raw String
	if err := pk.Scan(&raw); err != nil {
		return resp, err
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	if err := dec.Decode(&resp); err != nil {
		return resp, ErrMalformed
	}
	return resp, nil
}
