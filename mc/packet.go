package mc

import (
	"bytes"
	"io"
)

// MaxPacketSize bounds how much a single frame may claim to carry, guarding
// per-client memory per the resource caps in the concurrency model.
var MaxPacketSize = 2 * 1024 * 1024

// Packet is the raw representation of a frame exchanged between client and
// backend: VarInt length, VarInt packet ID, payload.
type Packet struct {
	ID   byte
	Data []byte
}

// McPacket is implemented by every typed packet this codec knows about.
type McPacket interface {
	Marshal() Packet
}

// Scan decodes the packet's data into the given fields, in order.
func (pk Packet) Scan(fields ...FieldDecoder) error {
	return ScanFields(bytes.NewReader(pk.Data), fields...)
}

// Bytes encodes the packet as length-prefixed bytes ready to write to a
// socket.
func (pk Packet) Bytes() []byte {
	body := make([]byte, 0, len(pk.Data)+1)
	body = append(body, pk.ID)
	body = append(body, pk.Data...)
	out := VarInt(len(body)).Encode()
	return append(out, body...)
}

// ScanFields decodes a byte stream into fields in order, stopping at the
// first error.
func ScanFields(r DecodeReader, fields ...FieldDecoder) error {
	for _, field := range fields {
		if err := field.Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// MarshalPacket builds a Packet from an ID and a sequence of encoded fields.
func MarshalPacket(id byte, fields ...FieldEncoder) Packet {
	pk := Packet{ID: id}
	for _, f := range fields {
		pk.Data = append(pk.Data, f.Encode()...)
	}
	return pk
}

// ReadPacket reads one length-prefixed frame from r and splits it into ID
// and payload. Bytes beyond this frame are left untouched in the underlying
// reader, which is what lets a caller relay them verbatim afterwards.
func ReadPacket(r DecodeReader) (Packet, error) {
	var length VarInt
	if err := length.Decode(r); err != nil {
		return Packet{}, err
	}
	if length < 1 {
		return Packet{}, ErrMalformed
	}
	if int(length) > MaxPacketSize {
		return Packet{}, ErrPacketTooBig
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return Packet{}, ErrTruncated
	}

	return Packet{ID: data[0], Data: data[1:]}, nil
}
