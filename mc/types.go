package mc

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/google/uuid"
)

// A Field is both FieldEncoder and FieldDecoder, following the teacher's
// split between reading and writing a protocol value.
type Field interface {
	FieldEncoder
	FieldDecoder
}

// FieldEncoder can encode itself as used by the Minecraft protocol.
type FieldEncoder interface {
	Encode() []byte
}

// FieldDecoder can decode itself from the Minecraft protocol.
type FieldDecoder interface {
	Decode(r DecodeReader) error
}

// DecodeReader is both io.Reader and io.ByteReader, the minimum a field
// decoder needs.
type DecodeReader interface {
	io.ByteReader
	io.Reader
}

const (
	// MaxStringLength is the general string length cap (in runes).
	MaxStringLength = 32767
	// MaxBoundedStringLength caps usernames and server addresses.
	MaxBoundedStringLength = 255
)

type (
	// Boolean is a single byte, 0x00 false, 0x01 true.
	Boolean bool
	// Byte is a signed 8-bit integer, two's complement.
	Byte int8
	// UnsignedByte is an unsigned 8-bit integer.
	UnsignedByte uint8
	// Short is a signed 16-bit integer.
	Short int16
	// UnsignedShort is an unsigned 16-bit integer.
	UnsignedShort uint16
	// Int is a signed 32-bit integer.
	Int int32
	// Long is a signed 64-bit integer.
	Long int64
	// Float is an IEEE 754 single-precision float.
	Float float32
	// Double is an IEEE 754 double-precision float.
	Double float64
	// String is a sequence of Unicode scalar values, capped at
	// MaxStringLength runes.
	String string
	// Chat is a JSON text component, encoded as a String.
	Chat = String
	// Identifier is a namespaced resource identifier, encoded as a String.
	Identifier = String
	// VarInt is a variable-length two's complement signed 32-bit integer.
	VarInt int32
	// VarLong is a variable-length two's complement signed 64-bit integer.
	VarLong int64
)

// ReadNBytes reads exactly n bytes from a DecodeReader.
func ReadNBytes(r DecodeReader, n int) ([]byte, error) {
	bb := make([]byte, n)
	if _, err := io.ReadFull(r, bb); err != nil {
		return nil, ErrTruncated
	}
	return bb, nil
}

func (b Boolean) Encode() []byte {
	if b {
		return []byte{0x01}
	}
	return []byte{0x00}
}

func (b *Boolean) Decode(r DecodeReader) error {
	v, err := r.ReadByte()
	if err != nil {
		return ErrTruncated
	}
	*b = v != 0x00
	return nil
}

func (v Byte) Encode() []byte { return []byte{byte(v)} }

func (v *Byte) Decode(r DecodeReader) error {
	b, err := r.ReadByte()
	if err != nil {
		return ErrTruncated
	}
	*v = Byte(b)
	return nil
}

func (v UnsignedByte) Encode() []byte { return []byte{byte(v)} }

func (v *UnsignedByte) Decode(r DecodeReader) error {
	b, err := r.ReadByte()
	if err != nil {
		return ErrTruncated
	}
	*v = UnsignedByte(b)
	return nil
}

func (v Short) Encode() []byte {
	bb := make([]byte, 2)
	binary.BigEndian.PutUint16(bb, uint16(v))
	return bb
}

func (v *Short) Decode(r DecodeReader) error {
	bb, err := ReadNBytes(r, 2)
	if err != nil {
		return err
	}
	*v = Short(binary.BigEndian.Uint16(bb))
	return nil
}

func (v UnsignedShort) Encode() []byte {
	bb := make([]byte, 2)
	binary.BigEndian.PutUint16(bb, uint16(v))
	return bb
}

func (v *UnsignedShort) Decode(r DecodeReader) error {
	bb, err := ReadNBytes(r, 2)
	if err != nil {
		return err
	}
	*v = UnsignedShort(binary.BigEndian.Uint16(bb))
	return nil
}

func (v Int) Encode() []byte {
	bb := make([]byte, 4)
	binary.BigEndian.PutUint32(bb, uint32(v))
	return bb
}

func (v *Int) Decode(r DecodeReader) error {
	bb, err := ReadNBytes(r, 4)
	if err != nil {
		return err
	}
	*v = Int(binary.BigEndian.Uint32(bb))
	return nil
}

func (v Long) Encode() []byte {
	bb := make([]byte, 8)
	binary.BigEndian.PutUint64(bb, uint64(v))
	return bb
}

func (v *Long) Decode(r DecodeReader) error {
	bb, err := ReadNBytes(r, 8)
	if err != nil {
		return err
	}
	*v = Long(binary.BigEndian.Uint64(bb))
	return nil
}

func (v Float) Encode() []byte {
	bb := make([]byte, 4)
	binary.BigEndian.PutUint32(bb, math.Float32bits(float32(v)))
	return bb
}

func (v *Float) Decode(r DecodeReader) error {
	bb, err := ReadNBytes(r, 4)
	if err != nil {
		return err
	}
	*v = Float(math.Float32frombits(binary.BigEndian.Uint32(bb)))
	return nil
}

func (v Double) Encode() []byte {
	bb := make([]byte, 8)
	binary.BigEndian.PutUint64(bb, math.Float64bits(float64(v)))
	return bb
}

func (v *Double) Decode(r DecodeReader) error {
	bb, err := ReadNBytes(r, 8)
	if err != nil {
		return err
	}
	*v = Double(math.Float64frombits(binary.BigEndian.Uint64(bb)))
	return nil
}

// Encode a String as a VarInt byte length followed by its UTF-8 bytes. The
// MaxStringLength cap is enforced only when decoding.
func (s String) Encode() []byte {
	raw := []byte(s)
	bb := VarInt(len(raw)).Encode()
	return append(bb, raw...)
}

// Decode a String, rejecting anything over MaxStringLength runes.
func (s *String) Decode(r DecodeReader) error {
	return decodeBoundedString(r, MaxStringLength, (*string)(s))
}

// DecodeBoundedString decodes a string capped at MaxBoundedStringLength, used
// for usernames and the handshake's server address field.
func DecodeBoundedString(r DecodeReader) (string, error) {
	var s string
	err := decodeBoundedString(r, MaxBoundedStringLength, &s)
	return s, err
}

func decodeBoundedString(r DecodeReader, max int, out *string) error {
	var l VarInt
	if err := l.Decode(r); err != nil {
		return err
	}
	if l < 0 || int(l) > max*4 {
		return ErrStringTooLong
	}
	bb, err := ReadNBytes(r, int(l))
	if err != nil {
		return err
	}
	if len([]rune(string(bb))) > max {
		return ErrStringTooLong
	}
	*out = string(bb)
	return nil
}

// Encode a VarInt.
func (v VarInt) Encode() []byte {
	num := uint32(v)
	var bb []byte
	for {
		b := byte(num & 0x7F)
		num >>= 7
		if num != 0 {
			b |= 0x80
		}
		bb = append(bb, b)
		if num == 0 {
			return bb
		}
	}
}

// Decode a VarInt, refusing sequences of 6 or more bytes.
func (v *VarInt) Decode(r DecodeReader) error {
	var n uint32
	for i := 0; ; i++ {
		sec, err := r.ReadByte()
		if err != nil {
			return ErrTruncated
		}
		n |= uint32(sec&0x7F) << uint(7*i)
		if i >= 5 {
			return ErrOversizedVarInt
		}
		if sec&0x80 == 0 {
			break
		}
	}
	*v = VarInt(n)
	return nil
}

// Encode a VarLong.
func (v VarLong) Encode() []byte {
	num := uint64(v)
	var bb []byte
	for {
		b := byte(num & 0x7F)
		num >>= 7
		if num != 0 {
			b |= 0x80
		}
		bb = append(bb, b)
		if num == 0 {
			return bb
		}
	}
}

// Decode a VarLong, refusing sequences of 11 or more bytes.
func (v *VarLong) Decode(r DecodeReader) error {
	var n uint64
	for i := 0; ; i++ {
		sec, err := r.ReadByte()
		if err != nil {
			return ErrTruncated
		}
		n |= uint64(sec&0x7F) << uint(7*i)
		if i >= 10 {
			return ErrOversizedVarInt
		}
		if sec&0x80 == 0 {
			break
		}
	}
	*v = VarLong(n)
	return nil
}

// UUID is a 128-bit value, encoded big-endian.
type UUID [16]byte

// String formats u in the standard hyphenated form, via google/uuid --
// the wire layout is our own, but the textual representation (used in
// logs and the ClientSession the gateway tracks) is exactly what that
// library already knows how to print.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

func (u UUID) Encode() []byte {
	bb := make([]byte, 16)
	copy(bb, u[:])
	return bb
}

func (u *UUID) Decode(r DecodeReader) error {
	bb, err := ReadNBytes(r, 16)
	if err != nil {
		return err
	}
	copy(u[:], bb)
	return nil
}
