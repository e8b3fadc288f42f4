package mc

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadPacketLeavesTrailingBytesUntouched(t *testing.T) {
	first := MarshalPacket(0x00, VarInt(47), String("localhost"), UnsignedShort(25565), VarInt(2))
	second := MarshalPacket(0x00, String("Alice"))

	var buf bytes.Buffer
	buf.Write(first.Bytes())
	buf.Write(second.Bytes())

	got, err := ReadPacket(&buf)
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	if diff := cmp.Diff(first, got); diff != "" {
		t.Fatalf("first packet mismatch:\n%s", diff)
	}

	// The second packet's bytes must still be sitting in the reader,
	// untouched, so they can be relayed verbatim afterwards.
	got2, err := ReadPacket(&buf)
	if err != nil {
		t.Fatalf("ReadPacket second: %v", err)
	}
	if diff := cmp.Diff(second, got2); diff != "" {
		t.Fatalf("second packet mismatch:\n%s", diff)
	}
}

func TestReadPacketRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(VarInt(MaxPacketSize + 1).Encode())
	if _, err := ReadPacket(&buf); err != ErrPacketTooBig {
		t.Fatalf("expected ErrPacketTooBig, got %v", err)
	}
}

func TestReadPacketRejectsZeroLength(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(VarInt(0).Encode())
	if _, err := ReadPacket(&buf); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
