package mc

import (
	"bytes"
	"testing"
)

func TestVarIntRoundTrip(t *testing.T) {
	cases := []int32{0, 1, 2, 127, 128, 255, 25565, 2097151, -1, -2147483648, 2147483647}
	for _, v := range cases {
		enc := VarInt(v).Encode()
		var got VarInt
		if err := got.Decode(bytes.NewReader(enc)); err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if int32(got) != v {
			t.Fatalf("round trip %d, got %d", v, got)
		}
	}
}

func TestVarIntRefusesOversizedSequence(t *testing.T) {
	// Six continuation bytes in a row is one too many for a 32-bit VarInt.
	raw := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	var v VarInt
	if err := v.Decode(bytes.NewReader(raw)); err != ErrOversizedVarInt {
		t.Fatalf("expected ErrOversizedVarInt, got %v", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	want := "play.example.com"
	enc := String(want).Encode()
	var got String
	if err := got.Decode(bytes.NewReader(enc)); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeBoundedStringRejectsOverlong(t *testing.T) {
	long := make([]byte, MaxBoundedStringLength+1)
	for i := range long {
		long[i] = 'a'
	}
	enc := String(long).Encode()
	if _, err := DecodeBoundedString(bytes.NewReader(enc)); err != ErrStringTooLong {
		t.Fatalf("expected ErrStringTooLong, got %v", err)
	}
}

func TestUnsignedShortRoundTrip(t *testing.T) {
	want := UnsignedShort(25565)
	enc := want.Encode()
	var got UnsignedShort
	if err := got.Decode(bytes.NewReader(enc)); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	want := Double(12345.6789)
	enc := want.Encode()
	var got Double
	if err := got.Decode(bytes.NewReader(enc)); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
