package mc

import "testing"

func TestOfflineUUIDIsDeterministic(t *testing.T) {
	a := OfflineUUID("Alice")
	b := OfflineUUID("Alice")
	if a != b {
		t.Fatalf("offline UUID must be deterministic for the same name: %v != %v", a, b)
	}
	if c := OfflineUUID("Bob"); c == a {
		t.Fatalf("different names must not collide: %v", c)
	}
}

func TestOfflineUUIDSetsVersionAndVariant(t *testing.T) {
	u := OfflineUUID("Alice")
	if version := u[6] >> 4; version != 0x3 {
		t.Fatalf("expected version 3, got %x", version)
	}
	if variant := u[8] >> 6; variant != 0x2 {
		t.Fatalf("expected RFC 4122 variant (0b10), got %b", variant)
	}
}

func TestLoginStartRoundTrip(t *testing.T) {
	want := ServerBoundLoginStart{Name: "Alice"}
	got, err := UnmarshalServerBoundLoginStart(want.Marshal())
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
