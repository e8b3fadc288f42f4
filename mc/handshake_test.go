package mc

import "testing"

func TestHandshakeRoundTrip(t *testing.T) {
	want := ServerBoundHandshake{
		ProtocolVersion: 754,
		ServerAddress:   "play.example.com",
		ServerPort:      25565,
		NextState:       VarInt(LoginState),
	}
	got, err := UnmarshalServerBoundHandshake(want.Marshal())
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if !got.IsLoginRequest() || got.IsStatusRequest() {
		t.Fatalf("expected login intent, got %+v", got)
	}
}

func TestForgeMarkerDetectionAndStrip(t *testing.T) {
	h := ServerBoundHandshake{ServerAddress: String("play.example.com\x00FML2\x00")}
	if !h.IsForgeAddress() {
		t.Fatal("expected Forge marker to be detected")
	}
	if got := h.ParseServerAddress(); got != "play.example.com" {
		t.Fatalf("got %q, want %q", got, "play.example.com")
	}
}

func TestPlainAddressIsNotForge(t *testing.T) {
	h := ServerBoundHandshake{ServerAddress: "play.example.com"}
	if h.IsForgeAddress() {
		t.Fatal("plain address should not be detected as Forge")
	}
	if got := h.ParseServerAddress(); got != "play.example.com" {
		t.Fatalf("got %q", got)
	}
}
