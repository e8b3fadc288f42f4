package mc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStatusResponseRoundTrip(t *testing.T) {
	want := StatusResponse{
		Version:     VersionJSON{Name: "1.16.5", Protocol: 754},
		Players:     PlayersJSON{Max: 20, Online: 0},
		Description: DescriptionJSON{Text: "Server is sleeping"},
	}
	pk, err := NewStatusResponsePacket(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := ParseStatusResponse(pk)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusPingPongEchoesPayload(t *testing.T) {
	ping := ServerBoundStatusPing{Payload: 123456789}
	pong := ClientBoundStatusPong{Payload: ping.Payload}
	pk := pong.Marshal()
	var payload Long
	if err := pk.Scan(&payload); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if payload != ping.Payload {
		t.Fatalf("got %d, want %d", payload, ping.Payload)
	}
}
