package lobby

import (
	"net"
	"testing"

	"github.com/dragonmc/lazygate/mc"
)

func TestKickHoldSendsLoginDisconnect(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	done := make(chan error, 1)
	go func() {
		done <- KickHold(mc.NewConn(server), "Server is starting, please reconnect in a moment")
	}()

	pk, err := mc.ReadPacket(mc.NewConn(client))
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	if pk.ID != mc.LoginDisconnectPacketID {
		t.Fatalf("got packet id %x, want %x", pk.ID, mc.LoginDisconnectPacketID)
	}
	if err := <-done; err != nil {
		t.Fatalf("KickHold: %v", err)
	}
}
