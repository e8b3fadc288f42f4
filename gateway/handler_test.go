package gateway

import (
	"net"
	"testing"
	"time"

	"github.com/dragonmc/lazygate/config"
	"github.com/dragonmc/lazygate/lifecycle"
	"github.com/dragonmc/lazygate/mc"
	"github.com/dragonmc/lazygate/session"
)

func newTestHandler(cfg config.Configuration) *Handler {
	controller := lifecycle.NewController(cfg, func(config.Configuration) (int, <-chan int, error) {
		return 0, nil, nil
	}, func(string) (*lifecycle.ServerStatus, error) {
		return nil, nil
	})
	stop := make(chan struct{})
	go controller.Run(stop)

	occupancy := session.NewOccupancy(time.Second, func() {}, func() {})
	return NewHandler(cfg, controller, occupancy)
}

func TestHandleStatusRespondsWhenStopped(t *testing.T) {
	cfg := config.Default()
	h := newTestHandler(cfg)

	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()

	go h.Handle(serverSide)

	hs := mc.ServerBoundHandshake{
		ProtocolVersion: 754,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       mc.VarInt(mc.StatusState),
	}
	if err := mc.NewConn(clientSide).WriteMcPacket(hs); err != nil {
		t.Fatalf("writing handshake: %v", err)
	}
	if err := mc.NewConn(clientSide).WritePacket(mc.Packet{ID: mc.StatusRequestPacketID}); err != nil {
		t.Fatalf("writing status request: %v", err)
	}

	clientConn := mc.NewConn(clientSide)
	clientSide.SetReadDeadline(time.Now().Add(time.Second))
	pk, err := clientConn.ReadPacket()
	if err != nil {
		t.Fatalf("reading status response: %v", err)
	}
	resp, err := mc.ParseStatusResponse(pk)
	if err != nil {
		t.Fatalf("parsing status response: %v", err)
	}
	if resp.Description.Text != cfg.Presentation.MotdSleeping {
		t.Fatalf("got %q, want %q", resp.Description.Text, cfg.Presentation.MotdSleeping)
	}
}
