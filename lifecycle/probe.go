package lifecycle

import (
	"net"
	"time"

	"github.com/dragonmc/lazygate/mc"
)

// DefaultProbe opens a TCP connection to address, performs a handshake and
// status request, and parses the reply -- the same exchange a real client
// makes for server-list ping, issued by the proxy against its own backend
// to confirm it is actually accepting logins.
func DefaultProbe(address string) (*ServerStatus, error) {
	conn, err := net.DialTimeout("tcp", address, 1500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(2 * time.Second))

	c := mc.NewConn(conn)

	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		host, portStr = address, "25565"
	}
	var port uint64
	for _, ch := range portStr {
		if ch < '0' || ch > '9' {
			break
		}
		port = port*10 + uint64(ch-'0')
	}

	hs := mc.ServerBoundHandshake{
		ProtocolVersion: -1,
		ServerAddress:   mc.String(host),
		ServerPort:      mc.UnsignedShort(port),
		NextState:       mc.VarInt(mc.StatusState),
	}
	if err := c.WriteMcPacket(hs); err != nil {
		return nil, err
	}
	if err := c.WritePacket(mc.Packet{ID: mc.StatusRequestPacketID}); err != nil {
		return nil, err
	}

	pk, err := c.ReadPacket()
	if err != nil {
		return nil, err
	}
	resp, err := mc.ParseStatusResponse(pk)
	if err != nil {
		return nil, err
	}
	if resp.Version.Name == "" {
		return nil, mc.ErrMalformed
	}

	return &ServerStatus{Response: resp, CachedAt: time.Now()}, nil
}
