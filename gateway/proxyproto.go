package gateway

import (
	"net"

	"github.com/pires/go-proxyproto"

	"github.com/dragonmc/lazygate/config"
)

// wrapInboundListener wraps ln in a PROXY-protocol-v2-aware listener when
// the operator expects an upstream load balancer to prepend one, matching
// the teacher's own `accept_proxy_protocol` handling in createListener.
func wrapInboundListener(ln net.Listener, cfg config.Configuration) net.Listener {
	if cfg.Network.ProxyProtocolMode != "receive" {
		return ln
	}
	policyFunc := func(upstream net.Addr) (proxyproto.Policy, error) {
		return proxyproto.REQUIRE, nil
	}
	return &proxyproto.Listener{Listener: ln, Policy: policyFunc}
}

// prependOutboundHeader writes a PROXY v2 header onto the backend
// connection before any Minecraft bytes, preserving the real client
// address for a backend that itself understands PROXY protocol.
func prependOutboundHeader(backendConn net.Conn, clientAddr, destAddr net.Addr) error {
	header := &proxyproto.Header{
		Version:           2,
		Command:           proxyproto.PROXY,
		TransportProtocol: proxyproto.TCPv4,
		SourceAddr:        clientAddr,
		DestinationAddr:   destAddr,
	}
	_, err := header.WriteTo(backendConn)
	return err
}
