package gateway

import (
	"io"
	"net"
)

// relayBufferSize is the per-direction copy buffer size: 16 KiB, twice the
// 8 KiB floor the relay component calls for.
const relayBufferSize = 16 * 1024

// Relay copies bytes bidirectionally between client and backend until
// either side closes or errors. It holds no per-packet state: whatever
// bytes were already read off client (the replayed handshake+login start)
// must be written to backend by the caller before Relay is invoked.
func Relay(client, backend net.Conn) {
	done := make(chan struct{}, 2)

	go pipe(backend, client, done)
	go pipe(client, backend, done)

	<-done
	<-done
}

// pipe copies from src to dst until EOF or error, then closes both
// connections so the other direction's pipe unblocks too.
func pipe(dst, src net.Conn, done chan<- struct{}) {
	buf := make([]byte, relayBufferSize)
	io.CopyBuffer(dst, src, buf)
	src.Close()
	dst.Close()
	done <- struct{}{}
}
