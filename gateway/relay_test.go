package gateway

import (
	"net"
	"testing"
	"time"
)

func TestRelayCopiesBothDirections(t *testing.T) {
	clientLocal, clientRemote := net.Pipe()
	backendLocal, backendRemote := net.Pipe()

	done := make(chan struct{})
	go func() {
		Relay(clientRemote, backendRemote)
		close(done)
	}()

	go clientLocal.Write([]byte("hello backend"))

	buf := make([]byte, 32)
	backendLocal.SetReadDeadline(time.Now().Add(time.Second))
	n, err := backendLocal.Read(buf)
	if err != nil {
		t.Fatalf("reading client->backend bytes: %v", err)
	}
	if string(buf[:n]) != "hello backend" {
		t.Fatalf("got %q", buf[:n])
	}

	go backendLocal.Write([]byte("hello client"))

	buf2 := make([]byte, 32)
	clientLocal.SetReadDeadline(time.Now().Add(time.Second))
	n2, err := clientLocal.Read(buf2)
	if err != nil {
		t.Fatalf("reading backend->client bytes: %v", err)
	}
	if string(buf2[:n2]) != "hello client" {
		t.Fatalf("got %q", buf2[:n2])
	}

	clientLocal.Close()
	backendLocal.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Relay did not return after both sides closed")
	}
}
