package rcon

import "testing"

func TestDialUnreachableAddressFails(t *testing.T) {
	if _, err := Dial("127.0.0.1:1", "wrong"); err == nil {
		t.Fatal("expected an error dialing an unreachable address")
	}
}

func TestStopUnreachableAddressFails(t *testing.T) {
	if err := Stop("127.0.0.1:1", "wrong"); err == nil {
		t.Fatal("expected an error stopping an unreachable address")
	}
}
