// Package rcon sends a single graceful-shutdown command to a Minecraft
// server over the Source RCON protocol, using github.com/gorcon/rcon
// rather than reimplementing AUTH/EXEC/RESP framing by hand.
package rcon

import (
	"fmt"

	"github.com/gorcon/rcon"
)

// ErrUnavailable names the condition of RCON not being configured for a
// backend that needs a graceful stop. Nothing in this package returns it;
// Stop and Dial report dial, auth and command failures as wrapped errors.
var ErrUnavailable = fmt.Errorf("rcon: not configured")

// Stop dials address with password, authenticates, and sends "stop",
// the single command this proxy ever issues over RCON.
func Stop(address, password string) error {
	conn, err := rcon.Dial(address, password)
	if err != nil {
		return fmt.Errorf("rcon dial %s: %w", address, err)
	}
	defer conn.Close()

	if _, err := conn.Execute("stop"); err != nil {
		return fmt.Errorf("rcon stop: %w", err)
	}
	return nil
}

// Client is a reusable RCON connection for callers that want to issue more
// than one command without re-authenticating each time (status polling
// isn't RCON's job here, but future commands -- save-all, whitelist --
// could reuse this).
type Client struct {
	conn *rcon.Conn
}

// Dial authenticates an RCON session against address.
func Dial(address, password string) (*Client, error) {
	conn, err := rcon.Dial(address, password)
	if err != nil {
		return nil, fmt.Errorf("rcon dial %s: %w", address, err)
	}
	return &Client{conn: conn}, nil
}

// Execute sends a command and returns its response text.
func (c *Client) Execute(cmd string) (string, error) {
	return c.conn.Execute(cmd)
}

// Close tears down the RCON connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
