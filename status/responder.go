// Package status builds the JSON "server list ping" response from
// configuration and the lifecycle controller's current state.
package status

import (
	"encoding/base64"
	"os"

	"github.com/dragonmc/lazygate/config"
	"github.com/dragonmc/lazygate/lifecycle"
	"github.com/dragonmc/lazygate/mc"
)

// Responder builds StatusResponse documents for the current BackendState.
type Responder struct {
	cfg     config.Configuration
	favicon string // pre-encoded "data:image/png;base64,..." or empty
}

// NewResponder loads the configured favicon (if any) and returns a
// Responder. A missing or unreadable favicon is not fatal -- the field is
// simply omitted, matching spec.md's "otherwise omitted".
func NewResponder(cfg config.Configuration) *Responder {
	r := &Responder{cfg: cfg}
	if cfg.Presentation.FaviconPath != "" {
		if data, err := os.ReadFile(cfg.Presentation.FaviconPath); err == nil {
			r.favicon = "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
		}
	}
	return r
}

// Build produces the StatusResponse for the given snapshot and the
// client's own declared protocol version.
func (r *Responder) Build(snap lifecycle.Snapshot, clientProtocol int32, online int) mc.StatusResponse {
	resp := mc.StatusResponse{
		Version: mc.VersionJSON{
			Name:     r.cfg.Presentation.VersionName,
			Protocol: r.protocolFor(snap, clientProtocol),
		},
		Players: mc.PlayersJSON{
			Max:    r.maxPlayers(snap),
			Online: online,
		},
		Description: mc.DescriptionJSON{Text: r.motdFor(snap.State)},
		Favicon:     r.favicon,
	}
	return resp
}

// protocolFor reports the protocol version the client should see. If the
// client's own declared protocol is newer than what the proxy believes
// the backend supports, the backend's supported protocol is reported
// instead, so a vanilla client shows "incompatible"/"old server" rather
// than a false "compatible" ping. Otherwise the client's own protocol is
// echoed back: while the backend is asleep, the configured protocol
// number is only a best guess, and echoing an equal-or-older client's own
// value avoids a spurious mismatch against that guess.
func (r *Responder) protocolFor(snap lifecycle.Snapshot, clientProtocol int32) int {
	backendProtocol := r.cfg.Presentation.ProtocolVersion
	if snap.Status != nil {
		backendProtocol = snap.Status.Response.Version.Protocol
	}
	if clientProtocol <= 0 || int(clientProtocol) > backendProtocol {
		return backendProtocol
	}
	return int(clientProtocol)
}

func (r *Responder) maxPlayers(snap lifecycle.Snapshot) int {
	if snap.Status != nil {
		return snap.Status.Response.Players.Max
	}
	return 20
}

func (r *Responder) motdFor(state lifecycle.State) string {
	switch state {
	case lifecycle.Starting:
		return r.cfg.Presentation.MotdStarting
	case lifecycle.Stopping:
		return r.cfg.Presentation.MotdStopping
	case lifecycle.Started:
		// Only served when network.relay_status_to_backend is off, or the
		// handler's live probe of the backend failed; otherwise the handler
		// replaces this whole response with the backend's own live status.
		return r.cfg.Presentation.MotdSleeping
	default:
		return r.cfg.Presentation.MotdSleeping
	}
}
