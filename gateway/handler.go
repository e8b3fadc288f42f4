package gateway

import (
	"net"
	"time"

	"github.com/dragonmc/lazygate/config"
	"github.com/dragonmc/lazygate/lifecycle"
	"github.com/dragonmc/lazygate/lobby"
	"github.com/dragonmc/lazygate/logging"
	"github.com/dragonmc/lazygate/mc"
	"github.com/dragonmc/lazygate/session"
	"github.com/dragonmc/lazygate/status"
)

// handshakeReadTimeout bounds how long a client has to send its handshake
// (and, for Login, its LoginStart) before the connection is dropped,
// mirroring the teacher's deadline around ReadConnection.
const handshakeReadTimeout = 5 * time.Second

// Handler dispatches each accepted connection to status, kick-hold,
// lobby, or relay, per §4.E's classification table.
type Handler struct {
	cfg        config.Configuration
	controller *lifecycle.Controller
	responder  *status.Responder
	occupancy  *session.Occupancy
}

// NewHandler builds a Handler wired to a running Controller.
func NewHandler(cfg config.Configuration, controller *lifecycle.Controller, occupancy *session.Occupancy) *Handler {
	return &Handler{
		cfg:        cfg,
		controller: controller,
		responder:  status.NewResponder(cfg),
		occupancy:  occupancy,
	}
}

// Handle classifies and fully services one accepted client connection. It
// never returns an error to the caller -- every failure is logged and the
// socket is closed, per §7's "errors inside a single client task never
// propagate up".
func (h *Handler) Handle(raw net.Conn) {
	defer raw.Close()
	conn := mc.NewConn(raw)

	raw.SetReadDeadline(time.Now().Add(handshakeReadTimeout))
	pk, err := conn.ReadPacket()
	if err != nil {
		return
	}
	hs, err := mc.UnmarshalServerBoundHandshake(pk)
	if err != nil {
		return
	}
	raw.SetReadDeadline(time.Time{})

	start := time.Now()
	if hs.IsStatusRequest() {
		h.handleStatus(conn, hs)
		requestDuration.WithLabelValues("status").Observe(time.Since(start).Seconds())
		return
	}
	if hs.IsLoginRequest() {
		h.handleLogin(conn, hs)
		requestDuration.WithLabelValues("login").Observe(time.Since(start).Seconds())
	}
}

func (h *Handler) handleStatus(conn *mc.Conn, hs mc.ServerBoundHandshake) {
	if _, err := conn.ReadPacket(); err != nil { // StatusRequest, empty body
		return
	}

	snap := h.controller.Snapshot()
	resp := h.responder.Build(snap, int32(hs.ProtocolVersion), h.occupancy.Count())
	if snap.State == lifecycle.Started && h.cfg.Network.RelayStatusToBackend {
		if live, err := lifecycle.DefaultProbe(h.cfg.Network.BackendAddress); err == nil {
			resp = live.Response
		} else {
			logging.Printf("gateway: live status relay to backend failed, using cached response: %v", err)
		}
	}
	pk, err := mc.NewStatusResponsePacket(resp)
	if err != nil {
		logging.Printf("gateway: marshalling status response: %v", err)
		return
	}
	if err := conn.WritePacket(pk); err != nil {
		return
	}

	if h.cfg.Network.WakeOnStatus {
		h.occupancy.Inc()
		defer h.occupancy.Dec()
	}

	pingPk, err := conn.ReadPacket()
	if err != nil {
		return
	}
	ping, err := mc.UnmarshalServerBoundStatusPing(pingPk)
	if err != nil {
		return
	}
	conn.WriteMcPacket(mc.ClientBoundStatusPong{Payload: ping.Payload})
}

func (h *Handler) handleLogin(conn *mc.Conn, hs mc.ServerBoundHandshake) {
	conn.SetReadDeadline(time.Now().Add(handshakeReadTimeout))
	loginPk, err := conn.ReadPacket()
	if err != nil {
		return
	}
	conn.SetReadDeadline(time.Time{})
	loginStart, err := mc.UnmarshalServerBoundLoginStart(loginPk)
	if err != nil {
		return
	}

	snap := h.controller.Snapshot()
	switch snap.State {
	case lifecycle.Started:
		h.relayToBackend(conn, hs, loginPk, loginStart)
	case lifecycle.Stopped, lifecycle.Starting, lifecycle.Crashed:
		h.controller.EnsureRunning()
		sess := session.NewLoginSession(conn.RemoteAddr(), int32(hs.ProtocolVersion), string(loginStart.Name))
		if h.cfg.Lobby.Enabled {
			h.runLobby(conn, sess)
		} else {
			lobby.KickHold(conn, h.cfg.Presentation.MotdStarting)
		}
	case lifecycle.Stopping:
		lobby.KickHold(conn, h.cfg.Presentation.KickMessage)
	}
}

func (h *Handler) runLobby(conn *mc.Conn, sess session.Session) {
	sess.Role = session.RoleInLobby
	h.occupancy.Inc()
	defer h.occupancy.Dec()

	ready := make(chan struct{})
	cancel := make(chan struct{})
	defer close(cancel)
	go h.waitForStarted(ready, cancel)

	lobby.RunLobby(conn, sess, h.cfg, ready)
}

// waitForStarted polls the controller until it reports Started, then
// signals ready, or stops as soon as cancel is closed. The lobby's own
// timeout bounds how long a client task waits; cancel is what stops this
// goroutine from polling forever once RunLobby has returned by any other
// path (timeout, client closed, error).
func (h *Handler) waitForStarted(ready chan<- struct{}, cancel <-chan struct{}) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			if h.controller.Snapshot().State == lifecycle.Started {
				select {
				case ready <- struct{}{}:
				case <-cancel:
				}
				return
			}
		}
	}
}

func (h *Handler) relayToBackend(conn *mc.Conn, hs mc.ServerBoundHandshake, loginPk mc.Packet, loginStart mc.ServerBoundLoginStart) {
	backendConn, err := net.DialTimeout("tcp", h.cfg.Network.BackendAddress, 5*time.Second)
	if err != nil {
		logging.Printf("gateway: dialing backend: %v", err)
		return
	}
	defer backendConn.Close()

	if h.cfg.Network.ProxyProtocolMode == "send" {
		if err := prependOutboundHeader(backendConn, conn.RemoteAddr(), backendConn.RemoteAddr()); err != nil {
			logging.Printf("gateway: writing proxy protocol header: %v", err)
			return
		}
	}

	// Replay the handshake and login-start verbatim -- the backend must
	// see exactly what the client sent, Forge marker and all.
	if _, err := backendConn.Write(hs.Marshal().Bytes()); err != nil {
		return
	}
	if _, err := backendConn.Write((mc.Packet{ID: loginPk.ID, Data: loginPk.Data}).Bytes()); err != nil {
		return
	}

	h.occupancy.Inc()
	defer h.occupancy.Dec()

	Relay(conn, backendConn)
}
