package gateway

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudflare/tableflip"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dragonmc/lazygate/config"
	"github.com/dragonmc/lazygate/lifecycle"
	"github.com/dragonmc/lazygate/logging"
	"github.com/dragonmc/lazygate/session"
)

// Server owns the public listener, the metrics/reload HTTP endpoint, and
// dispatches every accepted connection to a Handler.
type Server struct {
	cfg        config.Configuration
	configPath string
	controller *lifecycle.Controller
	occupancy  *session.Occupancy
	upg        *tableflip.Upgrader
}

// NewServer builds a Server. The controller must already be running.
// configPath is re-read on every /reload hit.
func NewServer(cfg config.Configuration, configPath string, controller *lifecycle.Controller, occupancy *session.Occupancy) *Server {
	return &Server{cfg: cfg, configPath: configPath, controller: controller, occupancy: occupancy}
}

// ListenAndServe binds the public address and serves forever, performing
// a tableflip zero-downtime handoff on SIGHUP. pidFile may be empty to
// disable tableflip (the teacher's UseTableflip/"docker" escape hatch).
func (s *Server) ListenAndServe(pidFile string) error {
	ln, err := s.createListener(pidFile)
	if err != nil {
		return fmt.Errorf("gateway: listen: %w", err)
	}

	handler := NewHandler(s.cfg, s.controller, s.occupancy)

	go s.serveAPI()
	go s.reportMetrics()

	if s.upg != nil {
		if err := s.upg.Ready(); err != nil {
			return fmt.Errorf("gateway: tableflip ready: %w", err)
		}
		defer s.upg.Stop()
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("gateway: accept: %w", err)
		}
		go handler.Handle(conn)
	}
}

func (s *Server) createListener(pidFile string) (net.Listener, error) {
	if pidFile == "" {
		ln, err := net.Listen("tcp", s.cfg.Network.PublicAddress)
		if err != nil {
			return nil, err
		}
		return wrapInboundListener(ln, s.cfg), nil
	}

	upg, err := tableflip.New(tableflip.Options{PIDFile: pidFile})
	if err != nil {
		return nil, err
	}
	s.upg = upg

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP)
		for range sig {
			if err := upg.Upgrade(); err != nil {
				logging.Printf("gateway: tableflip upgrade failed: %v", err)
			}
		}
	}()

	ln, err := upg.Fds.Listen("tcp", s.cfg.Network.PublicAddress)
	if err != nil {
		return nil, err
	}
	return wrapInboundListener(ln, s.cfg), nil
}

// reportMetrics periodically mirrors occupancy and BackendState into the
// Prometheus gauges; both change far less often than a scrape interval, so
// a cheap poll beats threading gauge updates through every call site.
func (s *Server) reportMetrics() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		occupancyGauge.Set(float64(s.occupancy.Count()))
		backendStateGauge.Set(float64(s.controller.Snapshot().State))
	}
}

// serveAPI exposes /metrics (Prometheus) and /reload (config_reload,
// mirroring the teacher's worker/api.go endpoint).
func (s *Server) serveAPI() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/reload", func(w http.ResponseWriter, r *http.Request) {
		cfg, err := config.ReadConfig(s.configPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.cfg = cfg
		s.controller.ConfigReload(cfg)
		w.WriteHeader(http.StatusOK)
	})
	if err := http.ListenAndServe("127.0.0.1:9100", mux); err != nil {
		logging.Printf("gateway: api server stopped: %v", err)
	}
}
