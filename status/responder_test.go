package status

import (
	"testing"

	"github.com/dragonmc/lazygate/config"
	"github.com/dragonmc/lazygate/lifecycle"
)

func TestBuildReportsSleepingMotdWhenStopped(t *testing.T) {
	cfg := config.Default()
	r := NewResponder(cfg)

	resp := r.Build(lifecycle.Snapshot{State: lifecycle.Stopped}, 754, 0)
	if resp.Description.Text != cfg.Presentation.MotdSleeping {
		t.Fatalf("got %q, want %q", resp.Description.Text, cfg.Presentation.MotdSleeping)
	}
	if resp.Players.Online != 0 {
		t.Fatalf("expected 0 online, got %d", resp.Players.Online)
	}
}

func TestBuildReportsStartingMotd(t *testing.T) {
	cfg := config.Default()
	r := NewResponder(cfg)

	resp := r.Build(lifecycle.Snapshot{State: lifecycle.Starting}, 754, 0)
	if resp.Description.Text != cfg.Presentation.MotdStarting {
		t.Fatalf("got %q, want %q", resp.Description.Text, cfg.Presentation.MotdStarting)
	}
}

func TestBuildReportsConfiguredProtocolToNewerClient(t *testing.T) {
	cfg := config.Default()
	r := NewResponder(cfg)

	resp := r.Build(lifecycle.Snapshot{State: lifecycle.Stopped}, 9999, 0)
	if resp.Version.Protocol != cfg.Presentation.ProtocolVersion {
		t.Fatalf("got %d, want %d", resp.Version.Protocol, cfg.Presentation.ProtocolVersion)
	}
}
