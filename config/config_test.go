package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteConfigThenReadConfigRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lazygate.json")

	want := Default()
	if err := WriteConfig(path, want); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	got, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch:\n%s", diff)
	}
}

func TestVerifyConfigRejectsMissingAddresses(t *testing.T) {
	cfg := Default()
	cfg.Network.PublicAddress = ""
	if err := VerifyConfig(cfg); err == nil {
		t.Fatal("expected an error for a missing public address")
	}
}

func TestVerifyConfigAcceptsDefaults(t *testing.T) {
	if err := VerifyConfig(Default()); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}
}

func TestOverlayEnvOverridesRconPassword(t *testing.T) {
	t.Setenv("LAZYGATE_RCON_PASSWORD", "secret")
	cfg := OverlayEnv(Default())
	if cfg.Server.RconPassword != "secret" {
		t.Fatalf("got %q, want %q", cfg.Server.RconPassword, "secret")
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("missing .env should not be an error: %v", err)
	}
}

func TestLoadDotEnvReadsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LAZYGATE_RCON_PASSWORD=fromenv\n"), 0o644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("LAZYGATE_RCON_PASSWORD"); got != "fromenv" {
		t.Fatalf("got %q", got)
	}
}
