// Command lazygate is a transparent front-end for a Minecraft Java Edition
// server: it listens on the public game port, answers status pings and
// holds clients through login while the backend is asleep, and starts the
// real server on demand.
package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dragonmc/lazygate/config"
	"github.com/dragonmc/lazygate/gateway"
	"github.com/dragonmc/lazygate/lifecycle"
	"github.com/dragonmc/lazygate/session"
)

// version is stamped at build time via -ldflags; "dev" otherwise.
var version = "dev"

const (
	exitOK           = 0
	exitConfigError  = 1
	exitStartTimeout = 2
	exitIOError      = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return exitOK
}

type exitCoded struct {
	code int
	err  error
}

func (e exitCoded) Error() string { return e.err.Error() }

func exitCodeFor(err error) int {
	if ec, ok := err.(exitCoded); ok {
		return ec.code
	}
	return exitIOError
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:     "lazygate",
		Short:   "A transparent, sleep-on-idle front-end for a Minecraft server",
		Version: version,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "lazygate.json", "path to the config file")

	root.AddCommand(newStartCommand(&configPath))
	root.AddCommand(newConfigCommand(&configPath))
	root.AddCommand(newStatusCommand(&configPath))
	return root
}

func newStartCommand(configPath *string) *cobra.Command {
	var pidFile string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the proxy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startProxy(*configPath, pidFile)
		},
	}
	cmd.Flags().StringVar(&pidFile, "pid-file", "", "path to pid file; enables zero-downtime restart via SIGHUP when set")
	return cmd
}

func newConfigCommand(configPath *string) *cobra.Command {
	var outPath string
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := outPath
			if path == "" {
				path = *configPath
			}
			if config.Exists(path) {
				return exitCoded{code: exitConfigError, err: fmt.Errorf("config file already exists at %s", path)}
			}
			if err := config.WriteConfig(path, config.Default()); err != nil {
				return exitCoded{code: exitIOError, err: err}
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	generate.Flags().StringVar(&outPath, "path", "", "where to write the config file (defaults to --config)")
	configCmd.AddCommand(generate)
	return configCmd
}

func newStatusCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the running proxy's local API is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := net.DialTimeout("tcp", "127.0.0.1:9100", 2*time.Second)
			if err != nil {
				return exitCoded{code: exitIOError, err: fmt.Errorf("proxy does not appear to be running: %w", err)}
			}
			conn.Close()
			fmt.Println("proxy is reachable")
			return nil
		},
	}
}

func startProxy(configPath, pidFile string) error {
	if err := config.LoadDotEnv("."); err != nil {
		return exitCoded{code: exitConfigError, err: err}
	}

	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		return exitCoded{code: exitConfigError, err: err}
	}
	cfg = config.OverlayEnv(cfg)
	if err := config.VerifyConfig(cfg); err != nil {
		return exitCoded{code: exitConfigError, err: err}
	}

	controller := lifecycle.NewController(cfg, lifecycle.DefaultSpawn, lifecycle.DefaultProbe)
	stop := make(chan struct{})
	go controller.Run(stop)
	defer close(stop)

	occupancy := session.NewOccupancy(time.Second, controller.OnOccupancyZero, controller.OnOccupancyNonZero)

	if cfg.Server.WakeOnStart {
		controller.EnsureRunning()
		if err := awaitStartup(controller, cfg.StartTimeout()); err != nil {
			return exitCoded{code: exitStartTimeout, err: err}
		}
	}

	watcher, err := config.NewWatcher(configPath)
	if err == nil {
		go func() {
			for ev := range watcher.Events() {
				if ev.Err == nil {
					controller.ConfigReload(ev.Configuration)
				}
			}
		}()
		defer watcher.Close()
	}

	srv := gateway.NewServer(cfg, configPath, controller, occupancy)
	if err := srv.ListenAndServe(pidFile); err != nil {
		return exitCoded{code: exitIOError, err: err}
	}
	return nil
}

// awaitStartup blocks until the eager wake_on_start attempt either reaches
// Started or is declared Crashed, matching spec.md §6's exit code 2
// ("backend failed to start within start_timeout").
func awaitStartup(controller *lifecycle.Controller, timeout time.Duration) error {
	deadline := time.Now().Add(timeout + time.Second)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		switch controller.Snapshot().State {
		case lifecycle.Started:
			return nil
		case lifecycle.Crashed:
			return fmt.Errorf("backend failed to start within %s", timeout)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("backend failed to start within %s", timeout)
		}
	}
	return nil
}
