package config

import "time"

// NetworkConfig covers where the proxy listens and where the real backend
// lives.
type NetworkConfig struct {
	PublicAddress        string `json:"public_address"`
	BackendAddress       string `json:"backend_address"`
	ProxyProtocolMode    string `json:"proxy_protocol_mode"` // "off" | "receive" | "send"
	WakeOnStatus         bool   `json:"wake_on_status"`
	RelayStatusToBackend bool   `json:"relay_status_to_backend"`
}

// ServerConfig covers how the backend process itself is started and
// stopped.
type ServerConfig struct {
	StartCommand    string `json:"start_command"`
	WorkingDir      string `json:"working_dir"`
	SendStopViaRcon bool   `json:"send_stop_via_rcon"`
	RconPassword    string `json:"rcon_password"`
	RconPort        int    `json:"rcon_port"`
	WakeOnCrash     bool   `json:"wake_on_crash"`
	WakeOnStart     bool   `json:"wake_on_start"`
	ForgeCompat     bool   `json:"forge_compat"`
}

// TimingConfig covers the lifecycle controller's various deadlines.
type TimingConfig struct {
	SleepAfterSeconds int `json:"sleep_after_seconds"`
	StartTimeout      int `json:"start_timeout_seconds"`
	StopTimeout       int `json:"stop_timeout_seconds"`
	ProbeIntervalMS   int `json:"probe_interval_ms"`
	MinOnlineSeconds  int `json:"min_online_seconds"`
}

// PresentationConfig covers everything shown to a waiting client.
type PresentationConfig struct {
	MotdSleeping    string `json:"motd_sleeping"`
	MotdStarting    string `json:"motd_starting"`
	MotdStopping    string `json:"motd_stopping"`
	FaviconPath     string `json:"favicon_path"`
	KickMessage     string `json:"kick_message"`
	VersionName     string `json:"version_name"`
	ProtocolVersion int    `json:"protocol_version"`
}

// LobbyConfig covers the optional fake-lobby hold.
type LobbyConfig struct {
	Enabled        bool   `json:"enabled"`
	Message        string `json:"message"`
	ReadySound     string `json:"ready_sound"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Configuration is the whole of lazygate's config, loaded once per run and
// treated as immutable except at the atomic-pointer-swap boundary a
// config_reload event walks through.
type Configuration struct {
	Network      NetworkConfig      `json:"network"`
	Server       ServerConfig       `json:"server"`
	Timing       TimingConfig       `json:"timing"`
	Presentation PresentationConfig `json:"presentation"`
	Lobby        LobbyConfig        `json:"lobby"`
}

// Default returns a Configuration with the same defaults lazymc itself
// ships, good enough to run against a local vanilla server out of the box.
func Default() Configuration {
	return Configuration{
		Network: NetworkConfig{
			PublicAddress:        "0.0.0.0:25565",
			BackendAddress:       "127.0.0.1:25566",
			ProxyProtocolMode:    "off",
			WakeOnStatus:         false,
			RelayStatusToBackend: true,
		},
		Server: ServerConfig{
			StartCommand:    "java -Xmx2G -jar server.jar nogui",
			WorkingDir:      ".",
			SendStopViaRcon: true,
			RconPort:        25575,
			WakeOnCrash:     false,
			WakeOnStart:     true,
			ForgeCompat:     false,
		},
		Timing: TimingConfig{
			SleepAfterSeconds: 300,
			StartTimeout:      300,
			StopTimeout:       30,
			ProbeIntervalMS:   200,
			MinOnlineSeconds:  60,
		},
		Presentation: PresentationConfig{
			MotdSleeping:    "☠ Server is sleeping, join to wake it up",
			MotdStarting:    "⏳ Server is starting, please wait",
			MotdStopping:    "⏳ Server is stopping",
			KickMessage:     "Server is starting, please reconnect in a moment",
			VersionName:     "1.16.5",
			ProtocolVersion: 754,
		},
		Lobby: LobbyConfig{
			Enabled:        false,
			Message:        "Server is starting...",
			TimeoutSeconds: 60,
		},
	}
}

// startTimeoutDuration returns the start-timeout as a time.Duration.
func (c Configuration) startTimeoutDuration() time.Duration {
	return time.Duration(c.Timing.StartTimeout) * time.Second
}

// StartTimeout exposes the start timeout as a Duration for callers outside
// this package (the lifecycle controller's timer arming).
func (c Configuration) StartTimeout() time.Duration { return c.startTimeoutDuration() }

// StopTimeout exposes the stop timeout as a Duration.
func (c Configuration) StopTimeout() time.Duration {
	return time.Duration(c.Timing.StopTimeout) * time.Second
}

// SleepAfter exposes the idle threshold as a Duration.
func (c Configuration) SleepAfter() time.Duration {
	return time.Duration(c.Timing.SleepAfterSeconds) * time.Second
}

// ProbeInterval exposes the probe's initial retry backoff as a Duration.
func (c Configuration) ProbeInterval() time.Duration {
	return time.Duration(c.Timing.ProbeIntervalMS) * time.Millisecond
}

// MinOnlineTime exposes the minimum online time as a Duration.
func (c Configuration) MinOnlineTime() time.Duration {
	return time.Duration(c.Timing.MinOnlineSeconds) * time.Second
}

// LobbyTimeout exposes the lobby timeout as a Duration.
func (c Configuration) LobbyTimeout() time.Duration {
	return time.Duration(c.Lobby.TimeoutSeconds) * time.Second
}
