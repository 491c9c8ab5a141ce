// Package config defines application configuration and its loading.
package config

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CameraID selects the capture device.
	CameraID int `koanf:"camera_id"`

	// DBPath overrides the sample database location. Empty means
	// ~/.janken/janken.db.
	DBPath string `koanf:"db_path"`

	// IdleFPS is the frame rate while no hand is visible.
	IdleFPS int `koanf:"idle_fps"`

	// ActiveFPS is the frame rate while a hand is visible or a round
	// is running.
	ActiveFPS int `koanf:"active_fps"`

	// BeatIntervalMs is the delay between countdown beats.
	BeatIntervalMs int `koanf:"beat_interval_ms"`

	// SettleDelayMs is the pause after the go beat before sampling.
	SettleDelayMs int `koanf:"settle_delay_ms"`

	// AnnounceCmd is an external command run with each countdown call
	// or result phrase as its argument (e.g. "say" or "espeak").
	// Empty disables announcements.
	AnnounceCmd string `koanf:"announce_cmd"`

	// AnnounceTimeoutMs bounds each announcement command run.
	AnnounceTimeoutMs int `koanf:"announce_timeout_ms"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:              ":8080",
		CameraID:          0,
		IdleFPS:           5,
		ActiveFPS:         15,
		BeatIntervalMs:    900,
		SettleDelayMs:     500,
		AnnounceTimeoutMs: 3000,
	}
}
