package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/iburimskiy/vybe/internal/mathutil"
)

const (
	WindowTitle = "VYBE - Space: Play/Pause, N/P: Next/Prev, O: Add track, C: Contact, Esc/Q: Quit"

	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800

	// Background layer
	BackdropLayerID = "bg-canvas"

	// Player panel dimensions
	PlayerWidth         = 250
	PlayerExpandedWidth = 280
	PlayerHeight        = 64
	PlayerExpandedExtra = 56
	PlayerMargin        = 20

	LevelRingSize   = 8192
	SmoothingFactor = 0.6

	// Nav bar
	NavHeight   = 64
	NavCompactH = 44
)

// Config holds runtime settings read from the environment.
type Config struct {
	WindowWidth    int           `env:"VYBE_WINDOW_WIDTH"     envDefault:"1280"`
	WindowHeight   int           `env:"VYBE_WINDOW_HEIGHT"    envDefault:"800"`
	Splash         bool          `env:"VYBE_SPLASH"           envDefault:"true"`
	Volume         float64       `env:"VYBE_VOLUME"           envDefault:"0.4"`
	Playlist       []string      `env:"VYBE_PLAYLIST"         envDefault:"VYBE|A Masterpiece|songs/music.mp3" envSeparator:";"`
	WebhookURL     string        `env:"VYBE_CONTACT_WEBHOOK"`
	WebhookTimeout time.Duration `env:"VYBE_CONTACT_TIMEOUT"  envDefault:"10s"`
	Seed           uint64        `env:"VYBE_SEED"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return Config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.WebhookTimeout <= 0 {
		return Config{}, fmt.Errorf("contact timeout must be positive, got %s", cfg.WebhookTimeout)
	}
	cfg.Volume = mathutil.Clamp01(cfg.Volume)
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}
