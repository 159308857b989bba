package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"swiper/internal/animation"
	"swiper/internal/eventbus"
	"swiper/internal/gesture"
)

// FileName is the per-directory config file looked up next to the pages
const FileName = ".swiper.toml"

// Config represents the application configuration
type Config struct {
	Version       int           `toml:"version"`
	Source        string        `toml:"source"` // directory or file to page through
	RememberIndex bool          `toml:"remember_index"`
	Pager         PagerSettings `toml:"pager"`
}

// PagerSettings configures the paging control
type PagerSettings struct {
	Index           int     `toml:"index"`
	Threshold       float64 `toml:"threshold"` // pointer units before a drag is claimed
	ShowPager       bool    `toml:"pager"`
	ActiveDotColor  string  `toml:"active_dot_color"`
	SpringFriction  float64 `toml:"spring_friction"`
	SpringTension   float64 `toml:"spring_tension"`
	PixelsPerCell   float64 `toml:"pixels_per_cell"`
	FPS             int     `toml:"fps"`
	Locked          []int   `toml:"locked"`
	ContainerBorder bool    `toml:"container_border"`
}

// Spring returns the settle animation parameters
func (p PagerSettings) Spring() animation.SpringConfig {
	return animation.SpringConfig{Friction: p.SpringFriction, Tension: p.SpringTension}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "swiper", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the user config file, falling back
// to defaults when there is none
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Source: cfg.Source})
	}
	return cfg, nil
}

// Save saves the configuration to the user config file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Source:  ".",
		Pager: PagerSettings{
			Threshold:       gesture.DefaultThreshold,
			ShowPager:       true,
			ActiveDotColor:  "39", // blue
			SpringFriction:  animation.DefaultFriction,
			SpringTension:   animation.DefaultTension,
			PixelsPerCell:   8,
			FPS:             animation.DefaultFPS,
			ContainerBorder: true,
		},
	}
}

// Normalize replaces values the pager cannot work with by their defaults.
// The initial index is left alone; it is clamped once the page count is
// known.
func (c *Config) Normalize() {
	def := DefaultConfig().Pager
	p := &c.Pager

	if p.Threshold < 0 {
		p.Threshold = def.Threshold
	}
	if p.ActiveDotColor == "" {
		p.ActiveDotColor = def.ActiveDotColor
	}
	if p.SpringFriction <= 0 {
		p.SpringFriction = def.SpringFriction
	}
	if p.SpringTension <= 0 {
		p.SpringTension = def.SpringTension
	}
	if p.PixelsPerCell <= 0 {
		p.PixelsPerCell = def.PixelsPerCell
	}
	if p.FPS <= 0 || p.FPS > 240 {
		p.FPS = def.FPS
	}
	if c.Source == "" {
		c.Source = "."
	}
}
