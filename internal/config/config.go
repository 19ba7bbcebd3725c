package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"timeplay/internal/domain"
	"timeplay/internal/eventbus"
)

// FileName is the default configuration file name
const FileName = "timeplay.toml"

// Limits for the transition settings
const (
	MinInterval = 1
	MaxInterval = 10_000_000
	MinBin      = 1
)

// Icon styles for the toolbar buttons
const (
	IconDefault    = "default"
	IconFilled     = "filled"
	IconBtn        = "btn"
	IconBtnFill    = "btn-fill"
	IconCircle     = "circle"
	IconCircleFill = "circle-fill"
)

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version"`
	Transition TransitionConfig `toml:"transition"`
	Buttons    ButtonConfig     `toml:"buttons"`
	Caption    CaptionConfig    `toml:"caption"`
	Scrubber   ScrubberConfig   `toml:"scrubber"`
	Sort       SortConfig       `toml:"sort"`
	Host       HostConfig       `toml:"host"`
	Data       DataConfig       `toml:"data"`
}

// TransitionConfig controls autoplay
type TransitionConfig struct {
	AutoStart    bool `toml:"auto_start"`
	Loop         bool `toml:"loop"`
	TimeInterval int  `toml:"time_interval"` // milliseconds
	Bin          int  `toml:"bin"`
}

// ButtonConfig controls the toolbar look
type ButtonConfig struct {
	Minimal         bool   `toml:"minimal"`
	IconStyle       string `toml:"icon_style"`
	ShowAll         bool   `toml:"show_all"` // per-button colors instead of the picked color
	PickedColor     string `toml:"picked_color"`
	PlayColor       string `toml:"play_color"`
	PauseColor      string `toml:"pause_color"`
	StopColor       string `toml:"stop_color"`
	PreviousColor   string `toml:"previous_color"`
	NextColor       string `toml:"next_color"`
	Background      bool   `toml:"background"`
	BackgroundColor string `toml:"background_color"`
}

// CaptionConfig controls the caption readout
type CaptionConfig struct {
	Show      bool   `toml:"show"`
	Position  string `toml:"position"` // left, center or right
	Color     string `toml:"color"`
	Separator string `toml:"separator"`
}

type ScrubberConfig struct {
	Show bool `toml:"show"`
}

// SortConfig enables the custom sort by item sort key
type SortConfig struct {
	Enabled   bool `toml:"enabled"`
	Ascending bool `toml:"ascending"`
}

type HostConfig struct {
	AllowInteractions bool `toml:"allow_interactions"`
}

// DataConfig describes where the category sequence comes from
type DataConfig struct {
	Path       string   `toml:"path"`
	Format     string   `toml:"format"` // toml or csv, inferred from the extension when empty
	Columns    []string `toml:"columns"`
	SortColumn string   `toml:"sort_column"`
	IDColumn   string   `toml:"id_column"`
	Display    string   `toml:"display"`
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

// DefaultPath is the config file in the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "timeplay", FileName)
}

// NewConfigService creates a config service backed by DefaultPath
func NewConfigService() ConfigService {
	return &configService{
		filePath: DefaultPath(),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default file, falling back to defaults
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{})
		return cfg, nil
	}

	cfg, err := readFile(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	if err := writeFile(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cs.publish(eventbus.ConfigLoadedEvent{Path: path})
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := writeFile(config, path); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *configService) publish(e eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(e)
	}
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// missing keys keep their defaults
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

func writeFile(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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
		Transition: TransitionConfig{
			TimeInterval: 1000,
			Bin:          1,
		},
		Buttons: ButtonConfig{
			IconStyle:       IconCircle,
			PickedColor:     "#118DFF",
			PlayColor:       "#1AAB40",
			PauseColor:      "#E6A23C",
			StopColor:       "#D64550",
			PreviousColor:   "#6B7280",
			NextColor:       "#6B7280",
			BackgroundColor: "#F0F0F0",
		},
		Caption: CaptionConfig{
			Show:      true,
			Position:  "left",
			Color:     "#FFFFFF",
			Separator: ",",
		},
		Sort: SortConfig{
			Ascending: true,
		},
		Host: HostConfig{
			AllowInteractions: true,
		},
	}
}

// Normalize clamps numeric settings and resets unknown enum values
func (c *Config) Normalize() {
	if c.Transition.TimeInterval < MinInterval {
		c.Transition.TimeInterval = MinInterval
	}
	if c.Transition.TimeInterval > MaxInterval {
		c.Transition.TimeInterval = MaxInterval
	}
	if c.Transition.Bin < MinBin {
		c.Transition.Bin = MinBin
	}

	switch c.Buttons.IconStyle {
	case IconDefault, IconFilled, IconBtn, IconBtnFill, IconCircle, IconCircleFill:
	default:
		c.Buttons.IconStyle = IconDefault
	}

	switch c.Caption.Position {
	case "left", "center", "right":
	default:
		c.Caption.Position = "left"
	}

	switch c.Data.Format {
	case "", "toml", "csv":
	default:
		c.Data.Format = ""
	}
}

// Playback returns the settings the playback controller runs with
func (c *Config) Playback() domain.PlaybackConfig {
	return domain.PlaybackConfig{
		BinSize:      c.Transition.Bin,
		TickInterval: time.Duration(c.Transition.TimeInterval) * time.Millisecond,
		Loop:         c.Transition.Loop,
		AutoStart:    c.Transition.AutoStart,
	}.Normalized()
}

// ApplyPlayback copies runtime playback changes back into the file settings
func (c *Config) ApplyPlayback(p domain.PlaybackConfig) {
	c.Transition.Bin = p.BinSize
	c.Transition.TimeInterval = int(p.TickInterval / time.Millisecond)
	c.Transition.Loop = p.Loop
	c.Transition.AutoStart = p.AutoStart
	c.Normalize()
}
