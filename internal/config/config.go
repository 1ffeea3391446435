package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"dsaexplorer/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version"`
	UISettings UISettings       `toml:"ui"`
	Playground PlaygroundConfig `toml:"playground"`
	Log        LogConfig        `toml:"log"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Theme           string `toml:"theme"`            // "dark" or "light"
	DefaultLanguage string `toml:"default_language"` // code sample language shown first
	ShowStats       bool   `toml:"show_stats"`
	AutosaveOnExit  bool   `toml:"autosave_on_exit"`
}

// PlaygroundConfig configures the mock code runner
type PlaygroundConfig struct {
	DelayMS int `toml:"delay_ms"`
}

// LogConfig configures where the log file goes
type LogConfig struct {
	File string `toml:"file"` // empty means the default location
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
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
	return filepath.Join(configDir, "dsaexplorer", "config.toml")
}

// NewConfigService creates a config service for the given file; an empty
// path selects DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
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
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
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

// Validate checks values that the UI cannot recover from
func (c *Config) Validate() error {
	switch c.UISettings.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be \"dark\" or \"light\", got %q", c.UISettings.Theme)
	}
	if c.Playground.DelayMS < 0 {
		return fmt.Errorf("playground.delay_ms must not be negative, got %d", c.Playground.DelayMS)
	}
	return nil
}

// LogPath returns the log file to write to
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "dsaexplorer.log"
	}
	return filepath.Join(cacheDir, "dsaexplorer", "dsaexplorer.log")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Theme:           "dark",
			DefaultLanguage: "python",
			ShowStats:       true,
			AutosaveOnExit:  true,
		},
		Playground: PlaygroundConfig{
			DelayMS: 1500,
		},
	}
}
