package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"shopgrid/internal/eventbus"
)

// EnvAPIBase is the environment variable that overrides the API base URL
const EnvAPIBase = "SHOPGRID_API_URL"

// DefaultAPIBase is the hardcoded fallback used when neither the config
// file nor the environment provides a base URL
const DefaultAPIBase = "http://localhost:3000"

// Config represents the application configuration. It is resolved once at
// startup and never written back; treat loaded values as immutable.
type Config struct {
	APIBaseURL       string     `toml:"api_base_url"`
	RequestTimeoutMS int        `toml:"request_timeout_ms"`
	PagesPerRequest  int        `toml:"pages_per_request"`
	PageNeighbors    int        `toml:"page_neighbors"`
	LogLevel         string     `toml:"log_level"`
	LogFile          string     `toml:"log_file"`
	UISettings       UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	CardWidth  int  `toml:"card_width"`
	ShowImages bool `toml:"show_images"`
}

// ConfigService handles configuration loading
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "shopgrid", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load resolves configuration in order: defaults, config file, .env file,
// process environment. Later sources win. A missing config file is not an
// error; defaults apply.
func (cs *configService) Load() (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(cs.filePath); err == nil {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// .env values do not override variables already set in the environment
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBase); v != "" {
		cfg.APIBaseURL = v
	}

	normalize(cfg)

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{APIBase: cfg.APIBaseURL})
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(cfg)
	return cfg, nil
}

// normalize coerces out-of-range values back to usable defaults
func normalize(cfg *Config) {
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBase
	}
	if cfg.RequestTimeoutMS <= 0 {
		cfg.RequestTimeoutMS = 8000
	}
	if cfg.PagesPerRequest < 1 {
		cfg.PagesPerRequest = 1
	}
	if cfg.PageNeighbors < 1 {
		cfg.PageNeighbors = 1
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "shopgrid.log"
	}
	if cfg.UISettings.CardWidth < 20 {
		cfg.UISettings.CardWidth = 36
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:       DefaultAPIBase,
		RequestTimeoutMS: 8000,
		PagesPerRequest:  1,
		PageNeighbors:    1,
		LogLevel:         "info",
		LogFile:          "shopgrid.log",
		UISettings: UISettings{
			CardWidth:  36,
			ShowImages: true,
		},
	}
}
