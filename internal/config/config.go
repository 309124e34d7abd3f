package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version  int                      `toml:"version"`
	Dropdown DropdownSettings         `toml:"dropdown"`
	Styles   StyleSettings            `toml:"styles"`
	Classes  map[string]StyleSettings `toml:"classes"` // style class name -> overrides
	Provider ProviderSettings         `toml:"provider"`
	Log      LogSettings              `toml:"log"`
}

// DropdownSettings controls where and how the dropdown is drawn
type DropdownSettings struct {
	Layer       string `toml:"layer"`      // overlay layer the screen provides
	MarginTop   int    `toml:"margin_top"` // rows between the input and the dropdown
	MaxRows     int    `toml:"max_rows"`   // 0 shows every match
	Prompt      string `toml:"prompt"`
	Placeholder string `toml:"placeholder"`
}

// StyleSettings holds color overrides; empty strings keep the default
type StyleSettings struct {
	Foreground  string `toml:"foreground,omitempty"`
	Background  string `toml:"background,omitempty"`
	Highlight   string `toml:"highlight,omitempty"`
	HighlightFg string `toml:"highlight_fg,omitempty"`
	Meta        string `toml:"meta,omitempty"`
	Selected    string `toml:"selected,omitempty"`
	Error       string `toml:"error,omitempty"`
	Accent      string `toml:"accent,omitempty"`
}

// ProviderSettings selects and configures the result provider
type ProviderSettings struct {
	Kind       string `toml:"kind"`       // "words" or "paths"
	WordsFile  string `toml:"words_file"` // YAML word list for "words"
	Root       string `toml:"root"`       // directory for "paths"
	MaxResults int    `toml:"max_results"`
}

// LogSettings configures the rotating log file
type LogSettings struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Provider kinds
const (
	ProviderWords = "words"
	ProviderPaths = "paths"
)

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
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
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
		filePath: filepath.Join(configDir, "autocomplete", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service backed by a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Settings missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	// Initialize maps if nil
	if cfg.Classes == nil {
		cfg.Classes = make(map[string]StyleSettings)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
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

// Validate checks settings that would otherwise fail later
func (c *Config) Validate() error {
	switch c.Provider.Kind {
	case ProviderWords, ProviderPaths:
	default:
		return fmt.Errorf("unknown provider kind %q", c.Provider.Kind)
	}
	if c.Dropdown.MarginTop < 0 {
		return fmt.Errorf("dropdown.margin_top must not be negative")
	}
	if c.Dropdown.MaxRows < 0 {
		return fmt.Errorf("dropdown.max_rows must not be negative")
	}
	if c.Provider.MaxResults < 0 {
		return fmt.Errorf("provider.max_results must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Dropdown: DropdownSettings{
			Layer:       "autocomplete",
			MarginTop:   1,
			MaxRows:     10,
			Prompt:      "> ",
			Placeholder: "start typing...",
		},
		Classes: make(map[string]StyleSettings),
		Provider: ProviderSettings{
			Kind:       ProviderWords,
			Root:       ".",
			MaxResults: 50,
		},
		Log: LogSettings{
			File:       "autocomplete.log",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
