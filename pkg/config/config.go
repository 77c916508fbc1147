// Package config provides configuration management for the gf2m CLI tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fieldlab/gf2m/pkg/galois"
)

// Config represents the main configuration structure.
type Config struct {
	Defaults    DefaultSettings `json:"defaults" yaml:"defaults"`
	Polynomials map[int]string  `json:"polynomials" yaml:"polynomials"` // per-degree overrides
	UI          UIConfig        `json:"ui" yaml:"ui"`
}

// DefaultSettings contains default values for common operations.
type DefaultSettings struct {
	Degree int `json:"degree" yaml:"degree"` // extension degree m when no flag is given
}

// UIConfig contains user interface settings.
type UIConfig struct {
	UseColor bool   `json:"use_color" yaml:"use_color"` // enable colored output
	Alpha    string `json:"alpha" yaml:"alpha"`         // symbol for the primitive element
}

// Manager loads and exposes the tool configuration.
type Manager struct {
	config     *Config
	configPath string
}

// NewManager locates and loads the configuration. A missing file is not
// an error: defaults are used. A present but malformed file is.
func NewManager() (*Manager, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	m := &Manager{config: DefaultConfig(), configPath: path}
	if path == "" {
		return m, nil
	}

	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultSettings{
			Degree: 4,
		},
		Polynomials: map[int]string{},
		UI: UIConfig{
			UseColor: true,
			Alpha:    "a",
		},
	}
}

// Config returns the loaded configuration.
func (m *Manager) Config() *Config { return m.config }

// Path returns the configuration file path, or "" when none was found.
func (m *Manager) Path() string { return m.configPath }

// Polynomial returns the configured polynomial override for degree m,
// or the built-in default when none is configured.
func (c *Config) Polynomial(m int) (galois.Poly, error) {
	if spec, ok := c.Polynomials[m]; ok {
		poly, err := galois.ParsePoly(spec)
		if err != nil {
			return 0, fmt.Errorf("configured polynomial for m=%d: %w", m, err)
		}
		return poly, nil
	}
	return galois.DefaultPoly(m)
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(m.configPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

// Validate checks the configuration for values the CLI cannot act on.
func (c *Config) Validate() error {
	if c.Defaults.Degree < 1 {
		return fmt.Errorf("defaults.degree must be positive, got %d", c.Defaults.Degree)
	}

	for m, spec := range c.Polynomials {
		poly, err := galois.ParsePoly(spec)
		if err != nil {
			return fmt.Errorf("polynomials[%d]: %w", m, err)
		}
		if poly.Degree() != m {
			return fmt.Errorf("polynomials[%d]: %q has degree %d", m, spec, poly.Degree())
		}
	}

	if c.UI.Alpha == "" {
		return fmt.Errorf("ui.alpha cannot be empty")
	}
	return nil
}

// configPath returns the first existing configuration file, honoring
// GF2M_CONFIG and XDG_CONFIG_HOME. An empty path means no config file.
func configPath() (string, error) {
	if customPath := os.Getenv("GF2M_CONFIG"); customPath != "" {
		return customPath, nil
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	for _, name := range []string{"config.json", "config.yaml", "config.yml"} {
		path := filepath.Join(configDir, "gf2m", name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}
