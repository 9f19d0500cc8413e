// Package config reads and writes the scanreport YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/scanreport/pkg/report"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "SCANREPORT_CONFIG"

const (
	DefaultProvider   = "gemini"
	DefaultModel      = "gemini-1.5-flash"
	DefaultServerAddr = ":8080"
)

var envAPIKeys = map[string]string{
	"gemini": "GOOGLE_API_KEY",
}

type ProviderConfig struct {
	APIKey string `yaml:"api_key"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	Language        string `yaml:"language"`
	Concurrency     int    `yaml:"concurrency"`
	TranslationsDir string `yaml:"translations_dir,omitempty"`
	OutputFormat    string `yaml:"output_format"`
	BaselinePath    string `yaml:"baseline_path,omitempty"`
	LogLevel        string `yaml:"log_level"`

	Server ServerConfig `yaml:"server"`

	SelectedProvider string                    `yaml:"selected_provider"`
	SelectedModel    string                    `yaml:"selected_model"`
	Providers        map[string]ProviderConfig `yaml:"providers"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Language:         string(report.DefaultLanguage),
		OutputFormat:     "html",
		LogLevel:         "info",
		Server:           ServerConfig{Addr: DefaultServerAddr},
		SelectedProvider: DefaultProvider,
		SelectedModel:    DefaultModel,
		Providers:        make(map[string]ProviderConfig),
	}
}

// GetConfigPath returns $SCANREPORT_CONFIG, or ~/.scanreport/config.yaml.
func GetConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scanreport", "config.yaml"), nil
}

func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the file at path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes cfg to path, creating its directory. The file holds API keys and
// is only readable by the owner.
func SaveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	if _, err := report.ParseLanguage(c.Language); err != nil {
		return err
	}
	switch strings.ToLower(c.OutputFormat) {
	case "html", "json":
	default:
		return fmt.Errorf("output_format must be html or json, got %q", c.OutputFormat)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}

// ReportLanguage returns the configured output language.
func (c *Config) ReportLanguage() report.Language {
	lang, err := report.ParseLanguage(c.Language)
	if err != nil {
		return report.DefaultLanguage
	}
	return lang
}

func (c *Config) SetAPIKey(provider, key string) {
	if c.Providers == nil {
		c.Providers = make(map[string]ProviderConfig)
	}
	p := c.Providers[provider]
	p.APIKey = key
	c.Providers[provider] = p
}

// GetAPIKey returns the stored key, falling back to the provider's environment
// variable.
func (c *Config) GetAPIKey(provider string) string {
	if key := c.Providers[provider].APIKey; key != "" {
		return key
	}
	if env, ok := envAPIKeys[provider]; ok {
		return os.Getenv(env)
	}
	return ""
}
