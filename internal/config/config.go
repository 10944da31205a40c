package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the genhash configuration. It only controls diagnostics;
// nothing here influences how a hash is produced.
type Config struct {
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" json:"level"`
	Format     string `yaml:"format" json:"format"`
	File       string `yaml:"file" json:"file"`
	MaxSize    int    `yaml:"max_size" json:"max_size"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `yaml:"max_age" json:"max_age"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			File:       "",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	return loadFrom(GetConfigPath())
}

func loadFrom(configPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Override with environment variables
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		cfg.Logging.File = logFile
	}

	cfg.normalizeLogPath(configPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "text":
	default:
		return fmt.Errorf("log format must be json or text, got %q", c.Logging.Format)
	}

	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAge < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}

	return nil
}

func resolveConfigPath() string {
	candidates := []string{"../configs/genhash.yaml", "./configs/genhash.yaml"}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "./configs/genhash.yaml"
}

// GetConfigPath returns the resolved config path
func GetConfigPath() string {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = resolveConfigPath()
	}
	return configPath
}

// normalizeLogPath anchors a relative log file to the directory that holds
// the configs/ folder, so the log lands in the same place regardless of cwd.
func (c *Config) normalizeLogPath(configPath string) {
	file := strings.TrimSpace(c.Logging.File)
	if file == "" {
		c.Logging.File = ""
		return
	}
	if filepath.IsAbs(file) {
		c.Logging.File = filepath.Clean(file)
		return
	}

	baseDir := filepath.Dir(configPath)
	if !filepath.IsAbs(baseDir) {
		if absBase, err := filepath.Abs(baseDir); err == nil {
			baseDir = absBase
		}
	}

	rootDir := baseDir
	if filepath.Base(baseDir) == "configs" {
		rootDir = filepath.Dir(baseDir)
	}

	c.Logging.File = filepath.Clean(filepath.Join(rootDir, file))
}
