package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CurrentVersion is written into freshly created config files.
const CurrentVersion = "1"

// HomeEnv overrides the morg home directory.
const HomeEnv = "MORG_HOME"

// Config represents the flat morg configuration
type Config struct {
	Version            string  `json:"version"`
	DataDir            string  `json:"data_dir"`                        // photo/ and sets/ live here
	DatabasePath       string  `json:"database_path"`                   // SQLite catalog file
	LogLevel           string  `json:"log_level,omitempty"`             // DEBUG, INFO, WARN, ERROR
	LogFile            string  `json:"log_file,omitempty"`              // empty = stderr
	ListenAddr         string  `json:"listen_addr,omitempty"`           // morg serve
	RateLimitPerSecond float64 `json:"rate_limit_per_second,omitempty"` // HTTP token bucket refill
	RateLimitBurst     int     `json:"rate_limit_burst,omitempty"`
}

// Home returns the morg home directory: $MORG_HOME, else ~/.morg.
func Home() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".morg"), nil
}

// DefaultConfig returns the configuration used when dir has no config.json.
func DefaultConfig(dir string) *Config {
	return &Config{
		Version:            CurrentVersion,
		DataDir:            dir,
		DatabasePath:       filepath.Join(dir, "morg.db"),
		LogLevel:           "INFO",
		LogFile:            filepath.Join(dir, "morg.log"),
		ListenAddr:         "127.0.0.1:8420",
		RateLimitPerSecond: 10,
		RateLimitBurst:     20,
	}
}

// LoadConfig reads config.json from the specified directory.
// Missing fields are filled from DefaultConfig.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults(DefaultConfig(dir))
	return &cfg, nil
}

// LoadOrDefault reads config.json from dir, falling back to DefaultConfig
// when the file does not exist. A malformed file is still an error.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(dir), nil
	}
	return nil, err
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults(d *Config) {
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(c.DataDir, "morg.db")
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.ListenAddr == "" {
		c.ListenAddr = d.ListenAddr
	}
	if c.RateLimitPerSecond <= 0 {
		c.RateLimitPerSecond = d.RateLimitPerSecond
	}
	if c.RateLimitBurst <= 0 {
		c.RateLimitBurst = d.RateLimitBurst
	}
}
