package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	Color         bool   `toml:"color"`
	ClearScreen   bool   `toml:"clear_screen"`
	DealerPauseMs int    `toml:"dealer_pause_ms"`
	CardBack      string `toml:"card_back"`
	Seed          int64  `toml:"seed"` // 0 seeds from the clock
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Color:         true,
		ClearScreen:   true,
		DealerPauseMs: 800,
		CardBack:      "#8b1a1a",
	}
}

// DealerPause returns the pause between dealer draws
func (c *Config) DealerPause() time.Duration {
	return time.Duration(c.DealerPauseMs) * time.Millisecond
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "blackjack", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := SaveConfig(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile decodes a config file. Keys missing from the file keep their
// default values.
func LoadFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	return config, nil
}

// SaveConfig writes the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}
