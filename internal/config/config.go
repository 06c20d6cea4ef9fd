// Package config loads spendwatch preferences from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all spendwatch preferences. It never holds session data.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds session behavior preferences.
type GeneralConfig struct {
	// AdvisoryTransactions is the count below which a session suggests
	// recording more transactions.
	AdvisoryTransactions int `toml:"advisory_transactions"`
	// UsageBar toggles the per-transaction budget usage bar.
	UsageBar bool `toml:"usage_bar"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme          string `toml:"theme"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			AdvisoryTransactions: 5,
			UsageBar:             true,
		},
		Appearance: AppearanceConfig{
			Theme:          "flexoki-dark",
			CurrencySymbol: "$",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendwatch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendwatch")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.General.AdvisoryTransactions < 1 {
		cfg.General.AdvisoryTransactions = DefaultConfig().General.AdvisoryTransactions
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes cfg to path, creating the parent directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
