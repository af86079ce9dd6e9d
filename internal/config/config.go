// Package config loads the global configuration and scans target directories.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mydehq/tagrename/internal/types"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "tagrename"
	configFile = "config.yml"
	envPrefix  = "TAGRENAME"
)

var defaults = types.GlobalConfig{
	LogLevel: "info",
	Formats:  []string{},
}

// GetDefaults returns a copy of the built-in configuration
func GetDefaults() types.GlobalConfig {
	return defaults.Clone()
}

// GlobalConfigPath returns the path of the global config file
func GlobalConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFile), nil
}

// LoadGlobal loads the global config, falling back to defaults when absent
func LoadGlobal() (*types.GlobalConfig, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads config from path. A missing file is not an error.
// TAGRENAME_* environment variables override file values.
func LoadFrom(path string) (*types.GlobalConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("formats", defaults.Formats)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	cfg := GetDefaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	for i, f := range cfg.Formats {
		cfg.Formats[i] = strings.TrimPrefix(strings.TrimSpace(f), ".")
	}
	return &cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories
func Save(path string, cfg *types.GlobalConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
