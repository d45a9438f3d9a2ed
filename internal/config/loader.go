package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("SPLITVIEW_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		xdgConfigDir := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, "splitview", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "splitview", "config.toml")
	}
	return ""
}

func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() (*Config, error) {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		return nil, fmt.Errorf("no embedded default config found: %w", err)
	}
	config := &Config{}
	if err := config.Load(string(data)); err != nil {
		return nil, fmt.Errorf("failed to load embedded default config: %w", err)
	}
	return config, nil
}

// Load decodes data on top of the current values.
func (c *Config) Load(data string) error {
	c.Split.Middle = nil
	metadata, err := toml.Decode(data, c)
	if err != nil {
		return err
	}

	if c.Split.Middle != nil && !metadata.IsDefined("split", "pivot") {
		c.Split.Pivot = *c.Split.Middle
	}
	if metadata.IsDefined("split", "nudge_step") && c.Split.NudgeStep <= 0 {
		return fmt.Errorf("split.nudge_step must be positive, got %g", c.Split.NudgeStep)
	}
	if metadata.IsDefined("split", "toggle_size") && c.Split.ToggleSize < 0 {
		return fmt.Errorf("split.toggle_size must not be negative, got %d", c.Split.ToggleSize)
	}
	return nil
}

// LoadConfigFile returns the user's config file. A missing file is not an
// error; it yields nil data.
func LoadConfigFile() ([]byte, error) {
	configFile := getConfigFilePath()
	if configFile == "" {
		return nil, nil
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// LoadConfig returns the defaults overlaid with the user's config file, if
// any, along with warnings about deprecated settings found in it.
func LoadConfig() (*Config, []string, error) {
	config, err := DefaultConfig()
	if err != nil {
		return nil, nil, err
	}
	data, err := LoadConfigFile()
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}
	if data == nil {
		return config, nil, nil
	}
	if err := config.Load(string(data)); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", getConfigFilePath(), err)
	}
	return config, DeprecatedConfigWarnings(string(data)), nil
}
