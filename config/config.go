package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	configDirName  = "hecto"
	configFileName = "config.toml"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "HECTO_CONFIG"
)

// KeyBindings names the keys bound to each editor action, e.g. "ctrl+q",
// "alt+x", "up" or a single character.
type KeyBindings struct {
	Quit  string `toml:"quit"`
	Left  string `toml:"left"`
	Down  string `toml:"down"`
	Up    string `toml:"up"`
	Right string `toml:"right"`
}

type Config struct {
	EnableLogger bool        `toml:"enable_logger"`
	LogFile      string      `toml:"log_file"`
	Keys         KeyBindings `toml:"keys"`
}

func DefaultConfig() Config {
	return Config{
		EnableLogger: false,
		LogFile:      "hecto.log",
		Keys: KeyBindings{
			Quit:  "ctrl+q",
			Left:  "ctrl+h",
			Down:  "ctrl+j",
			Up:    "ctrl+k",
			Right: "ctrl+l",
		},
	}
}

// Path returns the config file location: $HECTO_CONFIG if set, otherwise
// hecto/config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// LoadConfig reads the config file, falling back to defaults when it is
// missing or invalid. Problems are logged, never fatal.
func LoadConfig() Config {
	path, err := Path()
	if err != nil {
		log.Printf("Could not locate config: %v", err)
		return DefaultConfig()
	}
	cfg, err := LoadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Could not load config, using defaults: %v", err)
		}
		return DefaultConfig()
	}
	return cfg
}

// LoadFile decodes path on top of the defaults, so keys absent from the file
// keep their default value.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("Ignoring unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}
