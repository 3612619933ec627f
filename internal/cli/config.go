package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional CLI configuration loaded from
// ~/.config/cardframe/config.toml. Flags always win over config values.
type Config struct {
	// ListenAddr is the default address for the serve command.
	ListenAddr string `toml:"listen_addr"`

	// RedisAddr switches the serve command's cache to Redis when set.
	RedisAddr string `toml:"redis_addr"`

	// MongoURI switches the serve command's template store to MongoDB
	// when set.
	MongoURI string `toml:"mongo_uri"`

	// MongoDatabase names the MongoDB database ("cardframe" by default).
	MongoDatabase string `toml:"mongo_database"`

	// CacheDir overrides the XDG resolution cache directory.
	CacheDir string `toml:"cache_dir"`

	// MaxIterations overrides the solver pass budget. Zero keeps the
	// engine default.
	MaxIterations int `toml:"max_iterations"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		ListenAddr: ":8080",
	}
}

// configPath returns the config file location using the XDG standard
// (~/.config/cardframe/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads the config file at path, falling back to the XDG
// location when path is empty. A missing file is not an error; the defaults
// are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultConfig().ListenAddr
	}
	return cfg, nil
}
