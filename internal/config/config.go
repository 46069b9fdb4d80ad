package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable qit reads
const EnvPrefix = "QIT"

// Keys understood in the config file. Each maps to QIT_<KEY> in the environment.
const (
	KeyDisableEmojis = "disable_emojis"
	KeyLogFile       = "log_file"
	KeyLogMaxSize    = "log_max_size"
	KeyLogMaxBackups = "log_max_backups"
	KeyLogMaxAge     = "log_max_age"
	KeyDebug         = "debug"
	KeyConfig        = "config"
)

// Config is the resolved configuration for one invocation
type Config struct {
	// DisableEmojis drops the leading glyph from commit messages.
	// Only the literal value "true" enables it.
	DisableEmojis bool

	// LogFile is an optional path for a rotating debug log
	LogFile       string
	LogMaxSize    int // megabytes
	LogMaxBackups int
	LogMaxAge     int // days

	Debug bool
}

// Load reads the configuration from the process environment and the default config file.
func Load() (*Config, error) {
	return LoadWith(viper.New(), "")
}

// LoadWith reads the configuration into v. If path is empty, QIT_CONFIG or the
// default location is used; a missing file is not an error.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogMaxSize, 1)
	v.SetDefault(KeyLogMaxBackups, 2)
	v.SetDefault(KeyLogMaxAge, 30)

	if path == "" {
		path = v.GetString(KeyConfig)
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := readFile(v, path); err != nil {
		return nil, err
	}

	cfg := &Config{
		DisableEmojis: v.GetString(KeyDisableEmojis) == "true",
		LogFile:       v.GetString(KeyLogFile),
		LogMaxSize:    v.GetInt(KeyLogMaxSize),
		LogMaxBackups: v.GetInt(KeyLogMaxBackups),
		LogMaxAge:     v.GetInt(KeyLogMaxAge),
		Debug:         v.GetBool(KeyDebug),
	}
	if cfg.LogMaxSize <= 0 {
		cfg.LogMaxSize = 1
	}
	if cfg.LogMaxBackups < 0 {
		cfg.LogMaxBackups = 0
	}
	if cfg.LogMaxAge <= 0 {
		cfg.LogMaxAge = 30
	}

	return cfg, nil
}

// DefaultPath returns <user config dir>/qit/config.yaml, or "" if the user
// config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "qit", "config.yaml")
}

func readFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}
