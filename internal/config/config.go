// Package config resolves where the worklog database lives. Settings
// come from config.yaml, WORKLOG_* environment variables, and built-in
// defaults, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the resolved settings.
type Config struct {
	DataDir      string
	DatabasePath string
}

// Load reads config.yaml from extraDirs, then ~/.config/worklog, then
// the working directory. A missing config file is fine; defaults and
// environment variables still apply.
func Load(extraDirs ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range extraDirs {
		v.AddConfigPath(dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "worklog"))
		v.SetDefault("data_dir", filepath.Join(home, ".local", "share", "worklog"))
	} else {
		v.SetDefault("data_dir", ".")
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("worklog")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		DataDir:      v.GetString("data_dir"),
		DatabasePath: v.GetString("database.path"),
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(cfg.DataDir, "worklog.db")
	}
	return cfg, nil
}

// EnsureDataDir creates the directory holding the database file.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(filepath.Dir(c.DatabasePath), 0o755)
}
