package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ytget/setlist/internal/logging"
	"github.com/ytget/setlist/internal/store"
)

// EnvPrefix is prepended to every environment variable read by the CLI
const EnvPrefix = "SETLIST"

// Environment keys, without prefix
const (
	EnvStore       = "STORE"
	EnvSQLitePath  = "SQLITE_PATH"
	EnvRedisURL    = "REDIS_URL"
	EnvRedisPrefix = "REDIS_PREFIX"
	EnvLogLevel    = "LOG_LEVEL"
)

// Default CLI values
const (
	DefaultCLIStore    = store.KindSQLite
	DefaultDataDirName = ".setlist"
	DefaultSQLiteFile  = "setlist.db"
	DefaultDotEnvFile  = ".env"
)

// CLIConfig holds configuration for the command line tool
type CLIConfig struct {
	Store       store.Kind
	SQLitePath  string
	RedisURL    string
	RedisPrefix string
	LogLevel    string
}

// StoreOptions converts the config into backend options
func (c CLIConfig) StoreOptions() store.Options {
	return store.Options{
		Kind:        c.Store,
		SQLitePath:  c.SQLitePath,
		RedisURL:    c.RedisURL,
		RedisPrefix: c.RedisPrefix,
	}
}

// DefaultSQLitePath returns ~/.setlist/setlist.db, or a relative path when
// the home directory is unknown.
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(DefaultDataDirName, DefaultSQLiteFile)
	}
	return filepath.Join(home, DefaultDataDirName, DefaultSQLiteFile)
}

// LoadCLIConfig loads configuration from environment variables and an
// optional .env file. envFiles defaults to ".env" in the working directory.
func LoadCLIConfig(envFiles ...string) (*CLIConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultDotEnvFile}
	}
	for _, f := range envFiles {
		// Missing files are fine; the environment still applies.
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(EnvStore, string(DefaultCLIStore))
	v.SetDefault(EnvSQLitePath, DefaultSQLitePath())
	v.SetDefault(EnvRedisPrefix, store.DefaultRedisPrefix)
	v.SetDefault(EnvLogLevel, logging.DefaultLevel)

	cfg := &CLIConfig{
		Store:       store.Kind(strings.ToLower(strings.TrimSpace(v.GetString(EnvStore)))),
		SQLitePath:  expandHome(v.GetString(EnvSQLitePath)),
		RedisURL:    v.GetString(EnvRedisURL),
		RedisPrefix: v.GetString(EnvRedisPrefix),
		LogLevel:    v.GetString(EnvLogLevel),
	}
	return cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
