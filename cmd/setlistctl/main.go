// Command setlistctl manages the song catalog and service schedules from the
// terminal. It works on the same data model as the app, stored in SQLite or
// Redis.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/catalog"
	"github.com/ytget/setlist/internal/config"
	"github.com/ytget/setlist/internal/importer"
	"github.com/ytget/setlist/internal/logging"
	"github.com/ytget/setlist/internal/store"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// DefaultTimeout bounds a single command
const DefaultTimeout = 2 * time.Minute

// cli holds state shared by all commands of one invocation
type cli struct {
	envFile     string
	storeKind   string
	sqlitePath  string
	redisURL    string
	redisPrefix string
	logLevel    string
	verbose     bool
	timeout     time.Duration

	// fetcher overrides the playlist source; nil uses yt-dlp
	fetcher importer.Fetcher

	logger  *zap.Logger
	closer  io.Closer
	catalog *catalog.Catalog
}

func main() {
	if err := newRootCmd(&cli{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "setlistctl",
		Short:        "Manage songs and service schedules",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.teardown()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", config.DefaultDotEnvFile, "Load environment variables from this file")
	flags.StringVar(&c.storeKind, "store", "", "Storage backend: sqlite, redis or memory (env SETLIST_STORE)")
	flags.StringVar(&c.sqlitePath, "sqlite-path", "", "SQLite database path (env SETLIST_SQLITE_PATH)")
	flags.StringVar(&c.redisURL, "redis-url", "", "Redis URL (env SETLIST_REDIS_URL)")
	flags.StringVar(&c.redisPrefix, "redis-prefix", "", "Redis key prefix (env SETLIST_REDIS_PREFIX)")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level (env SETLIST_LOG_LEVEL)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.DurationVar(&c.timeout, "timeout", DefaultTimeout, "Operation timeout")

	rootCmd.AddCommand(newSongsCmd(c))
	rootCmd.AddCommand(newSchedulesCmd(c))
	rootCmd.AddCommand(newImportCmd(c))
	rootCmd.AddCommand(newBackupCmd(c))
	rootCmd.AddCommand(newClearCmd(c))

	return rootCmd
}

// setup loads configuration, builds the logger and opens the backend
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadCLIConfig(c.envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the environment
	if c.storeKind != "" {
		cfg.Store = store.Kind(c.storeKind)
	}
	if c.sqlitePath != "" {
		cfg.SQLitePath = c.sqlitePath
	}
	if c.redisURL != "" {
		cfg.RedisURL = c.redisURL
	}
	if c.redisPrefix != "" {
		cfg.RedisPrefix = c.redisPrefix
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if c.verbose {
		cfg.LogLevel = "debug"
	}

	c.logger, err = logging.New(cfg.LogLevel, false)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()

	backend, closer, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	c.closer = closer
	c.catalog = catalog.New(backend, c.logger)

	c.logger.Debug("Store opened", zap.String("kind", string(cfg.Store)))
	return nil
}

func (c *cli) teardown() {
	if c.closer != nil {
		if err := c.closer.Close(); err != nil && c.logger != nil {
			c.logger.Warn("Failed to close store", zap.Error(err))
		}
		c.closer = nil
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

// context returns a context bounded by the --timeout flag
func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}
