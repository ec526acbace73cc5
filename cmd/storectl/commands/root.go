package commands

import (
	"fmt"
	"log/slog"
	"os"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/middleware"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// Global flags
	driverOverride string
	verbose        bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "Maintenance tool for the store database",
	Long: `storectl manages the store database outside the HTTP server.

Subcommands:
  migrate  - apply, roll back or inspect schema migrations
  seed     - fill the database with fake users, products and orders`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driverOverride, "driver", "", "Override DB_DRIVER (postgres, mysql, sqlite)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output, including SQL")
}

// loadConfig reads the application config and applies CLI overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if driverOverride != "" {
		cfg.DBDriver = driverOverride
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	middleware.Logger = middleware.NewLogger(cfg.Env, level)
	return cfg, nil
}

// openDB connects without touching the schema; each command decides that.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
