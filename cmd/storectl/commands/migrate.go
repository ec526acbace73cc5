package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"storefront/internal/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var steps int

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Keep the database schema in sync with the code.

Subcommands:
  up      - Apply pending migrations (SQL on postgres, AutoMigrate elsewhere)
  down    - Roll back migrations
  status  - Show migration status`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close(db) }()

		if err := database.ApplySchema(cmd.Context(), db, cfg); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [version]",
	Short: "Roll back migrations",
	Long: `Roll back applied SQL migrations, newest first. An explicit version
must be the newest applied one.

Examples:
  storectl migrate down             # Roll back the latest migration
  storectl migrate down --steps 2   # Roll back the latest two
  storectl migrate down 2           # Roll back migration 000002`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close(db) }()

		ctx := cmd.Context()
		var versions []int
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			versions = []int{v}
		} else {
			versions, err = latestApplied(ctx, db, steps)
			if err != nil {
				return err
			}
		}

		for _, v := range versions {
			if err := database.RollbackMigration(ctx, db, v); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", database.GetMigrationByVersion(v).String())
		}
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close(db) }()

		status, err := database.GetSchemaStatus(cmd.Context(), db, cfg)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		return printStatus(cmd, status)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)

	migrateDownCmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")
}

// latestApplied returns up to n applied versions, newest first.
func latestApplied(ctx context.Context, db *gorm.DB, n int) ([]int, error) {
	applied, err := database.NewMigrationStore(db).GetAppliedMigrations(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 1
	}
	out := make([]int, 0, n)
	for i := len(applied) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, applied[i])
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no applied migrations to roll back")
	}
	return out, nil
}

func printStatus(cmd *cobra.Command, status *database.SchemaStatus) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "driver\t%s\n", status.Driver)
	fmt.Fprintf(w, "mode\t%s\n", status.Mode)
	fmt.Fprintf(w, "run sql\t%t\n", status.WillRunSQL)
	fmt.Fprintf(w, "run auto-migrate\t%t\n", status.WillRunAutoMigrate)
	fmt.Fprintf(w, "applied\t%d\n", len(status.AppliedVersions))
	fmt.Fprintf(w, "pending\t%d\n", len(status.PendingMigrations))
	for _, m := range status.PendingMigrations {
		fmt.Fprintf(w, "  pending\t%s\n", m.String())
	}
	return w.Flush()
}
