package commands

import (
	"fmt"

	"storefront/internal/database"
	"storefront/internal/seed"

	"github.com/spf13/cobra"
)

var (
	seedOpts  = seed.DefaultOptions()
	seedClean bool
)

// seedCmd fills the database with fake data
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with fake users, products and orders",
	Long: `Create fake users, products and orders through the regular repositories.

Examples:
  storectl seed                          # Default data set
  storectl seed --users 100 --products 40
  storectl seed --clean=false --seed 7   # Append a reproducible batch`,
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
		if err := database.ApplySchema(ctx, db, cfg); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}

		s := seed.NewSeeder(db)
		if seedClean {
			if err := s.ClearAll(ctx); err != nil {
				return fmt.Errorf("cleanup failed: %w", err)
			}
		}

		summary, err := s.Run(ctx, seedOpts)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d products, %d orders\n",
			summary.Users, summary.Products, summary.Orders)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedOpts.Users, "users", seedOpts.Users, "Number of users to create")
	seedCmd.Flags().IntVar(&seedOpts.Products, "products", seedOpts.Products, "Number of products to create")
	seedCmd.Flags().IntVar(&seedOpts.MaxOrdersPerUser, "max-orders", seedOpts.MaxOrdersPerUser, "Upper bound of orders per user")
	seedCmd.Flags().IntVar(&seedOpts.MaxProductsPerOrder, "max-products", seedOpts.MaxProductsPerOrder, "Upper bound of products per order")
	seedCmd.Flags().Int64Var(&seedOpts.Seed, "seed", 0, "Random seed (0 picks one)")
	seedCmd.Flags().BoolVar(&seedClean, "clean", true, "Delete existing data before seeding")
}
