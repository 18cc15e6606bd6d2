package cmd

import (
	"fmt"
	"os"

	"eatery/configs"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eatery",
	Short: "Restaurant ordering backend",
	Long:  `eatery serves the owner-side restaurant API: restaurant profiles with menus and images, order listings and order status updates.`,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, tokenCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect loads the config and opens the migrated database.
func connect() (*configs.Config, error) {
	cfg := configs.LoadConfig()
	if err := configs.ConnectionDB(cfg); err != nil {
		return nil, err
	}
	if err := configs.SetupDatabase(configs.DB()); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return cfg, nil
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := connect()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrated %s database\n", cfg.DBDriver)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a demo owner, customer, restaurant and orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := connect(); err != nil {
			return err
		}
		accounts, err := configs.SeedDemo(configs.DB())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "owner id=%d customer id=%d\n", accounts.Owner.ID, accounts.Customer.ID)
		return nil
	},
}
