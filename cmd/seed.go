/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Aayushkhairnar2101/Billing-system/config"
	"github.com/Aayushkhairnar2101/Billing-system/internal/services"
	"github.com/Aayushkhairnar2101/Billing-system/internal/store"
	"github.com/spf13/cobra"
)

// seedCmd represents the seed command.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default admin account",
	Long: `Seeds the users collection with the default admin account if it
does not already exist. The server also runs this step at startup; the
command exists for provisioning a data directory ahead of time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		db, err := store.Open(cfg.DataDir, logger)
		if err != nil {
			return fmt.Errorf("open store failed: %w", err)
		}

		identity := services.NewIdentityService(store.NewUserRepository(db))
		if err := identity.SeedAdmin(cmd.Context()); err != nil {
			return fmt.Errorf("seed admin failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
