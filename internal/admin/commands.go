// Package admin holds the gestorinmo-admin commands
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/localnerve/gestorinmo/internal/config"
	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/localnerve/gestorinmo/internal/database"
	"github.com/localnerve/gestorinmo/internal/feed"
	"github.com/localnerve/gestorinmo/internal/logger"
	"github.com/localnerve/gestorinmo/internal/services"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const commandTimeout = 2 * time.Minute

// NewRootCmd builds the admin command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gestorinmo-admin",
		Short:         "Gestorinmo administration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			if envFile == "" {
				return nil
			}
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringP("env-file", "f", "", "path to a .env file")

	root.AddCommand(
		MigrateCmd(),
		SeedCmd(),
		AlertsCmd(),
		HealthcheckCmd(),
	)
	return root
}

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the properties, tenants and expenses tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample properties, tenants and expenses",
		Long:  "Load the sample data. Records are created one by one, a failure leaves the earlier ones in place.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			result, err := services.NewDataService(db, 0).Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed stopped after %d properties, %d tenants, %d expenses: %w",
					result.Properties, result.Tenants, result.Expenses, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d properties, %d tenants, %d expenses\n",
				result.Properties, result.Tenants, result.Expenses)
			return nil
		},
	}
}

func AlertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Print the current contract and CPI alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, _ := cmd.Flags().GetString("at")
			asJSON, _ := cmd.Flags().GetBool("json")

			now := time.Now()
			if at != "" {
				parsed, err := time.ParseInLocation(services.DateLayout, at, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --at date %q: %w", at, err)
				}
				now = parsed
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			snapshots := store.New()
			if err := feed.New(db, snapshots, nil, time.Minute).RefreshAll(ctx); err != nil {
				return fmt.Errorf("failed to load data: %w", err)
			}
			view := dashboard.Compute(snapshots.Snapshot(), now)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view.Alerts)
			}
			if len(view.Alerts) == 0 {
				fmt.Fprintln(out, "No alerts")
				return nil
			}
			for _, alert := range view.Alerts {
				fmt.Fprintf(out, "%-6s  %-6s  %s\n", alert.Priority, alert.Type, alert.Text)
			}
			return nil
		},
	}

	cmd.Flags().String("at", "", "evaluate alerts on this date (YYYY-MM-DD) instead of today")
	cmd.Flags().Bool("json", false, "print alerts as JSON")

	return cmd
}

func HealthcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Check the database, Authorizer and AI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			zlog, err := logger.New(cfg.Environment)
			if err != nil {
				return err
			}
			defer zlog.Sync()

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			result := services.HealthCheck(ctx, cfg, db, zlog)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
			if result.Status != "healthy" {
				return fmt.Errorf("service is %s", result.Status)
			}
			return nil
		},
	}
}

func openDB() (*gorm.DB, error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, err
	}
	return database.Connect(cfg)
}
