package main

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/aussiebroadwan/passvault/internal/vault/app"
	"github.com/aussiebroadwan/passvault/internal/vault/store/drivers/postgres"
	"github.com/aussiebroadwan/passvault/internal/vault/store/drivers/sqlite"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long:  `Apply, roll back or inspect the embedded database migrations.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrate(func(m *migrate.Migrate) error {
			if err := m.Up(); err != nil {
				if errors.Is(err, migrate.ErrNoChange) {
					fmt.Fprintln(cmd.OutOrStdout(), "No migrations to run - database is up to date")
					return nil
				}
				return fmt.Errorf("migration failed: %w", err)
			}
			return printVersion(cmd, m)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations",
	Long: `Roll back the given number of migrations (default: 1).

Example:
  passvault migrate down      # roll back 1 migration
  passvault migrate down 3    # roll back 3 migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid steps %q: must be a positive integer", args[0])
			}
			steps = n
		}

		return withMigrate(func(m *migrate.Migrate) error {
			if err := m.Steps(-steps); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			return printVersion(cmd, m)
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrate(func(m *migrate.Migrate) error {
			return printVersion(cmd, m)
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

// withMigrate opens the configured database and hands fn a migrator bound
// to the driver's embedded migrations.
func withMigrate(fn func(m *migrate.Migrate) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := app.OpenStore(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	m, err := newMigrate(cfg.Database.Driver, st.DB())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return fn(m)
}

func newMigrate(driver string, db *sql.DB) (*migrate.Migrate, error) {
	switch driver {
	case app.DriverPostgres:
		return postgres.NewMigrate(db)
	default:
		return sqlite.NewMigrate(db)
	}
}

func printVersion(cmd *cobra.Command, m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Fprintln(cmd.OutOrStdout(), "No migrations applied")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d (dirty: %v)\n", version, dirty)
	return nil
}
