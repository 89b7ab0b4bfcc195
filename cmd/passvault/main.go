// Command passvault runs the password vault API and manages its schema.
//
//	passvault serve               # start the HTTP API
//	passvault migrate up          # apply pending migrations
//	passvault migrate down [n]    # roll back n migrations (default 1)
//	passvault migrate version     # print the schema version
//	passvault version             # print the build version
//
// Configuration comes from --config (or VAULT_CONFIG_FILE) and the
// environment. A .env file in the working directory is loaded first.
package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/passvault/internal/vault/app"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "passvault",
	Short:         "Password vault API server",
	Long:          `passvault stores users, credentials, email accounts, credit cards and devices behind a JSON API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a YAML config file (default $"+app.ConfigFileEnv+")")
}

func loadConfig() (app.Config, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
