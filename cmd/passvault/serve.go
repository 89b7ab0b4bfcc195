package main

import (
	"github.com/aussiebroadwan/passvault/internal/vault/app"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API.

Pending migrations are applied first unless VAULT_AUTO_MIGRATE=false.
The server stops gracefully on SIGINT or SIGTERM.

Example:
  passvault serve --port 9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		return application.Run()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "HTTP port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}
