package main

import (
	"fmt"

	"github.com/aussiebroadwan/passvault/internal/vault/app"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
