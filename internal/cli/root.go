// Package cli defines the cobra command tree for the roams server.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roams-server",
		Short:         "Travel-discovery server with live place comments",
		Long:          "Serves AI-generated travel guides and a realtime comment feed scoped to places. Comments are persisted to SQLite and broadcast to everyone currently viewing the same place.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default: ./config.yaml)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug|info|warn|error), overrides config")

	root.AddCommand(
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}
