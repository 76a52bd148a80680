package cli

import (
	"context"

	"github.com/spf13/cobra"
)

const (
	CmdServe   = "serve"
	CmdVersion = "version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clientapi",
	Short: "clientapi - HTTP API serving client objects",
	Long: `clientapi serves user profiles and per-client objects over HTTP.

The /clients/{client_id}/objects endpoint loads assets, contact details and
pensions concurrently and joins them into a single response.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with ctx as the base context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
