package cmd

import (
	"os"

	"github.com/wjwat/porkpy/cmd/commands/auth"
	"github.com/wjwat/porkpy/cmd/commands/domain"
	"github.com/wjwat/porkpy/cmd/commands/pricing"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "porkpy",
		Short: "A CLI client for the Porkbun DNS API",
		Long: `porkpy is a command-line client for the Porkbun REST API. It manages
DNS records for domains with API access enabled, checks TLD pricing,
and retrieves SSL certificate bundles. Responses are printed as the
API returns them.

Credentials are resolved in order: the --secrets string, the
credentials file (--file, default porkpy.json in the working
directory), the PORKPY_API / PORKPY_SECRET environment variables,
then the OS keychain (populated by 'porkpy auth login').

Quick start:
  porkpy auth login                          # Store your key pair
  porkpy auth check                          # Verify API access
  porkpy domain info example.com             # Show DNS records
  porkpy pricing --tld com --tld net         # TLD pricing`,
	}

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(domain.NewCommand())
	cmd.AddCommand(pricing.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
