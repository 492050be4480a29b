package auth

import (
	"errors"
	"fmt"

	"github.com/wjwat/porkpy/internal/auth"

	"github.com/spf13/cobra"
)

// StatusCommand returns the "auth status" subcommand.
func StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which credentials are stored in the keychain",
		Long: `Show which of the Porkbun credential entries are stored in the OS
keychain.

Example:
  porkpy auth status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			entries := []struct {
				key   string
				label string
			}{
				{auth.KeyAPI, "apikey"},
				{auth.KeySecret, "secretapikey"},
			}

			for _, e := range entries {
				_, err := store.GetToken(e.key)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: stored\n", e.label)
				case errors.Is(err, auth.ErrTokenNotFound):
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not stored\n", e.label)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", e.label, err)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}
}
