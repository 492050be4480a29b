package auth

import (
	"github.com/wjwat/porkpy/internal/auth"
	"github.com/wjwat/porkpy/internal/credentials"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage and verify Porkbun API credentials",
		Long: `Manage and verify Porkbun API credentials.

Use 'auth login' to store the key pair in the OS keychain, 'auth
status' to see what is stored, and 'auth check' to verify access
against the API.`,
	}

	cmd.AddCommand(CheckCommand())
	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())

	cmd.PersistentFlags().StringP("secrets", "s", "", "apikey & secretapikey for the Porkbun API, separated by a ':'")
	cmd.PersistentFlags().StringP("file", "f", "", "JSON file containing apikey & secretapikey (default porkpy.json)")

	return cmd
}

// resolveCredentials resolves the credential pair from the
// flag-selected sources, falling back to the keychain.
func resolveCredentials(cmd *cobra.Command) (credentials.Credentials, error) {
	return credentials.Resolve(credentials.Options{
		SecretString: cmd.Flag("secrets").Value.String(),
		FilePath:     cmd.Flag("file").Value.String(),
		FileExplicit: cmd.Flag("file").Changed,
		Store:        auth.DefaultStore(),
	})
}
