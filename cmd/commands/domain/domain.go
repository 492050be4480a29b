package domain

import (
	"github.com/wjwat/porkpy/internal/auth"
	"github.com/wjwat/porkpy/internal/credentials"
	"github.com/wjwat/porkpy/internal/porkbun"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "domain" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Manage DNS records for authorized domains",
		Long: `Manage DNS records for domains in your Porkbun account. Domains must
have API access enabled through the Porkbun web interface first.`,
	}

	cmd.AddCommand(InfoCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(EditCommand())
	cmd.AddCommand(DeleteCommand())

	addCredentialFlags(cmd)

	return cmd
}

// addCredentialFlags attaches the shared credential-source flags to a
// command group.
func addCredentialFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("secrets", "s", "", "apikey & secretapikey for the Porkbun API, separated by a ':'")
	cmd.PersistentFlags().StringP("file", "f", "", "JSON file containing apikey & secretapikey (default porkpy.json)")
}

// newClient resolves credentials from the flag-selected sources and
// builds a client. Resolution happens once per invocation.
func newClient(cmd *cobra.Command) (*porkbun.Client, error) {
	creds, err := credentials.Resolve(credentials.Options{
		SecretString: cmd.Flag("secrets").Value.String(),
		FilePath:     cmd.Flag("file").Value.String(),
		FileExplicit: cmd.Flag("file").Changed,
		Store:        auth.DefaultStore(),
	})
	if err != nil {
		return nil, err
	}
	return porkbun.NewClient(creds), nil
}
