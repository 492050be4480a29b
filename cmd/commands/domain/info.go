package domain

import (
	"fmt"
	"os"

	"github.com/wjwat/porkpy/internal/porkbun"
	"github.com/wjwat/porkpy/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// InfoCommand returns the "domain info" subcommand.
func InfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <domain>",
		Short: "Show DNS records or the SSL bundle for a domain",
		Long: `Show all DNS records for the given domain. With --type and --name,
show only the matching records. With --ssl, show the SSL certificate
bundle instead.

--type and --name must be given together, and neither may be combined
with --ssl.

Examples:
  porkpy domain info example.com
  porkpy domain info example.com --type A --name www
  porkpy domain info example.com --ssl`,
		Args:         cobra.ExactArgs(1),
		RunE:         runInfo,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("type", "t", "", "Record type to retrieve (A, MX, CNAME, ALIAS, TXT, NS, AAAA, SRV, TLSA, CAA)")
	cmd.Flags().StringP("name", "n", "", "Subdomain of the records to retrieve (requires --type)")
	cmd.Flags().Bool("ssl", false, "Retrieve the SSL certificate bundle for the domain")

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	recordType, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	ssl, _ := cmd.Flags().GetBool("ssl")

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	opts := porkbun.RetrieveOpts{
		Type: porkbun.RecordType(recordType),
		Name: name,
		SSL:  ssl,
	}

	// Plain record listing on a terminal opens the interactive browser.
	if !ssl && recordType == "" && name == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := tui.RunRecordList(client, domainName); err != nil {
			return fmt.Errorf("failed to browse records: %w", err)
		}
		return nil
	}

	raw, err := client.Retrieve(cmd.Context(), domainName, opts)
	if raw != nil {
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	}
	return err
}
