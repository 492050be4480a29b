package domain

import (
	"fmt"

	"github.com/wjwat/porkpy/internal/porkbun"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "domain create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Create a DNS record",
		Long: `Create a new DNS record for the given domain.

Examples:
  porkpy domain create example.com --type A --name www --content 1.2.3.4
  porkpy domain create example.com --type MX --content mail.example.com --priority 10
  porkpy domain create example.com --type TXT --name _dmarc --content "v=DMARC1; p=none"`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("type", "t", "", "Record type (A, MX, CNAME, ALIAS, TXT, NS, AAAA, SRV, TLSA, CAA) [required]")
	cmd.Flags().StringP("content", "c", "", "The answer content for the record [required]")
	cmd.Flags().StringP("name", "n", "", "Subdomain for the record (leave empty for the root domain, use * for wildcard)")
	cmd.Flags().StringP("ttl", "l", "300", "Time to live in seconds; the minimum and default is 300")
	cmd.Flags().StringP("priority", "p", "0", "Priority of the record for types that support it")

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("content")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	recordType, _ := cmd.Flags().GetString("type")
	content, _ := cmd.Flags().GetString("content")
	name, _ := cmd.Flags().GetString("name")
	ttl, _ := cmd.Flags().GetString("ttl")
	priority, _ := cmd.Flags().GetString("priority")

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	raw, err := client.CreateRecord(cmd.Context(), domainName, porkbun.CreateOpts{
		Type:     porkbun.RecordType(recordType),
		Content:  content,
		Name:     name,
		TTL:      ttl,
		Priority: priority,
	})
	if raw != nil {
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	}
	return err
}
