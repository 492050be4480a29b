package domain

import (
	"fmt"

	"github.com/wjwat/porkpy/internal/porkbun"

	"github.com/spf13/cobra"
)

// EditCommand returns the "domain edit" subcommand.
//
// Editing is permanently disabled: the provider's edit endpoint proved
// unreliable, so the command prints a fixed advisory instead of
// issuing a request. This is a product decision, not a stub.
func EditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a DNS record (disabled)",
		Long: `THIS DOES NOT ISSUE ANY API CALL.

Editing records through the API is disabled. Pull down the existing
record with 'domain info', delete it with 'domain delete', then
recreate it with 'domain create' using the modified values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), porkbun.EditAdvisory)
			return nil
		},
		SilenceUsage: true,
	}

	// Accepted and ignored so existing scripts fail softly into the
	// advisory rather than erroring on unknown flags.
	cmd.Flags().StringP("id", "i", "", "Numeric ID of the record to edit")
	cmd.Flags().StringP("type", "t", "", "New record type")
	cmd.Flags().StringP("content", "c", "", "New record content")
	cmd.Flags().StringP("name", "n", "", "New subdomain for the record")
	cmd.Flags().StringP("ttl", "l", "", "New time to live in seconds")
	cmd.Flags().StringP("priority", "p", "", "New record priority")

	return cmd
}
