package domain

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DeleteCommand returns the "domain delete" subcommand.
func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <domain>",
		Short: "Delete a DNS record by its ID",
		Long: `Delete a DNS record for the given domain. The record is identified by
the ID shown in the 'domain info' output.

--confirm must be given explicitly for the deletion to proceed.

Example:
  porkpy domain delete example.com --id 106926659 --confirm`,
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("id", "i", "", "Numeric ID of the record to delete [required]")
	cmd.Flags().Bool("confirm", false, "Confirm that you want to delete this record [required]")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	recordID, _ := cmd.Flags().GetString("id")
	confirm, _ := cmd.Flags().GetBool("confirm")

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	var raw json.RawMessage
	var deleteErr error
	if term.IsTerminal(int(os.Stdout.Fd())) {
		accessible := os.Getenv("ACCESSIBLE") != ""
		spinErr := spinner.New().
			Title(fmt.Sprintf("Deleting record %s...", recordID)).
			Accessible(accessible).
			Output(cmd.ErrOrStderr()).
			Action(func() {
				raw, deleteErr = client.DeleteRecord(cmd.Context(), domainName, recordID, confirm)
			}).
			Run()
		if spinErr != nil {
			return spinErr
		}
	} else {
		raw, deleteErr = client.DeleteRecord(cmd.Context(), domainName, recordID, confirm)
	}

	if raw != nil {
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	}
	return deleteErr
}
