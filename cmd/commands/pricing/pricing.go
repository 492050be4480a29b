package pricing

import (
	"errors"
	"fmt"

	"github.com/wjwat/porkpy/internal/credentials"
	"github.com/wjwat/porkpy/internal/porkbun"

	"github.com/spf13/cobra"
)

// NewCommand returns the "pricing" command.
//
// Pricing requires no credentials; /pricing/get is an open endpoint.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Check pricing of TLDs",
		Long: `Print the JSON pricing response for the requested TLDs. Without --tld
the full price list for every TLD Porkbun offers is printed. Repeat
--tld to request several.

TLDs the API does not price are dropped from the output without an
error.

Examples:
  porkpy pricing
  porkpy pricing --tld com --tld net`,
		Args:         cobra.NoArgs,
		RunE:         runPricing,
		SilenceUsage: true,
	}

	cmd.Flags().StringSliceP("tld", "t", nil, "Specific TLD to price; repeat for multiple, omit for all")

	return cmd
}

func runPricing(cmd *cobra.Command, args []string) error {
	tlds, _ := cmd.Flags().GetStringSlice("tld")

	client := porkbun.NewClient(credentials.Credentials{})
	raw, err := client.Pricing(cmd.Context(), tlds)
	if raw != nil {
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	}
	if errors.Is(err, porkbun.ErrUpstream) {
		return fmt.Errorf("pricing lookup was unsuccessful: %w", err)
	}
	return err
}
