package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wjwat/porkpy/internal/porkbun"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// CheckCommand returns the "auth check" subcommand.
func CheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check if you are authorized to access the Porkbun API",
		Long: `Ping the Porkbun API with the resolved credentials. On success the
response contains your public IP and a success status.

With --ipv4 the request goes over the provider's IPv4-only host, so
the echoed IP is always an IPv4 address. With --auth-string the
resolved credential payload is printed instead of pinging.

Examples:
  porkpy auth check
  porkpy auth check --ipv4
  porkpy auth check -s key:secret --auth-string`,
		Args:         cobra.NoArgs,
		RunE:         runCheck,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("ipv4", false, "Ping over the IPv4-only API host")
	cmd.Flags().BoolP("auth-string", "a", false, "Display your apikey & secretapikey instead of pinging")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	creds, err := resolveCredentials(cmd)
	if err != nil {
		return err
	}

	if show, _ := cmd.Flags().GetBool("auth-string"); show {
		fmt.Fprintln(cmd.OutOrStdout(), creds.String())
		return nil
	}

	client := porkbun.NewClient(creds)
	ipv4, _ := cmd.Flags().GetBool("ipv4")

	ping := client.Ping
	if ipv4 {
		ping = client.PingIPv4
	}

	var ok bool
	var raw json.RawMessage
	var pingErr error
	if term.IsTerminal(int(os.Stdout.Fd())) {
		accessible := os.Getenv("ACCESSIBLE") != ""
		spinErr := spinner.New().
			Title("Pinging the Porkbun API...").
			Accessible(accessible).
			Output(cmd.ErrOrStderr()).
			Action(func() {
				ok, raw, pingErr = ping(cmd.Context())
			}).
			Run()
		if spinErr != nil {
			return spinErr
		}
	} else {
		ok, raw, pingErr = ping(cmd.Context())
	}
	if pingErr != nil {
		return pingErr
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	if !ok {
		return fmt.Errorf("authorization check failed: %w", porkbun.ErrUpstream)
	}
	return nil
}
