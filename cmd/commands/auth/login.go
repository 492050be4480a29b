package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/wjwat/porkpy/internal/auth"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// LoginCommand returns the "auth login" subcommand.
func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the Porkbun API key pair in the OS keychain",
		Long: `Store the Porkbun API key pair in the OS keychain. Stored credentials
are used when no --secrets string, credentials file, or environment
variables are present.

Example:
  porkpy auth login`,
		Args:         cobra.NoArgs,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("apikey", "", "API key (optional, overrides prompt)")
	cmd.Flags().String("secretapikey", "", "Secret API key (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	apiKey, _ := cmd.Flags().GetString("apikey")
	secretKey, _ := cmd.Flags().GetString("secretapikey")
	apiKey = strings.TrimSpace(apiKey)
	secretKey = strings.TrimSpace(secretKey)

	if apiKey == "" || secretKey == "" {
		var err error
		if term.IsTerminal(int(os.Stdin.Fd())) {
			apiKey, secretKey, err = promptForm(apiKey, secretKey)
		} else {
			apiKey, secretKey, err = promptPlain(cmd, apiKey, secretKey)
		}
		if err != nil {
			return err
		}
	}

	if apiKey == "" || secretKey == "" {
		return fmt.Errorf("both the apikey and secretapikey are required")
	}

	store := auth.DefaultStore()
	if err := store.SetToken(auth.KeyAPI, apiKey); err != nil {
		return fmt.Errorf("failed to store api key: %w", err)
	}
	if err := store.SetToken(auth.KeySecret, secretKey); err != nil {
		return fmt.Errorf("failed to store secret api key: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Saved Porkbun credentials to the keychain.")
	return nil
}

// promptForm collects the key pair with a huh form, masking input.
func promptForm(apiKey, secretKey string) (string, string, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	var fields []huh.Field
	if apiKey == "" {
		fields = append(fields, huh.NewInput().
			Title("API Key").
			Placeholder("pk1_...").
			EchoMode(huh.EchoModePassword).
			Value(&apiKey))
	}
	if secretKey == "" {
		fields = append(fields, huh.NewInput().
			Title("Secret API Key").
			Placeholder("sk1_...").
			EchoMode(huh.EchoModePassword).
			Value(&secretKey))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(accessible)
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(apiKey), strings.TrimSpace(secretKey), nil
}

// promptPlain reads the key pair without echo when stdin is not a
// terminal capable of running the form.
func promptPlain(cmd *cobra.Command, apiKey, secretKey string) (string, string, error) {
	read := func(label string) (string, error) {
		fmt.Fprintf(cmd.OutOrStdout(), "Enter %s: ", label)
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(bytes)), nil
	}

	var err error
	if apiKey == "" {
		if apiKey, err = read("API key"); err != nil {
			return "", "", err
		}
	}
	if secretKey == "" {
		if secretKey, err = read("secret API key"); err != nil {
			return "", "", err
		}
	}
	return apiKey, secretKey, nil
}
