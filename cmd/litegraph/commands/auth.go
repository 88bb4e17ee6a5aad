package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/litegraph/internal/constants"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Work with session tokens",
		Long:  "Look up a user's tenants, generate session tokens and inspect them",
	}

	cmd.AddCommand(newAuthTenantsCommand())
	cmd.AddCommand(newAuthTokenCommand())
	cmd.AddCommand(newAuthDetailsCommand())

	return cmd
}

func newAuthTenantsCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "List the tenants a user belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			tenants, err := client.Authentication().TenantsForEmail(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("failed to look up tenants: %w", err)
			}

			return renderList(cmd.OutOrStdout(), tenants, tenantColumns)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email address")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthTokenCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a session token",
		Long: `Generate a session token for a user.

The token is issued for the tenant selected with --tenant. The password is
prompted for when --password is not given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error

				password, err = promptPassword(cmd)
				if err != nil {
					return err
				}
			}

			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			token, err := client.Authentication().GenerateToken(cmd.Context(), email, password, client.TenantGUID())
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			if token.Token == "" {
				return renderObject(cmd.OutOrStdout(), token, [][2]string{
					{"Valid", strconv.FormatBool(token.Valid)},
				})
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token.Token)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "user password (prompted for when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthDetailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "details TOKEN",
		Short: "Show what a session token grants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			token, err := client.Authentication().TokenDetails(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to read token details: %w", err)
			}

			user := constants.NotAvailable
			if token.User != nil {
				user = token.User.Email
			}

			return renderObject(cmd.OutOrStdout(), token, [][2]string{
				{"Tenant", valueOrNA(token.TenantGUID)},
				{"User", valueOrNA(token.UserGUID)},
				{"Email", user},
				{"Issued", formatTime(token.TimestampUtc)},
				{"Expires", formatTime(token.ExpirationUtc)},
				{"Expired", strconv.FormatBool(token.IsExpired)},
				{"Valid", strconv.FormatBool(token.Valid)},
			})
		},
	}
}

func promptPassword(cmd *cobra.Command) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	// #nosec G115 -- file descriptors fit in an int
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(raw) == 0 {
		return "", constants.ErrPasswordRequired
	}

	return string(raw), nil
}
