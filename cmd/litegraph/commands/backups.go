package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

var backupColumns = columns[litegraph.Backup]{
	headers: []interface{}{"Filename", "Size", "SHA256", "Created"},
	row: func(b litegraph.Backup) []interface{} {
		return []interface{}{b.Filename, strconv.FormatInt(b.Length, 10), valueOrNA(b.SHA256Hash), formatTime(b.CreatedUtc)}
	},
}

// NewBackupsCommand creates the backups command group.
func NewBackupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "backups",
		Aliases: []string{"backup"},
		Short:   "Manage database backups",
		Long:    "List, create and delete server-side database backups. Requires an administrator access key.",
	}

	cmd.AddCommand(newBackupsListCommand())
	cmd.AddCommand(newBackupsCreateCommand())
	cmd.AddCommand(newBackupsDeleteCommand())
	cmd.AddCommand(newBackupsFlushCommand())

	return cmd
}

func newBackupsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List backups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			backups, err := client.Admin().ListBackups(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list backups: %w", err)
			}

			return renderList(cmd.OutOrStdout(), backups, backupColumns)
		},
	}
}

func newBackupsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create FILENAME",
		Short: "Create a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if !client.Admin().CreateBackup(cmd.Context(), args[0]) {
				return fmt.Errorf("failed to create backup %s: %w", args[0], constants.ErrOperationFailed)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created backup %s\n", args[0])

			return nil
		},
	}
}

func newBackupsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete FILENAME",
		Short: "Delete a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if !client.Admin().DeleteBackup(cmd.Context(), args[0]) {
				return fmt.Errorf("failed to delete backup %s: %w", args[0], constants.ErrOperationFailed)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted backup %s\n", args[0])

			return nil
		},
	}
}

func newBackupsFlushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flush",
		Short: "Flush the in-memory database to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if !client.Admin().FlushToDisk(cmd.Context()) {
				return fmt.Errorf("failed to flush database: %w", constants.ErrOperationFailed)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Flushed database to disk")

			return nil
		},
	}
}
