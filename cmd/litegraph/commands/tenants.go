package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

var tenantColumns = columns[litegraph.Tenant]{
	headers: []interface{}{"GUID", "Name", "Active", "Created"},
	row: func(t litegraph.Tenant) []interface{} {
		return []interface{}{t.GUID, t.Name, formatActive(t.Active), formatTime(t.CreatedUtc)}
	},
}

// NewTenantsCommand creates the tenants command group.
func NewTenantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenants",
		Aliases: []string{"tenant"},
		Short:   "Manage tenants",
		Long:    "List, inspect, create and delete LiteGraph tenants",
	}

	cmd.AddCommand(newTenantsListCommand())
	cmd.AddCommand(newTenantsGetCommand())
	cmd.AddCommand(newTenantsCreateCommand())
	cmd.AddCommand(newTenantsDeleteCommand())
	cmd.AddCommand(newTenantsStatsCommand())

	return cmd
}

func newTenantsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		Long:  "List all tenants, or one page of them with --max-results",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			tenants := client.Tenants()

			return pagedList(cmd,
				func() ([]litegraph.Tenant, error) { return tenants.RetrieveAll(cmd.Context()) },
				func(q *litegraph.EnumerationQuery) (*litegraph.EnumerationResult[litegraph.Tenant], error) {
					return tenants.EnumerateWithQuery(cmd.Context(), q)
				},
				tenantColumns,
			)
		},
	}

	addEnumerationFlags(cmd)

	return cmd
}

func newTenantsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TENANT_GUID",
		Short: "Get tenant details",
		Long:  "Display detailed information about a specific tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			tenant, err := client.Tenants().Retrieve(cmd.Context(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get tenant: %w", err)
			}

			return renderObject(cmd.OutOrStdout(), tenant, [][2]string{
				{"GUID", tenant.GUID},
				{"Name", tenant.Name},
				{"Active", formatActive(tenant.Active)},
				{"Created", formatTime(tenant.CreatedUtc)},
				{"Updated", formatTime(tenant.LastUpdateUtc)},
			})
		},
	}
}

func newTenantsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a tenant",
		Long:  "Create a new tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrNameRequired
			}

			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			tenant, err := client.Tenants().Create(cmd.Context(), &litegraph.Tenant{
				Name:   args[0],
				Active: litegraph.Bool(true),
			})
			if err != nil {
				return fmt.Errorf("failed to create tenant: %w", err)
			}

			return renderObject(cmd.OutOrStdout(), tenant, [][2]string{
				{"GUID", tenant.GUID},
				{"Name", tenant.Name},
			})
		},
	}
}

func newTenantsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TENANT_GUID",
		Short: "Delete a tenant",
		Long:  "Delete a tenant. Use --force to delete a tenant that still holds graphs and other objects.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if force {
				err = client.Tenants().ForceDelete(cmd.Context(), args[0])
			} else {
				err = client.Tenants().Delete(cmd.Context(), args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to delete tenant: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted tenant %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete the tenant and everything it contains")

	return cmd
}

func newTenantsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [TENANT_GUID]",
		Short: "Show tenant statistics",
		Long:  "Show object counts for one tenant, or for every tenant when no GUID is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			var stats map[string]litegraph.TenantStatistics

			if len(args) == 1 {
				one, err := client.Tenants().Statistics(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("failed to get tenant statistics: %w", err)
				}

				stats = map[string]litegraph.TenantStatistics{args[0]: *one}
			} else {
				stats, err = client.Tenants().AllStatistics(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to get tenant statistics: %w", err)
				}
			}

			return renderStatistics(cmd.OutOrStdout(), stats,
				[]interface{}{"Tenant", "Graphs", "Nodes", "Edges", "Labels", "Tags", "Vectors"},
				func(guid string, s litegraph.TenantStatistics) []interface{} {
					return []interface{}{
						guid, strconv.Itoa(s.Graphs), strconv.Itoa(s.Nodes), strconv.Itoa(s.Edges),
						strconv.Itoa(s.Labels), strconv.Itoa(s.Tags), strconv.Itoa(s.Vectors),
					}
				},
			)
		},
	}
}
