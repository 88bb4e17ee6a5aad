package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

var graphColumns = columns[litegraph.Graph]{
	headers: []interface{}{"GUID", "Name", "Labels", "Tags", "Created"},
	row: func(g litegraph.Graph) []interface{} {
		return []interface{}{g.GUID, g.Name, formatLabels(g.Labels), formatTags(g.Tags), formatTime(g.CreatedUtc)}
	},
}

// NewGraphsCommand creates the graphs command group.
func NewGraphsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "graphs",
		Aliases: []string{"graph", "g"},
		Short:   "Manage graphs",
		Long:    "List, inspect, create, delete and export graphs in the configured tenant",
	}

	cmd.AddCommand(newGraphsListCommand())
	cmd.AddCommand(newGraphsGetCommand())
	cmd.AddCommand(newGraphsCreateCommand())
	cmd.AddCommand(newGraphsDeleteCommand())
	cmd.AddCommand(newGraphsStatsCommand())
	cmd.AddCommand(newGraphsExportCommand())

	return cmd
}

func newGraphsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List graphs",
		Long:  "List all graphs in the tenant, or one page of them with --max-results",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			graphs := client.Graphs()

			return pagedList(cmd,
				func() ([]litegraph.Graph, error) { return graphs.RetrieveAll(cmd.Context()) },
				func(q *litegraph.EnumerationQuery) (*litegraph.EnumerationResult[litegraph.Graph], error) {
					return graphs.EnumerateWithQuery(cmd.Context(), q)
				},
				graphColumns,
			)
		},
	}

	addEnumerationFlags(cmd)

	return cmd
}

func newGraphsGetCommand() *cobra.Command {
	var includeData bool

	cmd := &cobra.Command{
		Use:   "get [GRAPH_GUID]",
		Short: "Get graph details",
		Long:  "Display detailed information about a graph. Defaults to the configured graph.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			graph, err := client.Graphs().Retrieve(cmd.Context(), graphArg(args), &litegraph.RetrieveOptions{
				IncludeData: includeData,
			})
			if err != nil {
				return fmt.Errorf("failed to get graph: %w", err)
			}

			return renderObject(cmd.OutOrStdout(), graph, [][2]string{
				{"GUID", graph.GUID},
				{"Tenant", graph.TenantGUID},
				{"Name", graph.Name},
				{"Labels", formatLabels(graph.Labels)},
				{"Tags", formatTags(graph.Tags)},
				{"Vectors", strconv.Itoa(len(graph.Vectors))},
				{"Created", formatTime(graph.CreatedUtc)},
				{"Updated", formatTime(graph.LastUpdateUtc)},
			})
		},
	}

	cmd.Flags().BoolVar(&includeData, "include-data", false, "include the graph's data object")

	return cmd
}

func newGraphsCreateCommand() *cobra.Command {
	var (
		labels []string
		tags   []string
		data   string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a graph",
		Long:  "Create a new graph in the configured tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrNameRequired
			}

			tagMap, err := parseTags(tags)
			if err != nil {
				return err
			}

			payload, err := parseData(data)
			if err != nil {
				return err
			}

			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			graph, err := client.Graphs().Create(cmd.Context(), &litegraph.Graph{
				Name:   args[0],
				Labels: labels,
				Tags:   tagMap,
				Data:   payload,
			})
			if err != nil {
				return fmt.Errorf("failed to create graph: %w", err)
			}

			return renderObject(cmd.OutOrStdout(), graph, [][2]string{
				{"GUID", graph.GUID},
				{"Name", graph.Name},
				{"Labels", formatLabels(graph.Labels)},
				{"Tags", formatTags(graph.Tags)},
			})
		},
	}

	cmd.Flags().StringSliceVar(&labels, "label", nil, "label to attach (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag to attach as KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&data, "data", "", "data object as JSON")

	return cmd
}

func newGraphsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete GRAPH_GUID",
		Short: "Delete a graph",
		Long:  "Delete a graph. Use --force to delete a graph that still holds nodes and edges.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if force {
				err = client.Graphs().ForceDelete(cmd.Context(), args[0])
			} else {
				err = client.Graphs().Delete(cmd.Context(), args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to delete graph: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted graph %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete the graph with all of its nodes and edges")

	return cmd
}

func newGraphsStatsCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "stats [GRAPH_GUID]",
		Short: "Show graph statistics",
		Long:  "Show object counts for a graph, or for every graph in the tenant with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			var stats map[string]litegraph.GraphStatistics

			if all {
				stats, err = client.Graphs().AllStatistics(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to get graph statistics: %w", err)
				}
			} else {
				guid := graphArg(args)

				one, err := client.Graphs().Statistics(cmd.Context(), guid)
				if err != nil {
					return fmt.Errorf("failed to get graph statistics: %w", err)
				}

				stats = map[string]litegraph.GraphStatistics{guid: *one}
			}

			return renderStatistics(cmd.OutOrStdout(), stats,
				[]interface{}{"Graph", "Nodes", "Edges", "Labels", "Tags", "Vectors"},
				func(guid string, s litegraph.GraphStatistics) []interface{} {
					return []interface{}{
						guid, strconv.Itoa(s.Nodes), strconv.Itoa(s.Edges),
						strconv.Itoa(s.Labels), strconv.Itoa(s.Tags), strconv.Itoa(s.Vectors),
					}
				},
			)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show statistics for every graph in the tenant")

	return cmd
}

func newGraphsExportCommand() *cobra.Command {
	var (
		includeData bool
		file        string
	)

	cmd := &cobra.Command{
		Use:   "export [GRAPH_GUID]",
		Short: "Export a graph as GEXF",
		Long:  "Export a graph as GEXF XML to stdout, or to a file with --file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			xml, err := client.Graphs().ExportGEXF(cmd.Context(), graphArg(args), includeData)
			if err != nil {
				return err
			}

			if file == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), xml)

				return nil
			}

			err = os.WriteFile(file, []byte(xml), constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported graph to %s\n", file)

			return nil
		},
	}

	cmd.Flags().BoolVar(&includeData, "include-data", false, "include data objects in the export")
	cmd.Flags().StringVar(&file, "file", "", "write the export to this file")

	return cmd
}
