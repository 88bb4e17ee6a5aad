package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

var edgeColumns = columns[litegraph.Edge]{
	headers: []interface{}{"GUID", "Name", "From", "To", "Cost", "Labels"},
	row: func(e litegraph.Edge) []interface{} {
		return []interface{}{e.GUID, e.Name, e.From, e.To, strconv.Itoa(e.Cost), formatLabels(e.Labels)}
	},
}

// NewEdgesCommand creates the edges command group.
func NewEdgesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edges",
		Aliases: []string{"edge", "e"},
		Short:   "Manage edges",
		Long:    "List, inspect and delete edges in the configured graph",
	}

	cmd.AddCommand(newEdgesListCommand())
	cmd.AddCommand(newEdgesGetCommand())
	cmd.AddCommand(newEdgesDeleteCommand())

	return cmd
}

func newEdgesListCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List edges",
		Long:  "List all edges in the graph, the edges of one node with --from or --to, or the edges between two nodes with both",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true, graph: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			var edges []litegraph.Edge

			switch {
			case from != "" && to != "":
				edges, err = client.Edges().Between(cmd.Context(), from, to)
			case from != "":
				edges, err = client.Nodes().EdgesFrom(cmd.Context(), from)
			case to != "":
				edges, err = client.Nodes().EdgesTo(cmd.Context(), to)
			default:
				all := client.Edges()

				return pagedList(cmd,
					func() ([]litegraph.Edge, error) { return all.RetrieveAll(cmd.Context()) },
					func(q *litegraph.EnumerationQuery) (*litegraph.EnumerationResult[litegraph.Edge], error) {
						return all.EnumerateWithQuery(cmd.Context(), q)
					},
					edgeColumns,
				)
			}

			if err != nil {
				return fmt.Errorf("failed to list edges: %w", err)
			}

			return renderList(cmd.OutOrStdout(), edges, edgeColumns)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "only edges leaving this node")
	cmd.Flags().StringVar(&to, "to", "", "only edges arriving at this node")
	addEnumerationFlags(cmd)

	return cmd
}

func newEdgesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EDGE_GUID",
		Short: "Get edge details",
		Long:  "Display detailed information about an edge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true, graph: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			edge, err := client.Edges().Retrieve(cmd.Context(), args[0], &litegraph.RetrieveOptions{
				IncludeSubordinates: true,
			})
			if err != nil {
				return fmt.Errorf("failed to get edge: %w", err)
			}

			return renderObject(cmd.OutOrStdout(), edge, [][2]string{
				{"GUID", edge.GUID},
				{"Name", edge.Name},
				{"From", edge.From},
				{"To", edge.To},
				{"Cost", strconv.Itoa(edge.Cost)},
				{"Labels", formatLabels(edge.Labels)},
				{"Tags", formatTags(edge.Tags)},
				{"Created", formatTime(edge.CreatedUtc)},
			})
		},
	}
}

func newEdgesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EDGE_GUID...",
		Short: "Delete edges",
		Long:  "Delete one or more edges from the configured graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true, graph: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if len(args) == 1 {
				err = client.Edges().Delete(cmd.Context(), args[0])
			} else {
				err = client.Edges().DeleteMany(cmd.Context(), args)
			}

			if err != nil {
				return fmt.Errorf("failed to delete edges: %w", err)
			}

			for _, guid := range args {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted edge %s\n", guid)
			}

			return nil
		},
	}
}
