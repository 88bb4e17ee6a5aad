package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

var nodeColumns = columns[litegraph.Node]{
	headers: []interface{}{"GUID", "Name", "Labels", "Tags", "Created"},
	row: func(n litegraph.Node) []interface{} {
		return []interface{}{n.GUID, n.Name, formatLabels(n.Labels), formatTags(n.Tags), formatTime(n.CreatedUtc)}
	},
}

// NewNodesCommand creates the nodes command group.
func NewNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node", "n"},
		Short:   "Manage nodes",
		Long:    "List, inspect, create and delete nodes in the configured graph",
	}

	cmd.AddCommand(newNodesListCommand())
	cmd.AddCommand(newNodesGetCommand())
	cmd.AddCommand(newNodesCreateCommand())
	cmd.AddCommand(newNodesDeleteCommand())
	cmd.AddCommand(newNodesNeighborsCommand())

	return cmd
}

func newNodesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List nodes",
		Long:  "List all nodes in the graph, or one page of them with --max-results",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true, graph: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			nodes := client.Nodes()

			return pagedList(cmd,
				func() ([]litegraph.Node, error) { return nodes.RetrieveAll(cmd.Context()) },
				func(q *litegraph.EnumerationQuery) (*litegraph.EnumerationResult[litegraph.Node], error) {
					return nodes.EnumerateWithQuery(cmd.Context(), q)
				},
				nodeColumns,
			)
		},
	}

	addEnumerationFlags(cmd)

	return cmd
}

func newNodesGetCommand() *cobra.Command {
	var includeData bool

	cmd := &cobra.Command{
		Use:   "get NODE_GUID",
		Short: "Get node details",
		Long:  "Display detailed information about a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true, graph: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			node, err := client.Nodes().Retrieve(cmd.Context(), args[0], &litegraph.RetrieveOptions{
				IncludeData:         includeData,
				IncludeSubordinates: true,
			})
			if err != nil {
				return fmt.Errorf("failed to get node: %w", err)
			}

			return renderObject(cmd.OutOrStdout(), node, [][2]string{
				{"GUID", node.GUID},
				{"Graph", node.GraphGUID},
				{"Name", node.Name},
				{"Labels", formatLabels(node.Labels)},
				{"Tags", formatTags(node.Tags)},
				{"Created", formatTime(node.CreatedUtc)},
				{"Updated", formatTime(node.LastUpdateUtc)},
			})
		},
	}

	cmd.Flags().BoolVar(&includeData, "include-data", false, "include the node's data object")

	return cmd
}

func newNodesCreateCommand() *cobra.Command {
	var (
		labels []string
		tags   []string
		data   string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a node",
		Long: `Create a node in the configured graph.

Example:
  litegraph nodes create alice --label person --tag team=core --data '{"age": 30}'`,
		Args: cobra.ExactArgs(1),
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

			client, err := newClient(cmd, clientOptions{tenant: true, graph: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			node, err := client.Nodes().Create(cmd.Context(), &litegraph.Node{
				Name:   args[0],
				Labels: labels,
				Tags:   tagMap,
				Data:   payload,
			})
			if err != nil {
				return fmt.Errorf("failed to create node: %w", err)
			}

			return renderObject(cmd.OutOrStdout(), node, [][2]string{
				{"GUID", node.GUID},
				{"Name", node.Name},
				{"Labels", formatLabels(node.Labels)},
				{"Tags", formatTags(node.Tags)},
			})
		},
	}

	cmd.Flags().StringSliceVar(&labels, "label", nil, "label to attach (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag to attach as KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&data, "data", "", "data object as JSON")

	return cmd
}

func newNodesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NODE_GUID...",
		Short: "Delete nodes",
		Long:  "Delete one or more nodes from the configured graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true, graph: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if len(args) == 1 {
				err = client.Nodes().Delete(cmd.Context(), args[0])
			} else {
				err = client.Nodes().DeleteMany(cmd.Context(), args)
			}

			if err != nil {
				return fmt.Errorf("failed to delete nodes: %w", err)
			}

			for _, guid := range args {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted node %s\n", guid)
			}

			return nil
		},
	}
}

func newNodesNeighborsCommand() *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "neighbors NODE_GUID",
		Short: "List adjacent nodes",
		Long:  "List the parents, children or all neighbors of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true, graph: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			var nodes []litegraph.Node

			switch direction {
			case "parents":
				nodes, err = client.Nodes().Parents(cmd.Context(), args[0])
			case "children":
				nodes, err = client.Nodes().Children(cmd.Context(), args[0])
			case "all", "":
				nodes, err = client.Nodes().Neighbors(cmd.Context(), args[0])
			default:
				return fmt.Errorf("%w: direction must be parents, children or all", errInvalidFlag)
			}

			if err != nil {
				return fmt.Errorf("failed to list neighbors: %w", err)
			}

			return renderList(cmd.OutOrStdout(), nodes, nodeColumns)
		},
	}

	cmd.Flags().StringVar(&direction, "direction", "all", "parents, children or all")

	return cmd
}
