package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/litegraph/internal/constants"
)

// NewVectorIndexCommand creates the vector-index command group.
func NewVectorIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vector-index",
		Aliases: []string{"vi"},
		Short:   "Manage graph vector indexes",
		Long:    "Inspect and rebuild the HNSW vector index of a graph. GRAPH defaults to the configured graph.",
	}

	cmd.AddCommand(newVectorIndexGetCommand())
	cmd.AddCommand(newVectorIndexStatsCommand())
	cmd.AddCommand(newVectorIndexRebuildCommand())

	return cmd
}

func newVectorIndexGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [GRAPH_GUID]",
		Short: "Show the index configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			config, err := client.VectorIndex().Config(cmd.Context(), graphArg(args))
			if err != nil {
				return fmt.Errorf("failed to get vector index: %w", err)
			}

			return renderObject(cmd.OutOrStdout(), config, [][2]string{
				{"Graph", config.GraphGUID},
				{"Type", string(config.VectorIndexType)},
				{"Dimensionality", strconv.Itoa(config.VectorDimensionality)},
				{"M", strconv.Itoa(config.M)},
				{"EfConstruction", strconv.Itoa(config.EfConstruction)},
				{"DefaultEf", strconv.Itoa(config.DefaultEf)},
				{"Distance Metric", valueOrNA(config.DistanceMetric)},
				{"Loaded", strconv.FormatBool(config.IsLoaded)},
			})
		},
	}
}

func newVectorIndexStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [GRAPH_GUID]",
		Short: "Show index statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			stats, err := client.VectorIndex().Stats(cmd.Context(), graphArg(args))
			if err != nil {
				return fmt.Errorf("failed to get vector index statistics: %w", err)
			}

			lastRebuild := constants.NotAvailable
			if stats.LastRebuild != nil {
				lastRebuild = formatTime(*stats.LastRebuild)
			}

			return renderObject(cmd.OutOrStdout(), stats, [][2]string{
				{"Vectors", strconv.FormatInt(stats.VectorCount, 10)},
				{"Dimensions", strconv.Itoa(stats.Dimensions)},
				{"Type", valueOrNA(stats.IndexType)},
				{"Memory Bytes", strconv.FormatInt(stats.EstimatedMemoryBytes, 10)},
				{"Last Rebuild", lastRebuild},
				{"Loaded", strconv.FormatBool(stats.IsLoaded)},
			})
		},
	}
}

func newVectorIndexRebuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild [GRAPH_GUID]",
		Short: "Rebuild the index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			graph := graphArg(args)

			err = client.VectorIndex().Rebuild(cmd.Context(), graph)
			if err != nil {
				return fmt.Errorf("failed to rebuild vector index: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rebuilt vector index for graph %s\n", graph)

			return nil
		},
	}
}
