package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/pkg/lgclient"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// Viper keys shared by the root command and the config commands.
const (
	keyEndpoint  = "endpoint"
	keyTenant    = "tenant"
	keyGraph     = "graph"
	keyAccessKey = "access-key"
	keyOutput    = "output"
	keyVerbose   = "verbose"
	keyTimeout   = "timeout"
	keyRetries   = "retries"
)

const timeFormat = "2006-01-02 15:04:05"

// Common static errors used throughout the commands package.
var (
	errInvalidTag         = errors.New("tag must be KEY=VALUE")
	errInvalidConfigValue = errors.New("invalid configuration value")
	errInvalidFlag        = errors.New("invalid flag value")
)

// userAgent is sent with every request made by the CLI.
var userAgent = "litegraph-cli/dev"

// SetVersion records the CLI version for the User-Agent header.
func SetVersion(version string) {
	userAgent = "litegraph-cli/" + version
}

// clientOptions selects which scope a command needs before a client is
// built.
type clientOptions struct {
	tenant bool
	graph  bool
}

// newClient builds a client from the merged flags, environment and config
// file.
func newClient(cmd *cobra.Command, opts clientOptions) (litegraph.Client, error) {
	endpoint := viper.GetString(keyEndpoint)
	if endpoint == "" {
		return nil, constants.ErrNoEndpointConfigured
	}

	if opts.tenant && viper.GetString(keyTenant) == "" {
		return nil, constants.ErrNoTenantConfigured
	}

	if opts.graph && viper.GetString(keyGraph) == "" {
		return nil, constants.ErrNoGraphConfigured
	}

	config := &litegraph.Config{
		Endpoint:   endpoint,
		TenantGUID: viper.GetString(keyTenant),
		GraphGUID:  viper.GetString(keyGraph),
		AccessKey:  viper.GetString(keyAccessKey),
		Timeout:    viper.GetDuration(keyTimeout),
		MaxRetries: viper.GetInt(keyRetries),
		UserAgent:  userAgent,
	}

	if viper.GetBool(keyVerbose) {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}

		config.Logger = litegraph.NewZapLogger(zl)
		config.Debug = true
	}

	client, err := lgclient.New(cmd.Context(), config)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// graphArg returns the graph named on the command line, falling back to the
// configured graph.
func graphArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return viper.GetString(keyGraph)
}

// columns renders one value as a table row.
type columns[T any] struct {
	headers []interface{}
	row     func(T) []interface{}
}

// renderList writes items in the configured output format.
func renderList[T any](w io.Writer, items []T, cols columns[T]) error {
	switch viper.GetString(keyOutput) {
	case constants.FormatJSON:
		return renderJSON(w, items)
	case constants.FormatYAML:
		return renderYAML(w, items)
	}

	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "No results")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header(cols.headers...)

	for _, item := range items {
		_ = table.Append(cols.row(item)...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderObject writes v in the configured output format. The table form is
// a Property/Value listing built from rows.
func renderObject(w io.Writer, v interface{}, rows [][2]string) error {
	switch viper.GetString(keyOutput) {
	case constants.FormatJSON:
		return renderJSON(w, v)
	case constants.FormatYAML:
		return renderYAML(w, v)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, r := range rows {
		_ = table.Append(r[0], r[1])
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func renderYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// renderStatistics writes per-object statistics sorted by GUID.
func renderStatistics[S any](w io.Writer, stats map[string]S, headers []interface{}, row func(string, S) []interface{}) error {
	switch viper.GetString(keyOutput) {
	case constants.FormatJSON:
		return renderJSON(w, stats)
	case constants.FormatYAML:
		return renderYAML(w, stats)
	}

	guids := make([]string, 0, len(stats))
	for guid := range stats {
		guids = append(guids, guid)
	}

	sort.Strings(guids)

	table := tablewriter.NewWriter(w)
	table.Header(headers...)

	for _, guid := range guids {
		_ = table.Append(row(guid, stats[guid])...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Local().Format(timeFormat)
}

func formatLabels(labels []string) string {
	if len(labels) == 0 {
		return constants.NotAvailable
	}

	return strings.Join(labels, ", ")
}

func formatTags(tags map[string]string) string {
	if len(tags) == 0 {
		return constants.NotAvailable
	}

	pairs := make([]string, 0, len(tags))
	for k, v := range tags {
		pairs = append(pairs, k+"="+v)
	}

	sort.Strings(pairs)

	return strings.Join(pairs, ", ")
}

func formatActive(active *bool) string {
	if active == nil {
		return constants.NotAvailable
	}

	return strconv.FormatBool(*active)
}

// parseTags turns repeated key=value flags into a map.
func parseTags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	tags := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidTag, pair)
		}

		tags[k] = v
	}

	return tags, nil
}

// parseData decodes a --data flag, which must hold a JSON object.
func parseData(raw string) (interface{}, error) {
	if raw == "" {
		return nil, nil
	}

	var data map[string]interface{}

	err := json.Unmarshal([]byte(raw), &data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidDataJSON, err)
	}

	return data, nil
}

// enumerationQuery builds a query from the shared list flags.
func enumerationQuery(cmd *cobra.Command) *litegraph.EnumerationQuery {
	query := litegraph.NewEnumerationQuery()

	if n, err := cmd.Flags().GetInt("max-results"); err == nil && n > 0 {
		query.WithMaxResults(n)
	}

	if token, err := cmd.Flags().GetString("continuation-token"); err == nil && token != "" {
		query.WithContinuationToken(token)
	}

	return query
}

func addEnumerationFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-results", 0, "page size (1-1000), enumerate with paging instead of listing everything")
	cmd.Flags().String("continuation-token", "", "resume a previous enumeration")
}

// pagedList lists every object, or one enumeration page when paging flags
// are set.
func pagedList[T any](
	cmd *cobra.Command,
	all func() ([]T, error),
	page func(*litegraph.EnumerationQuery) (*litegraph.EnumerationResult[T], error),
	cols columns[T],
) error {
	w := cmd.OutOrStdout()

	if !cmd.Flags().Changed("max-results") && !cmd.Flags().Changed("continuation-token") {
		items, err := all()
		if err != nil {
			return err
		}

		return renderList(w, items, cols)
	}

	result, err := page(enumerationQuery(cmd))
	if err != nil {
		return err
	}

	err = renderList(w, result.Objects, cols)
	if err != nil {
		return err
	}

	if viper.GetString(keyOutput) == constants.FormatTable || viper.GetString(keyOutput) == "" {
		if !result.EndOfResults && result.ContinuationToken != "" {
			_, _ = fmt.Fprintf(w, "%d more, continue with --continuation-token %s\n",
				result.RecordsRemaining, result.ContinuationToken)
		}
	}

	return nil
}
