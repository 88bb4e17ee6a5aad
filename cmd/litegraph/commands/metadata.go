package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

var tagColumns = columns[litegraph.Tag]{
	headers: []interface{}{"GUID", "Key", "Value", "Graph", "Node", "Edge"},
	row: func(t litegraph.Tag) []interface{} {
		return []interface{}{t.GUID, t.Key, t.Value, valueOrNA(t.GraphGUID), valueOrNA(t.NodeGUID), valueOrNA(t.EdgeGUID)}
	},
}

var labelColumns = columns[litegraph.Label]{
	headers: []interface{}{"GUID", "Label", "Graph", "Node", "Edge"},
	row: func(l litegraph.Label) []interface{} {
		return []interface{}{l.GUID, l.Label, valueOrNA(l.GraphGUID), valueOrNA(l.NodeGUID), valueOrNA(l.EdgeGUID)}
	},
}

var userColumns = columns[litegraph.User]{
	headers: []interface{}{"GUID", "First Name", "Last Name", "Email", "Active"},
	row: func(u litegraph.User) []interface{} {
		return []interface{}{u.GUID, u.FirstName, u.LastName, u.Email, formatActive(u.Active)}
	},
}

var credentialColumns = columns[litegraph.Credential]{
	headers: []interface{}{"GUID", "Name", "User", "Active", "Created"},
	row: func(c litegraph.Credential) []interface{} {
		return []interface{}{c.GUID, c.Name, c.UserGUID, formatActive(c.Active), formatTime(c.CreatedUtc)}
	},
}

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Inspect tags",
		Long:  "List the tags stored in the configured tenant",
	}

	cmd.AddCommand(newTenantListCommand("tags", func(c litegraph.Client) litegraph.TagsClient { return c.Tags() }, tagColumns))

	return cmd
}

// NewLabelsCommand creates the labels command group.
func NewLabelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Inspect labels",
		Long:  "List the labels stored in the configured tenant",
	}

	cmd.AddCommand(newTenantListCommand("labels", func(c litegraph.Client) litegraph.LabelsClient { return c.Labels() }, labelColumns))

	return cmd
}

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Inspect users",
		Long:    "List the users of the configured tenant",
	}

	cmd.AddCommand(newTenantListCommand("users", func(c litegraph.Client) litegraph.UsersClient { return c.Users() }, userColumns))

	return cmd
}

// NewCredentialsCommand creates the credentials command group.
func NewCredentialsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credentials",
		Aliases: []string{"creds"},
		Short:   "Inspect credentials",
		Long:    "List the credentials issued in the configured tenant. Bearer tokens are never printed.",
	}

	cmd.AddCommand(newTenantListCommand("credentials", func(c litegraph.Client) litegraph.CredentialsClient { return c.Credentials() }, credentialColumns))

	return cmd
}

// lister is the part of a tenant-scoped resource client the list commands
// use.
type lister[T any] interface {
	litegraph.AllRetriever[T]
	litegraph.QueryEnumerator[T]
}

func newTenantListCommand[T any, C lister[T]](noun string, pick func(litegraph.Client) C, cols columns[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + noun,
		Long:  "List all " + noun + " in the tenant, or one page of them with --max-results",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, clientOptions{tenant: true})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			resource := pick(client)

			return pagedList(cmd,
				func() ([]T, error) { return resource.RetrieveAll(cmd.Context()) },
				func(q *litegraph.EnumerationQuery) (*litegraph.EnumerationResult[T], error) {
					return resource.EnumerateWithQuery(cmd.Context(), q)
				},
				cols,
			)
		},
	}

	addEnumerationFlags(cmd)

	return cmd
}
