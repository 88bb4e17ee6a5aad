package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// AdminClient implements litegraph.AdminClient.
type AdminClient struct {
	backups *resource
	admin   *resource
}

// NewAdminClient creates a new admin client.
func NewAdminClient(httpClient *http.Client, logger litegraph.Logger) *AdminClient {
	return &AdminClient{
		backups: newResource(httpClient, endpoint.Backups, Scope{}, logger),
		admin:   newResource(httpClient, endpoint.Admin, Scope{}, logger),
	}
}

type backupRequest struct {
	Filename string `json:"Filename"`
}

// CreateBackup asks the server to write a backup named filename.
func (c *AdminClient) CreateBackup(ctx context.Context, filename string) bool {
	if filename == "" {
		return c.failed("creating backup", litegraph.ErrFilenameRequired)
	}

	path := endpoint.V1(endpoint.Backups, nil)

	_, err := c.backups.send(ctx, "creating", &http.Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   &backupRequest{Filename: filename},
	})
	if err != nil {
		return c.failed("creating backup", err)
	}

	return true
}

// BackupExists reports whether a backup named filename exists.
func (c *AdminClient) BackupExists(ctx context.Context, filename string) bool {
	return exists(ctx, c.backups, filename)
}

// RetrieveBackup reads a backup including its contents.
func (c *AdminClient) RetrieveBackup(ctx context.Context, filename string) (*litegraph.Backup, error) {
	if filename == "" {
		return nil, litegraph.ErrFilenameRequired
	}

	return retrieve[litegraph.Backup](ctx, c.backups, filename, nil)
}

// ListBackups lists every backup without contents.
func (c *AdminClient) ListBackups(ctx context.Context) ([]litegraph.Backup, error) {
	return retrieveAll[litegraph.Backup](ctx, c.backups)
}

// DeleteBackup deletes the backup named filename.
func (c *AdminClient) DeleteBackup(ctx context.Context, filename string) bool {
	if filename == "" {
		return c.failed("deleting backup", litegraph.ErrFilenameRequired)
	}

	err := remove(ctx, c.backups, filename)
	if err != nil {
		return c.failed("deleting backup", err)
	}

	return true
}

// FlushToDisk asks the server to persist its in-memory state.
func (c *AdminClient) FlushToDisk(ctx context.Context) bool {
	path := endpoint.V1(endpoint.Admin, []string{constants.SegmentFlush})

	_, err := c.admin.send(ctx, "flushing", &http.Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   struct{}{},
	})
	if err != nil {
		return c.failed("flushing to disk", err)
	}

	return true
}

func (c *AdminClient) failed(op string, err error) bool {
	if c.admin.logger != nil {
		c.admin.logger.Warn(op+" failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return false
}
