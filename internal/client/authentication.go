package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/internal/endpoint"
	"github.com/fivetwenty-io/litegraph/internal/http"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// AuthenticationClient implements litegraph.AuthenticationClient.
type AuthenticationClient struct {
	r *resource
}

// NewAuthenticationClient creates a new authentication client.
func NewAuthenticationClient(httpClient *http.Client, logger litegraph.Logger) *AuthenticationClient {
	return &AuthenticationClient{r: newResource(httpClient, endpoint.Token, Scope{}, logger)}
}

// TenantsForEmail lists the tenants in which email has a user.
func (c *AuthenticationClient) TenantsForEmail(ctx context.Context, email string) ([]litegraph.Tenant, error) {
	if email == "" {
		return nil, litegraph.ErrEmailRequired
	}

	resp, err := c.get(ctx, "listing tenants for", []string{"tenants"}, map[string]string{
		constants.HeaderEmail: email,
	})
	if err != nil {
		return nil, err
	}

	return decodeList[litegraph.Tenant](resp, "tenants")
}

// GenerateToken exchanges credentials for a session token.
func (c *AuthenticationClient) GenerateToken(ctx context.Context, email, password, tenantGUID string) (*litegraph.AuthenticationToken, error) {
	switch {
	case email == "":
		return nil, litegraph.ErrEmailRequired
	case password == "":
		return nil, litegraph.ErrPasswordRequired
	case tenantGUID == "":
		return nil, litegraph.ErrTenantRequired
	}

	resp, err := c.get(ctx, "generating", nil, map[string]string{
		constants.HeaderEmail:      email,
		constants.HeaderPassword:   password,
		constants.HeaderTenantGUID: tenantGUID,
	})
	if err != nil {
		return nil, err
	}

	return decode[litegraph.AuthenticationToken](resp, "token")
}

// TokenDetails describes a previously issued token.
func (c *AuthenticationClient) TokenDetails(ctx context.Context, token string) (*litegraph.AuthenticationToken, error) {
	if token == "" {
		return nil, litegraph.ErrTokenRequired
	}

	resp, err := c.get(ctx, "getting details for", []string{constants.SegmentDetails}, map[string]string{
		constants.HeaderToken: token,
	})
	if err != nil {
		return nil, err
	}

	return decode[litegraph.AuthenticationToken](resp, "token details")
}

func (c *AuthenticationClient) get(ctx context.Context, op string, rest []string, headers map[string]string) (*http.Response, error) {
	path, err := c.r.v1(rest)
	if err != nil {
		return nil, err
	}

	return c.r.send(ctx, op, &http.Request{Method: nethttp.MethodGet, Path: path, Headers: headers})
}
