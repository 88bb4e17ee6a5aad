package constants

import "errors"

// Configuration errors.
var (
	ErrNoEndpointConfigured = errors.New("no endpoint configured, use 'litegraph config set endpoint <url>'")
	ErrNoTenantConfigured   = errors.New("no tenant configured, use --tenant or 'litegraph config set tenant <guid>'")
	ErrNoGraphConfigured    = errors.New("no graph configured, use --graph or 'litegraph config set graph <guid>'")
	ErrUnknownConfigKey     = errors.New("unknown configuration key")
)

// Input errors.
var (
	ErrPasswordRequired = errors.New("password is required")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidDataJSON  = errors.New("--data must be a JSON object")
)

// Operation errors.
var (
	ErrOperationFailed = errors.New("operation failed, the server did not confirm it")
)
