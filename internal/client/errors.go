package client

import "errors"

// Static errors for err113 compliance.
var (
	errNotText = errors.New("response is not valid UTF-8 text")
)
