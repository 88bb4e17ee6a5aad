package endpoint

import (
	"net/url"
	"strings"

	"github.com/fivetwenty-io/litegraph/internal/constants"
)

// Param is a single query parameter. A flag has no value and is rendered as
// the bare key.
type Param struct {
	Key   string
	Value string
	Flag  bool
}

// Value returns a key=value query parameter.
func Value(key, value string) Param {
	return Param{Key: key, Value: value}
}

// Flag returns a bare query flag such as "force".
func Flag(key string) Param {
	return Param{Key: key, Flag: true}
}

// FlagIf returns the flag when on is true and nil otherwise, so callers can
// collect optional flags without branching.
func FlagIf(key string, on bool) []Param {
	if !on {
		return nil
	}

	return []Param{Flag(key)}
}

// V1 builds a "v1.0/" path.
func V1(d Descriptor, args []string, params ...Param) string {
	return Build(constants.APIVersion1, d, args, params...)
}

// V2 builds a "v2.0/" path.
func V2(d Descriptor, args []string, params ...Param) string {
	return Build(constants.APIVersion2, d, args, params...)
}

// Build renders version/[tenants/{t}/][graphs/{g}/]{name}/{rest...}[?query].
//
// Empty arguments are dropped before any are consumed. When the descriptor
// requires a tenant the first remaining argument becomes the tenant segment,
// then likewise for the graph. The resource name follows and every other
// argument is appended in order. Query values are rendered first, in the
// order given and form-encoded, then the bare flags. Build never fails; scope
// checks happen before it is called.
func Build(version string, d Descriptor, args []string, params ...Param) string {
	rest := make([]string, 0, len(args))

	for _, arg := range args {
		if arg != "" {
			rest = append(rest, arg)
		}
	}

	parts := make([]string, 0, len(rest)+4)

	if d.RequireTenant && len(rest) > 0 {
		parts = append(parts, "tenants", rest[0])
		rest = rest[1:]
	}

	if d.RequireGraph && len(rest) > 0 {
		parts = append(parts, "graphs", rest[0])
		rest = rest[1:]
	}

	if d.Name != "" {
		parts = append(parts, d.Name)
	}

	parts = append(parts, rest...)

	path := version + "/" + strings.Join(parts, "/")

	query := Query(params...)
	if query != "" {
		path += "?" + query
	}

	return path
}

// Query renders parameters as a query string: key=value pairs first, then
// flags. Returns "" when there is nothing to render.
func Query(params ...Param) string {
	values := make([]string, 0, len(params))
	flags := make([]string, 0, len(params))

	for _, p := range params {
		if p.Key == "" {
			continue
		}

		if p.Flag {
			flags = append(flags, p.Key)

			continue
		}

		values = append(values, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}

	return strings.Join(append(values, flags...), "&")
}
