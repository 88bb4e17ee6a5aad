package litegraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is the "Error" value of a LiteGraph error envelope.
type ErrorCode string

// Server error codes.
const (
	ErrorCodeAuthenticationFailed ErrorCode = "AuthenticationFailed"
	ErrorCodeAuthorizationFailed  ErrorCode = "AuthorizationFailed"
	ErrorCodeBadRequest           ErrorCode = "BadRequest"
	ErrorCodeConflict             ErrorCode = "Conflict"
	ErrorCodeDeserializationError ErrorCode = "DeserializationError"
	ErrorCodeInactive             ErrorCode = "Inactive"
	ErrorCodeInternalError        ErrorCode = "InternalError"
	ErrorCodeInvalidRange         ErrorCode = "InvalidRange"
	ErrorCodeInUse                ErrorCode = "InUse"
	ErrorCodeNotEmpty             ErrorCode = "NotEmpty"
	ErrorCodeNotFound             ErrorCode = "NotFound"
	ErrorCodeTooLarge             ErrorCode = "TooLarge"
)

// ErrClient is the base kind every error returned by the server or the
// transport unwraps to.
var ErrClient = errors.New("litegraph client error")

// Error kinds. Match them with errors.Is.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrAuthorizationFailed  = errors.New("authorization failed")
	ErrBadRequest           = errors.New("bad request")
	ErrConflict             = errors.New("conflict")
	ErrDeserialization      = errors.New("deserialization error")
	ErrInactive             = errors.New("inactive")
	ErrServer               = errors.New("server error")
	ErrInvalidRange         = errors.New("invalid range")
	ErrInUse                = errors.New("in use")
	ErrNotEmpty             = errors.New("not empty")
	ErrNotFound             = errors.New("not found")

	// ErrTransport covers failures with no usable server answer: exhausted
	// connection retries and non-JSON error bodies.
	ErrTransport = errors.New("transport error")
	// ErrValidation covers problems detected locally before any request.
	ErrValidation = errors.New("validation error")
)

// Pre-flight errors. All of them are validation errors.
var (
	ErrTenantRequired   = fmt.Errorf("%w: tenant GUID is required for this resource", ErrValidation)
	ErrGraphRequired    = fmt.Errorf("%w: graph GUID is required for this resource", ErrValidation)
	ErrGUIDRequired     = fmt.Errorf("%w: resource GUID is required", ErrValidation)
	ErrNilInput         = fmt.Errorf("%w: input must not be nil", ErrValidation)
	ErrInvalidGraphGUID = fmt.Errorf("%w: graph GUID is not a valid UUID", ErrValidation)
	ErrEndpointRequired = fmt.Errorf("%w: endpoint is required", ErrValidation)
	ErrConfigRequired   = fmt.Errorf("%w: config is required", ErrValidation)
	ErrEmailRequired    = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrPasswordRequired = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrTokenRequired    = fmt.Errorf("%w: token cannot be empty", ErrValidation)
	ErrFilenameRequired = fmt.Errorf("%w: backup filename cannot be empty", ErrValidation)
	ErrNoEmbeddings     = fmt.Errorf("%w: the supplied vector list must include at least one value", ErrValidation)
	ErrNoExistenceCheck = fmt.Errorf("%w: request must contain at least one existence check", ErrValidation)
	ErrVectorGraph      = fmt.Errorf("%w: graph GUID must be supplied when performing a node or edge vector search", ErrValidation)
)

// Static errors for err113 compliance.
var (
	ErrNoMatch         = errors.New("no matching object found")
	ErrExport          = errors.New("error exporting GEXF")
	ErrNotConfigured   = errors.New("litegraph is not configured, call Configure first")
	ErrClientClosed    = errors.New("client is closed")
	ErrUnexpectedEmpty = errors.New("unexpected empty response body")
)

type codeInfo struct {
	kind        error
	description string
}

var codes = map[ErrorCode]codeInfo{
	ErrorCodeAuthenticationFailed: {ErrAuthenticationFailed, "Your authentication material was not accepted."},
	ErrorCodeAuthorizationFailed:  {ErrAuthorizationFailed, "Your authentication material was accepted, but you are not authorized to perform this request."},
	ErrorCodeBadRequest:           {ErrBadRequest, "We were unable to discern your request. Please check your URL, query, and request body."},
	ErrorCodeConflict:             {ErrConflict, "Operation failed as it would create a conflict with an existing resource."},
	ErrorCodeDeserializationError: {ErrDeserialization, "Your request body was invalid and could not be deserialized."},
	ErrorCodeInactive:             {ErrInactive, "Your account, credentials, or the requested resource are marked as inactive."},
	ErrorCodeInternalError:        {ErrServer, "An internal error has been encountered."},
	ErrorCodeInvalidRange:         {ErrInvalidRange, "An invalid range has been supplied and cannot be fulfilled."},
	ErrorCodeInUse:                {ErrInUse, "The requested resource is in use."},
	ErrorCodeNotEmpty:             {ErrNotEmpty, "The requested resource is not empty."},
	ErrorCodeNotFound:             {ErrNotFound, "The requested resource was not found."},
	ErrorCodeTooLarge:             {ErrBadRequest, "The size of your request exceeds the maximum allowed by this server."},
}

// Description returns the canned description for a known code.
func (c ErrorCode) Description() (string, bool) {
	info, ok := codes[c]

	return info.description, ok
}

// ErrorResponse is the JSON error envelope returned by the server.
type ErrorResponse struct {
	Code        ErrorCode   `json:"Error"`
	Context     interface{} `json:"Context,omitempty"`
	Description string      `json:"Description,omitempty"`
}

// ParseErrorResponse parses an error envelope from JSON.
func ParseErrorResponse(data []byte) (*ErrorResponse, error) {
	var errResp ErrorResponse

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error response: %w", err)
	}

	return &errResp, nil
}

// APIError is an error answered by the server with a JSON envelope.
type APIError struct {
	StatusCode int
	Code       ErrorCode
	// Message is the canned description for known codes, otherwise the
	// description the server sent.
	Message string
	// ServerDescription is the description exactly as the server sent it.
	ServerDescription string
	Context           interface{}

	kind error
}

// NewAPIError maps an error envelope to a typed error. Unknown codes map to
// the generic ErrClient kind and keep the server's description.
func NewAPIError(statusCode int, resp *ErrorResponse) *APIError {
	if resp == nil {
		resp = &ErrorResponse{}
	}

	apiErr := &APIError{
		StatusCode:        statusCode,
		Code:              resp.Code,
		Message:           resp.Description,
		ServerDescription: resp.Description,
		Context:           resp.Context,
		kind:              ErrClient,
	}

	if info, ok := codes[resp.Code]; ok {
		apiErr.kind = info.kind
		apiErr.Message = info.description
	}

	return apiErr
}

// Error implements the error interface.
func (e *APIError) Error() string {
	code := string(e.Code)
	if code == "" {
		code = "UnknownError"
	}

	if e.Message == "" {
		return fmt.Sprintf("%s (status: %d)", code, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s (status: %d)", code, e.Message, e.StatusCode)
}

// Kind returns the sentinel kind the error maps to.
func (e *APIError) Kind() error {
	if e.kind == nil {
		return ErrClient
	}

	return e.kind
}

// Unwrap exposes the kind and the base client error to errors.Is.
func (e *APIError) Unwrap() []error {
	kind := e.Kind()
	if kind == ErrClient {
		return []error{ErrClient}
	}

	return []error{kind, ErrClient}
}

// TransportError is returned when no usable server answer was obtained.
type TransportError struct {
	// Attempts is set when connection-level retries were exhausted.
	Attempts int
	// StatusCode and Body are set when the server answered an error
	// status with a body that is not JSON.
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("server responded with non-JSON content (status: %d): %s",
			e.StatusCode, strings.TrimSpace(string(e.Body)))
	}

	if e.Attempts == 0 {
		return fmt.Sprintf("request failed: %v", e.Err)
	}

	if e.Err == nil {
		return fmt.Sprintf("request failed after %d attempts", e.Attempts)
	}

	return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap exposes ErrTransport, ErrClient and the underlying cause.
func (e *TransportError) Unwrap() []error {
	errs := []error{ErrTransport, ErrClient}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// ValidationError lists problems found in a request model before sending.
type ValidationError struct {
	Model    string
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Model, strings.Join(e.Problems, "; "))
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsUnauthorized checks if the server rejected or did not authorize the
// credentials.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed) || errors.Is(err, ErrAuthorizationFailed)
}

// IsValidation checks if the error was raised locally before sending.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsTransport checks if the error is a transport error.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
