package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout bounds a single HTTP attempt.
	DefaultHTTPTimeout = 10 * time.Second

	// RetrieveFirstTimeout is used for read-first queries, which can scan a whole graph.
	RetrieveFirstTimeout = 120 * time.Second
)

// Retry limits.
const (
	// DefaultMaxRetries is the default number of attempts for one logical request.
	DefaultMaxRetries = 3
)

// API versions.
const (
	// APIVersion1 prefixes CRUD, search, statistics and export paths.
	APIVersion1 = "v1.0"

	// APIVersion2 prefixes enumeration and vector index management paths.
	APIVersion2 = "v2.0"
)

// HTTP headers.
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"

	// Authentication endpoint headers.
	HeaderEmail      = "x-email"
	HeaderPassword   = "x-password"
	HeaderTenantGUID = "x-tenant-guid"
	HeaderToken      = "x-token"

	ContentTypeJSON = "application/json"
)

// Sub-path segments appended after the resource name.
const (
	SegmentBulk      = "bulk"
	SegmentAll       = "all"
	SegmentFirst     = "first"
	SegmentSearch    = "search"
	SegmentStats     = "stats"
	SegmentExport    = "export"
	SegmentExistence = "existence"
	SegmentConfig    = "config"
	SegmentEnable    = "enable"
	SegmentRebuild   = "rebuild"
	SegmentDetails   = "details"
	SegmentFlush     = "flush"
	SegmentBetween   = "between"
)

// Query parameter names.
const (
	QueryForce       = "force"
	QueryIncludeData = "incldata"
	QueryIncludeSubs = "inclsub"
	QueryGUIDs       = "guids"
	QueryFrom        = "from"
	QueryTo          = "to"
)

// Export formats.
const (
	ExportFormatGEXF = "gexf"
)

// Enumeration limits.
const (
	// MinEnumerationResults is the smallest page an enumeration may request.
	MinEnumerationResults = 1

	// MaxEnumerationResults is the largest page an enumeration may request.
	MaxEnumerationResults = 1000

	// DefaultEnumerationResults is used when a query leaves MaxResults unset.
	DefaultEnumerationResults = 5
)

// UI and display constants.
const (
	// NotAvailable is printed for missing values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in logs and output.
	MaskedSecret = "***"

	// JSONIndentSize is the indentation used for JSON and YAML output.
	JSONIndentSize = 2
)

// Format constants.
const (
	// FormatJSON represents JSON output format.
	FormatJSON = "json"

	// FormatYAML represents YAML output format.
	FormatYAML = "yaml"

	// FormatTable represents table output format.
	FormatTable = "table"
)

// Boolean string constants.
const (
	BooleanTrue  = "true"
	BooleanFalse = "false"
)
