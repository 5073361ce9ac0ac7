package constants

import "time"

const (
	// BaseURL is the accounting API root, fixed per API version.
	BaseURL = "https://api.xero.com/api.xro/2.0"

	// TokenEndpoint is the provider token exchange endpoint used in direct
	// OAuth mode. Proxy mode replaces it with a caller-supplied URL.
	TokenEndpoint = "https://identity.xero.com/connect/token"

	TenantHeader        = "Xero-Tenant-Id"
	ModifiedSinceHeader = "If-Modified-Since"
	RetryAfterHeader    = "Retry-After"

	// DefaultPageSize is the fixed page size of paginated endpoints. A page
	// with fewer records than this marks the end of the stream.
	DefaultPageSize = 100

	// Retry policy around transient upstream failures.
	MaxRetries        = 5
	BackoffBaseDelay  = 2 * time.Second
	BackoffMaxDelay   = 60 * time.Second
	RequestTimeout    = 60 * time.Second
	TokenRefreshSlack = 60 * time.Second

	// DefaultTokenTTL is assumed when a token response omits expires_in.
	DefaultTokenTTL = 3600 * time.Second

	DefaultThreadCount = 3
)

// viper keys set by the root command
const (
	ConfigFolder = "CONFIG_FOLDER"
	StatePath    = "STATE_PATH"
	StreamsPath  = "STREAMS_PATH"
)
