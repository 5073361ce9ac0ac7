package driver

import "fmt"

// ConfigError means the supplied config is malformed or incomplete. Raised
// before any network call, never retried.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s", e.Reason)
}

// AuthError means a token refresh could not produce a usable token. It
// carries the provider's status and body text for diagnosis.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("token refresh failed with status %d: %s", e.Status, e.Body)
}

// RetryableAPIError is a transient upstream condition (5xx, 429 with
// Retry-After, stale token 401). Retried with backoff; surfaced only after
// the retry budget is exhausted.
type RetryableAPIError struct {
	Status int
	Reason string
}

func (e *RetryableAPIError) Error() string {
	return fmt.Sprintf("retryable api error (%d): %s", e.Status, e.Reason)
}

// FatalAPIError aborts the current stream's sync immediately. Bookmarks
// already committed for earlier pages are kept.
type FatalAPIError struct {
	Status  int
	Message string
}

func (e *FatalAPIError) Error() string {
	return fmt.Sprintf("fatal api error (%d): %s", e.Status, e.Message)
}
