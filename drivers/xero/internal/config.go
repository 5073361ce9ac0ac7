package driver

import (
	"fmt"
	"time"

	"github.com/sailfin-io/tap-xero/utils"
)

// Credentials drives one of two token refresh topologies. Direct mode talks
// to the provider token endpoint itself; proxy mode delegates the refresh to
// a caller-operated service that owns rotation.
type Credentials struct {
	ClientID         string `json:"client_id,omitempty"`
	ClientSecret     string `json:"client_secret,omitempty"`
	RefreshToken     string `json:"refresh_token" validate:"required"`
	RefreshProxyURL  string `json:"refresh_proxy_url,omitempty"`
	RefreshProxyAuth string `json:"refresh_proxy_url_auth,omitempty"`
}

func (c *Credentials) directMode() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func (c *Credentials) proxyMode() bool {
	return c.RefreshProxyURL != ""
}

type Config struct {
	TenantID  string      `json:"tenant_id" validate:"required"`
	StartDate string      `json:"start_date" validate:"required"`
	OAuth     Credentials `json:"oauth_credentials"`
	UserAgent string      `json:"user_agent,omitempty"`
	// Contacts endpoint hides archived rows unless asked for them.
	IncludeArchivedContacts bool `json:"include_archived_contacts,omitempty"`
	MaxThreads              int  `json:"max_threads,omitempty"`
}

func (c *Config) Validate() error {
	if err := utils.Validate(c); err != nil {
		return err
	}

	if _, err := time.Parse(time.RFC3339, c.StartDate); err != nil {
		return &ConfigError{Reason: fmt.Sprintf("start_date must be an RFC3339 timestamp: %s", err)}
	}

	direct, proxy := c.OAuth.directMode(), c.OAuth.proxyMode()
	if direct && proxy {
		return &ConfigError{Reason: "oauth_credentials is ambiguous: provide either client_id/client_secret or refresh_proxy_url, not both"}
	}
	if !direct && !proxy {
		return &ConfigError{Reason: "oauth_credentials incomplete: provide client_id/client_secret for direct mode or refresh_proxy_url for proxy mode"}
	}

	return nil
}
