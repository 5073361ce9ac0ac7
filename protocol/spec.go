package protocol

import (
	"github.com/spf13/cobra"

	"github.com/sailfin-io/tap-xero/utils/logger"
)

// specCmd represents the spec command
var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "spec command",
	RunE: func(_ *cobra.Command, _ []string) error {
		logger.LogSpec(configSchema())
		return nil
	},
}

// configSchema is the JSON schema of the connector config, declared by hand
// so property ordering and descriptions stay stable across releases.
func configSchema() map[string]any {
	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"required": []string{
			"tenant_id", "start_date", "oauth_credentials",
		},
		"properties": map[string]any{
			"tenant_id": map[string]any{
				"type":        "string",
				"description": "Xero organisation (tenant) identifier, sent on every request",
			},
			"start_date": map[string]any{
				"type":        "string",
				"format":      "date-time",
				"description": "RFC3339 timestamp; incremental streams start here on first sync",
			},
			"oauth_credentials": map[string]any{
				"type":     "object",
				"required": []string{"refresh_token"},
				"properties": map[string]any{
					"client_id":              map[string]any{"type": "string"},
					"client_secret":          map[string]any{"type": "string"},
					"refresh_token":          map[string]any{"type": "string"},
					"refresh_proxy_url":      map[string]any{"type": "string"},
					"refresh_proxy_url_auth": map[string]any{"type": "string"},
				},
			},
			"user_agent": map[string]any{
				"type": "string",
			},
			"include_archived_contacts": map[string]any{
				"type":        "boolean",
				"description": "Also sync archived rows from the contacts stream",
			},
			"max_threads": map[string]any{
				"type":        "integer",
				"description": "Maximum number of streams synced in parallel",
			},
		},
	}
}
