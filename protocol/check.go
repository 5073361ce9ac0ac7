package protocol

import (
	"fmt"

	"github.com/sailfin-io/tap-xero/utils"
	"github.com/sailfin-io/tap-xero/utils/logger"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if configPath == "not-set" {
			return fmt.Errorf("--config not passed")
		}

		return utils.UnmarshalFile(configPath, connector.GetConfigRef())
	},
	Run: func(cmd *cobra.Command, _ []string) {
		err := connector.Setup(cmd.Context())
		logger.LogConnectionStatus(err)
	},
}
