package tapxero

import (
	"os"

	"github.com/sailfin-io/tap-xero/protocol"
	"github.com/sailfin-io/tap-xero/utils/logger"
	"github.com/sailfin-io/tap-xero/utils/safego"
)

func RegisterDriver(driver protocol.Driver) {
	defer safego.Recovery(true)

	// Execute the root command
	err := protocol.CreateRootCommand(driver).Execute()
	if err != nil {
		logger.Fatal(err)
	}

	logger.Flush()
	os.Exit(0)
}
