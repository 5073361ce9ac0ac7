package safego

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/sailfin-io/tap-xero/utils/logger"
)

// Run starts a goroutine with a panic handler attached.
func Run(f func()) {
	go func() {
		defer Recovery(false)
		f()
	}()
}

// Recovery logs a recovered panic with its stack trace; when exit is set the
// process terminates non-zero.
func Recovery(exit bool) {
	if err := recover(); err != nil {
		logger.Error(err)
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			logger.Error(strings.ReplaceAll(line, "\t", ""))
		}
		if exit {
			os.Exit(1)
		}
	}
}
