package configs

import (
	"os"

	"github.com/go-kit/log"
)

// Logger is the process-wide logfmt logger. Components take it as a
// dependency and add their own "component" key.
var Logger = NewLogger()

func NewLogger() log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

// Component returns Logger tagged with a component name.
func Component(name string) log.Logger {
	return log.With(Logger, "component", name)
}
