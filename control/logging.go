// control/logging.go
// Author: momentics <momentics@gmail.com>
//
// go-kit logging for vector growth.

package control

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/momentics/hioload-vec/api"
)

// Ensure compile-time interface compliance.
var _ api.GrowthObserver = (*LogObserver)(nil)

// NewLogger returns a logfmt logger writing to w, filtered by cfg.LogLevel.
func NewLogger(w io.Writer, cfg Config) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, levelOption(cfg.LogLevel))
}

func levelOption(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// LogObserver logs every reallocation at debug level.
type LogObserver struct {
	log log.Logger
}

// NewLogObserver wraps logger, tagging every line with component=vector.
func NewLogObserver(logger log.Logger) *LogObserver {
	return &LogObserver{log: log.With(logger, "component", "vector")}
}

// ObserveGrowth implements api.GrowthObserver.
func (o *LogObserver) ObserveGrowth(ev api.GrowthEvent) {
	level.Debug(o.log).Log(
		"msg", "vector storage reallocated",
		"cause", ev.Cause.String(),
		"old_capacity", ev.OldCapacity,
		"new_capacity", ev.NewCapacity,
		"moved", ev.Moved,
		"bytes", ev.Bytes(),
	)
}
