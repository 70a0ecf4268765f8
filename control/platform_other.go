//go:build !linux && !windows

package control

import (
	"os"
	"runtime"
)

// RegisterPlatformProbes sets generic platform debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.pagesize", func() any {
		return os.Getpagesize()
	})
	dp.RegisterProbe("platform.pid", func() any {
		return os.Getpid()
	})
}
