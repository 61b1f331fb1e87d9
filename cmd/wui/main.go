package main

import (
	"runtime"

	"github.com/bnema/wui/internal/cli/cmd"
	"github.com/bnema/wui/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// GTK must be driven from the thread that initialized it. The frame loop
// runs on the main goroutine, so pin it to the main thread before anything
// else is scheduled.
func init() {
	runtime.LockOSThread()
}

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Mode:      build.ModeName(),
	})

	cmd.Execute()
}
