//go:build linux || darwin

package main

import (
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/wui/internal/logging"
)

// enableCrashForensics makes cgo crashes in the native engine leave a full
// traceback and, where the hard limit allows it, a core dump.
func enableCrashForensics() {
	debug.SetTraceback("crash")
	log := logging.NewFromEnv()

	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		log.Debug().Err(err).Msg("failed to read RLIMIT_CORE")
		return
	}
	if limit.Cur < limit.Max {
		limit.Cur = limit.Max
		if err := unix.Setrlimit(unix.RLIMIT_CORE, &limit); err != nil {
			log.Debug().Err(err).Msg("failed to raise RLIMIT_CORE")
		}
	}

	log.Debug().
		Str("soft", formatRlimit(limit.Cur)).
		Str("hard", formatRlimit(limit.Max)).
		Msg("core dump limits")
}

func formatRlimit(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "infinity"
	}
	return strconv.FormatUint(value, 10)
}
