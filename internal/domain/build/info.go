// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	// Mode is "debug" or "release", see Debug.
	Mode string
}

// ModeName returns the name of the build mode compiled into this binary.
func ModeName() string {
	if Debug {
		return "debug"
	}
	return "release"
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/wui"
}
