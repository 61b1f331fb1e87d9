//go:build release

package build

// Debug reports whether this binary is a debug build.
const Debug = false
