//go:build !release

package build

// Debug reports whether this binary is a debug build.
// Build with -tags release to turn debug-only features off.
const Debug = true
