// Package deps locates the native libraries the webkit engine links against.
package deps

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bnema/wui/internal/application/port"
)

// PkgConfigProbe uses pkg-config to query module versions.
// Implements port.RuntimeVersionProbe.
type PkgConfigProbe struct {
	// lookPath is exec.LookPath, replaceable in tests.
	lookPath func(string) (string, error)
}

// NewPkgConfigProbe creates a probe using the pkg-config found in PATH.
func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{lookPath: exec.LookPath}
}

// PkgConfigModVersion implements port.RuntimeVersionProbe.
func (p *PkgConfigProbe) PkgConfigModVersion(ctx context.Context, pkgName, prefix string) (string, error) {
	pc, err := p.lookPath("pkg-config")
	if err != nil {
		return "", &port.PkgConfigError{
			Kind:    port.PkgConfigErrorKindCommandMissing,
			Package: pkgName,
			Err:     port.ErrPkgConfigMissing,
		}
	}

	cmd := exec.CommandContext(ctx, pc, "--modversion", pkgName)
	cmd.Env = CommandEnvWithPrefix(prefix)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", &port.PkgConfigError{
			Kind:    port.PkgConfigErrorKindPackageMissing,
			Package: pkgName,
			Output:  strings.TrimSpace(string(out)),
			Err:     port.ErrPkgConfigPackageMissing,
		}
	}
	return strings.TrimSpace(string(out)), nil
}
