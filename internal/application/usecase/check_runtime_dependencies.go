package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/logging"
)

// Minimum versions the webkit engine is written against. The isolated
// script world APIs it relies on are part of WebKitGTK 6.0.
const (
	defaultMinGTK4Version      = "4.10"
	defaultMinWebKitGTKVersion = "2.42"
)

// RuntimeDependencyStatus is the result of checking one native library.
type RuntimeDependencyStatus struct {
	PkgConfigName string
	DisplayName   string

	Installed bool
	Version   string

	RequiredVersion  string
	MeetsRequirement bool

	Error string
}

// CheckRuntimeDependenciesUseCase checks the native libraries needed by the
// webkit engine.
type CheckRuntimeDependenciesUseCase struct {
	probe port.RuntimeVersionProbe
}

// NewCheckRuntimeDependenciesUseCase creates a new use case.
func NewCheckRuntimeDependenciesUseCase(probe port.RuntimeVersionProbe) *CheckRuntimeDependenciesUseCase {
	return &CheckRuntimeDependenciesUseCase{probe: probe}
}

// CheckRuntimeDependenciesInput contains options for runtime dependency checks.
type CheckRuntimeDependenciesInput struct {
	// Prefix optionally points to a custom runtime prefix (e.g. /opt/webkitgtk).
	Prefix string

	// Minimum versions. Empty uses the defaults.
	MinGTK4Version      string
	MinWebKitGTKVersion string
}

// CheckRuntimeDependenciesOutput contains the result of the checks.
type CheckRuntimeDependenciesOutput struct {
	Prefix string
	OK     bool
	Checks []RuntimeDependencyStatus
}

// Execute probes every dependency. A failed probe is reported in its status,
// never as an error.
func (uc *CheckRuntimeDependenciesUseCase) Execute(ctx context.Context, input CheckRuntimeDependenciesInput) (*CheckRuntimeDependenciesOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "runtime-check").Logger()

	checks := []RuntimeDependencyStatus{
		{PkgConfigName: "gtk4", DisplayName: "GTK4", RequiredVersion: orDefault(input.MinGTK4Version, defaultMinGTK4Version)},
		{PkgConfigName: "webkitgtk-6.0", DisplayName: "WebKitGTK 6.0", RequiredVersion: orDefault(input.MinWebKitGTKVersion, defaultMinWebKitGTKVersion)},
	}

	allOK := true
	for i := range checks {
		status := &checks[i]

		version, err := uc.probe.PkgConfigModVersion(ctx, status.PkgConfigName, input.Prefix)
		if err != nil {
			status.Error = err.Error()
			allOK = false
			continue
		}
		status.Installed = true
		status.Version = strings.TrimSpace(version)

		cmp, ok := compareVersion(status.Version, status.RequiredVersion)
		if !ok {
			status.Error = "could not parse version"
			allOK = false
			continue
		}
		status.MeetsRequirement = cmp >= 0
		allOK = allOK && status.MeetsRequirement
	}

	log.Debug().Bool("ok", allOK).Str("prefix", input.Prefix).Msg("runtime dependency check complete")
	return &CheckRuntimeDependenciesOutput{Prefix: input.Prefix, OK: allOK, Checks: checks}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// compareVersion compares dotted numeric versions, missing segments count as
// zero. ok is false if either cannot be parsed.
func compareVersion(a, b string) (cmp int, ok bool) {
	av, ok := parseVersion(a)
	if !ok {
		return 0, false
	}
	bv, ok := parseVersion(b)
	if !ok {
		return 0, false
	}

	for i := range max(len(av), len(bv)) {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		if x != y {
			if x > y {
				return 1, true
			}
			return -1, true
		}
	}
	return 0, true
}

// parseVersion parses the numeric prefix of a version such as "2.44.1" or
// "4.14.2-rc1".
func parseVersion(s string) ([]int, bool) {
	end := strings.IndexFunc(s, func(r rune) bool { return (r < '0' || r > '9') && r != '.' })
	if end >= 0 {
		s = s[:end]
	}
	if s == "" {
		return nil, false
	}

	fields := strings.Split(s, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, true
}
