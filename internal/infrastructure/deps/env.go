package deps

import (
	"os"
	"path/filepath"
	"strings"
)

// CommandEnvWithPrefix returns the current environment with pkg-config and
// library search paths under prefix prepended. An empty prefix returns the
// environment unchanged.
func CommandEnvWithPrefix(prefix string) []string {
	base := os.Environ()
	if strings.TrimSpace(prefix) == "" {
		return base
	}

	updates := prefixEnv(prefix)
	out := make([]string, 0, len(base)+len(updates))
	for _, kv := range base {
		k, _, _ := strings.Cut(kv, "=")
		if _, ok := updates[k]; ok {
			continue
		}
		out = append(out, kv)
	}
	for k, values := range updates {
		out = append(out, k+"="+prependPathList(os.Getenv(k), values...))
	}
	return out
}

func prefixEnv(prefix string) map[string][]string {
	prefix = filepath.Clean(prefix)
	return map[string][]string{
		"PKG_CONFIG_PATH": {
			filepath.Join(prefix, "lib", "pkgconfig"),
			filepath.Join(prefix, "lib64", "pkgconfig"),
			filepath.Join(prefix, "share", "pkgconfig"),
		},
		"LD_LIBRARY_PATH": {
			filepath.Join(prefix, "lib"),
			filepath.Join(prefix, "lib64"),
		},
	}
}

// prependPathList puts values in front of a colon separated list, dropping
// duplicates and empty entries.
func prependPathList(existing string, values ...string) string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(values)+4)

	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, v := range values {
		add(v)
	}
	if existing != "" {
		for _, v := range strings.Split(existing, ":") {
			add(v)
		}
	}
	return strings.Join(out, ":")
}
