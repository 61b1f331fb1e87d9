package config

import "github.com/bnema/wui/internal/domain/entity"

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
)

// DefaultConfig returns the configuration written on first run: one
// webview-backed window with build-mode dependent policies.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Frame: FrameConfig{
			IntervalMs: 16,
		},
		Windows: []WindowConfig{
			{
				ID:     1,
				Title:  "wui",
				Width:  defaultWindowWidth,
				Height: defaultWindowHeight,
				Webview: &WebviewSection{
					DevTools:    entity.PolicyDebug,
					ContextMenu: entity.PolicyDebug,
				},
			},
		},
	}
}
