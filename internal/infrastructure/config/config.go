// Package config loads the wui configuration file with viper, validates it
// and maps it onto host window specs.
package config

import "time"

// Config is the complete wui configuration.
type Config struct {
	Logging LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Frame   FrameConfig    `mapstructure:"frame" toml:"frame" json:"frame"`
	Windows []WindowConfig `mapstructure:"windows" toml:"windows" json:"windows,omitempty"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// FrameConfig controls the frame loop.
type FrameConfig struct {
	// IntervalMs is the time between two frames in milliseconds.
	IntervalMs int `mapstructure:"interval_ms" toml:"interval_ms" json:"interval_ms" jsonschema:"minimum=1,maximum=1000"`
}

// Interval returns the frame interval as a duration.
func (f FrameConfig) Interval() time.Duration {
	return time.Duration(f.IntervalMs) * time.Millisecond
}

// WindowConfig declares one host window.
type WindowConfig struct {
	ID           uint64 `mapstructure:"id" toml:"id" json:"id" jsonschema:"minimum=1"`
	Title        string `mapstructure:"title" toml:"title" json:"title,omitempty"`
	Width        int    `mapstructure:"width" toml:"width" json:"width,omitempty"`
	Height       int    `mapstructure:"height" toml:"height" json:"height,omitempty"`
	ClipChildren bool   `mapstructure:"clip_children" toml:"clip_children" json:"clip_children,omitempty"`
	// Webview turns the window into a webview-backed window. A window
	// without this section stays a plain window.
	Webview *WebviewSection `mapstructure:"webview" toml:"webview,omitempty" json:"webview,omitempty"`
}

// WebviewSection is the configuration of the webview embedded in a window.
type WebviewSection struct {
	DevTools       string `mapstructure:"devtools" toml:"devtools" json:"devtools,omitempty" jsonschema:"enum=always,enum=debug,enum=never"`
	ContextMenu    string `mapstructure:"context_menu" toml:"context_menu" json:"context_menu,omitempty" jsonschema:"enum=always,enum=debug,enum=never"`
	ContextMenuKey string `mapstructure:"context_menu_key" toml:"context_menu_key" json:"context_menu_key,omitempty" jsonschema:"description=KeyboardEvent.code that must be held to open the context menu"`
	HTML           string `mapstructure:"html" toml:"html" json:"html,omitempty"`
	URL            string `mapstructure:"url" toml:"url" json:"url,omitempty"`
}

// clone returns a deep copy.
func (c *Config) clone() *Config {
	out := *c
	out.Windows = make([]WindowConfig, len(c.Windows))
	for i, w := range c.Windows {
		if w.Webview != nil {
			wv := *w.Webview
			w.Webview = &wv
		}
		out.Windows[i] = w
	}
	return &out
}
