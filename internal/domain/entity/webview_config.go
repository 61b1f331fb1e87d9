package entity

import (
	"fmt"
	"strings"

	"github.com/bnema/wui/internal/domain/build"
)

// DevTools selects when the webview developer tools are available.
type DevTools int

const (
	// DevToolsDebug allows the devtools only in debug builds.
	DevToolsDebug DevTools = iota
	// DevToolsAlways allows the devtools, even in release builds.
	DevToolsAlways
	// DevToolsNever never allows the devtools.
	DevToolsNever
)

// Policy names used in configuration files.
const (
	PolicyAlways = "always"
	PolicyDebug  = "debug"
	PolicyNever  = "never"
)

// Enabled resolves the policy against the compiled build mode.
func (d DevTools) Enabled() bool {
	switch d {
	case DevToolsAlways:
		return true
	case DevToolsNever:
		return false
	default:
		return build.Debug
	}
}

// String returns the configuration name of the policy.
func (d DevTools) String() string {
	switch d {
	case DevToolsAlways:
		return PolicyAlways
	case DevToolsNever:
		return PolicyNever
	default:
		return PolicyDebug
	}
}

// ParseDevTools parses a configuration value. Empty means the default (debug).
func ParseDevTools(s string) (DevTools, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", PolicyDebug:
		return DevToolsDebug, nil
	case PolicyAlways:
		return DevToolsAlways, nil
	case PolicyNever:
		return DevToolsNever, nil
	default:
		return DevToolsDebug, fmt.Errorf("invalid devtools policy %q (want always, debug or never)", s)
	}
}

// ContextMenuMode is the build-mode part of a ContextMenu policy.
type ContextMenuMode int

const (
	// ContextMenuDebug allows the context menu only in debug builds.
	ContextMenuDebug ContextMenuMode = iota
	// ContextMenuAlways allows the context menu, even in release builds.
	ContextMenuAlways
	// ContextMenuNever never allows the context menu.
	ContextMenuNever
)

// ContextMenu controls the native context menu of the embedded content.
// Non-never modes may carry an activation key: the menu then only opens
// while that key is held.
type ContextMenu struct {
	Mode ContextMenuMode
	// Key is the activation key code. Empty means no key is required.
	Key KeyCode
}

// ContextMenuAlwaysWith returns an always-allowed policy, optionally gated by key.
func ContextMenuAlwaysWith(key KeyCode) ContextMenu {
	return ContextMenu{Mode: ContextMenuAlways, Key: key}
}

// ContextMenuDebugWith returns a debug-only policy, optionally gated by key.
func ContextMenuDebugWith(key KeyCode) ContextMenu {
	return ContextMenu{Mode: ContextMenuDebug, Key: key}
}

// ContextMenuDisabled returns the never policy.
func ContextMenuDisabled() ContextMenu {
	return ContextMenu{Mode: ContextMenuNever}
}

// ContextMenuResolution is the build-resolved form of a ContextMenu.
//
// Enabled=false means the menu is never allowed (suppression always active).
// Enabled=true with HasKey=false lifts suppression unconditionally, and with
// HasKey=true only while Key is held.
type ContextMenuResolution struct {
	Enabled bool
	HasKey  bool
	Key     KeyCode
}

// Resolve collapses the build-mode dependent variants.
func (c ContextMenu) Resolve() ContextMenuResolution {
	switch c.Mode {
	case ContextMenuNever:
		return ContextMenuResolution{}
	case ContextMenuDebug:
		if !build.Debug {
			return ContextMenuResolution{}
		}
	}
	if c.Key == "" {
		return ContextMenuResolution{Enabled: true}
	}
	return ContextMenuResolution{Enabled: true, HasKey: true, Key: c.Key}
}

// String returns the configuration name of the mode.
func (m ContextMenuMode) String() string {
	switch m {
	case ContextMenuAlways:
		return PolicyAlways
	case ContextMenuNever:
		return PolicyNever
	default:
		return PolicyDebug
	}
}

// ParseContextMenu parses a configuration mode and optional activation key.
func ParseContextMenu(mode, key string) (ContextMenu, error) {
	key = strings.TrimSpace(key)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", PolicyDebug:
		return ContextMenuDebugWith(KeyCode(key)), nil
	case PolicyAlways:
		return ContextMenuAlwaysWith(KeyCode(key)), nil
	case PolicyNever:
		if key != "" {
			return ContextMenu{}, fmt.Errorf("context menu activation key %q has no effect with policy %q", key, PolicyNever)
		}
		return ContextMenuDisabled(), nil
	default:
		return ContextMenu{}, fmt.Errorf("invalid context menu policy %q (want always, debug or never)", mode)
	}
}

// DefaultHTML is loaded when neither HTML nor URL is configured. Engines only
// run initialization scripts once a document is loaded.
const DefaultHTML = "<html><head></head><body></body></html>"

// WebviewConfig is the component attached to a window identity. Adding it
// creates a webview in the window, removing it (or destroying the window)
// removes the webview.
//
// DevTools, HTML and URL are read once at creation. Only ContextMenu is
// re-applied to a live webview when the component changes.
type WebviewConfig struct {
	DevTools    DevTools
	ContextMenu ContextMenu
	HTML        string
	URL         string
}

// NewWebviewConfig returns a config with default policies.
func NewWebviewConfig() WebviewConfig {
	return WebviewConfig{
		DevTools:    DevToolsDebug,
		ContextMenu: ContextMenuDebugWith(""),
	}
}

// WithDevTools sets the devtools policy.
func (c WebviewConfig) WithDevTools(d DevTools) WebviewConfig {
	c.DevTools = d
	return c
}

// WithContextMenu sets the context menu policy.
func (c WebviewConfig) WithContextMenu(m ContextMenu) WebviewConfig {
	c.ContextMenu = m
	return c
}

// WithHTML sets the initial document.
func (c WebviewConfig) WithHTML(html string) WebviewConfig {
	c.HTML = html
	return c
}

// WithURL sets the initial URL. It takes precedence over HTML.
func (c WebviewConfig) WithURL(url string) WebviewConfig {
	c.URL = url
	return c
}

// InitialHTML returns the document to load when no URL is set.
func (c WebviewConfig) InitialHTML() string {
	if c.HTML == "" {
		return DefaultHTML
	}
	return c.HTML
}
