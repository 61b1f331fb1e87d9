// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the host runtime and the webview engine, allowing the
// application layer to remain independent of specific implementations
// (WebKitGTK, the headless JS runtime, an ECS, ...).
package port

import (
	"context"
	"unsafe"
)

// WindowHandle is a native window the engine embeds its surface into.
// Kind names the windowing system ("gtk4", "headless", ...) and Pointer is
// the platform object, nil for headless windows.
type WindowHandle struct {
	Kind    string
	Pointer unsafe.Pointer
	// Width and Height are the window size in logical pixels, zero if unknown.
	Width, Height int
}

// BackgroundThrottling controls whether the engine slows down when the
// window is hidden or unfocused.
type BackgroundThrottling int

const (
	BackgroundThrottlingSuspend BackgroundThrottling = iota
	BackgroundThrottlingThrottle
	BackgroundThrottlingDisabled
)

// BuildOptions configures a new engine instance.
type BuildOptions struct {
	Transparent          bool
	BackgroundThrottling BackgroundThrottling
	DevTools             bool
	Focused              bool
	// URL takes precedence over HTML when set.
	URL  string
	HTML string
	// InitScript runs before any script of the loaded content.
	InitScript string
	// IPCHandler receives every message body posted by the content.
	// It may be called from any goroutine.
	IPCHandler func(body string)
}

// WebviewEngine constructs native webview instances.
type WebviewEngine interface {
	// Name identifies the engine in logs.
	Name() string
	// Build creates a webview embedded in the given window.
	Build(ctx context.Context, window WindowHandle, opts BuildOptions) (WebView, error)
}

// WebView is a live engine instance.
type WebView interface {
	// EvaluateScript runs script in the world the bootstrap script was injected into.
	EvaluateScript(script string) error
	// Close releases every native resource held by the instance.
	Close() error
}
