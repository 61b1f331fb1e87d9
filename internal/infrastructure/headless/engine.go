// Package headless implements a webview engine on top of an embedded
// JavaScript runtime. It has no rendering: content is driven by evaluating
// scripts and dispatching DOM-like events. It backs the CLI demo loop and
// exercises the injected scripts in tests.
package headless

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/logging"
)

// HandleKind is the WindowHandle kind served by the headless host.
const HandleKind = "headless"

// Engine builds headless views. Implements port.WebviewEngine.
type Engine struct {
	mu    sync.Mutex
	views []*View
}

// NewEngine creates a headless engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Name implements port.WebviewEngine.
func (e *Engine) Name() string { return "headless" }

// Build implements port.WebviewEngine.
func (e *Engine) Build(ctx context.Context, window port.WindowHandle, opts port.BuildOptions) (port.WebView, error) {
	log := logging.FromContext(ctx).With().Str("component", "headless-engine").Logger()

	v, err := newView(log, window, opts)
	if err != nil {
		return nil, err
	}
	v.onClose = e.forget

	e.mu.Lock()
	e.views = append(e.views, v)
	e.mu.Unlock()

	log.Debug().
		Bool("devtools", opts.DevTools).
		Bool("transparent", opts.Transparent).
		Msg("headless view built")
	return v, nil
}

func (e *Engine) forget(v *View) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.views = slices.DeleteFunc(e.views, func(other *View) bool { return other == v })
}

// Views returns the views that are still open, in creation order.
func (e *Engine) Views() []*View {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*View, len(e.views))
	copy(out, e.views)
	return out
}

// Last returns the most recently built open view, or nil.
func (e *Engine) Last() *View {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.views) == 0 {
		return nil
	}
	return e.views[len(e.views)-1]
}
