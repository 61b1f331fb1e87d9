// Package webkit implements the webview engine on WebKitGTK 6 through cgo.
// The native backend is only compiled with the webkit_cgo build tag; other
// builds get an engine whose Build reports port.ErrEngineUnavailable.
//
// All calls must happen on the GTK main thread. The frame loop that owns
// the engine is expected to run there and to call Pump once per frame.
package webkit

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/logging"
)

// HandleKind identifies a WindowHandle whose Pointer is a GtkWindow*.
const HandleKind = "gtk4-window"

// ScriptWorld is the isolated JavaScript world the bridge scripts and the
// IPC handler live in. Page scripts run in the main world and cannot reach it.
const ScriptWorld = "wui"

// ipcHandlerName is the script message handler backing window.ipc.
const ipcHandlerName = "ipc"

// ipcShim exposes the message handler as window.ipc inside ScriptWorld.
const ipcShim = `window.ipc = { postMessage: function (s) { window.webkit.messageHandlers.` +
	ipcHandlerName + `.postMessage(String(s)); } };
`

// Native callbacks carry a view id; ids are process-wide so every engine
// instance can be reached.
var (
	viewsMu    sync.Mutex
	views      = make(map[uint64]*View)
	nextViewID uint64
)

func registerView(v *View) {
	viewsMu.Lock()
	nextViewID++
	v.id = nextViewID
	views[v.id] = v
	viewsMu.Unlock()
}

func lookupView(id uint64) *View {
	viewsMu.Lock()
	defer viewsMu.Unlock()
	return views[id]
}

func forgetView(id uint64) {
	viewsMu.Lock()
	delete(views, id)
	viewsMu.Unlock()
}

// Engine builds WebKitGTK webviews. Implements port.WebviewEngine.
type Engine struct{}

// NewEngine creates an engine. Init must have succeeded before Build.
func NewEngine() *Engine {
	return &Engine{}
}

// Name implements port.WebviewEngine.
func (e *Engine) Name() string { return "webkitgtk" }

// Available reports whether the native backend is compiled in.
func Available() bool { return nativeAvailable }

// Init initializes GTK. Call it once from the main thread.
func Init() error {
	if !nativeAvailable {
		return port.ErrEngineUnavailable
	}
	return nativeInit()
}

// Pump runs pending GTK main loop events without blocking.
func (e *Engine) Pump() {
	if nativeAvailable {
		nativePump()
	}
}

// Build implements port.WebviewEngine. A handle without a native pointer
// gets a new toplevel window of the handle's size.
func (e *Engine) Build(ctx context.Context, window port.WindowHandle, opts port.BuildOptions) (port.WebView, error) {
	if !nativeAvailable {
		return nil, port.ErrEngineUnavailable
	}
	if window.Pointer != nil && window.Kind != HandleKind {
		return nil, fmt.Errorf("unsupported window handle kind %q", window.Kind)
	}

	log := logging.FromContext(ctx).With().Str("component", "webkit-engine").Logger()
	if opts.BackgroundThrottling != port.BackgroundThrottlingDisabled {
		log.Debug().Msg("background throttling policy is not configurable on WebKitGTK")
	}

	v := &View{handler: opts.IPCHandler}
	registerView(v)

	if err := nativeBuild(v, window, opts); err != nil {
		forgetView(v.id)
		return nil, err
	}

	log.Debug().
		Uint64("view", v.id).
		Bool("devtools", opts.DevTools).
		Bool("transparent", opts.Transparent).
		Msg("webkit view built")
	return v, nil
}

// View is one native webview. Implements port.WebView.
type View struct {
	id      uint64
	handler func(string)
	native  nativeView

	mu     sync.Mutex
	closed bool
}

// EvaluateScript runs script in ScriptWorld without waiting for its result.
func (v *View) EvaluateScript(script string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return port.ErrWebViewClosed
	}
	return nativeEvaluate(v, script)
}

// Close detaches and destroys the webview. Messages still in flight are dropped.
func (v *View) Close() error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.closed = true
	v.mu.Unlock()

	forgetView(v.id)
	nativeDestroy(v)
	return nil
}

// deliver hands a message posted by content to the IPC handler.
func (v *View) deliver(msg string) {
	v.mu.Lock()
	closed := v.closed
	v.mu.Unlock()
	if closed || v.handler == nil {
		return
	}
	v.handler(msg)
}
