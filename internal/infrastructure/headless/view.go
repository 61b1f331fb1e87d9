package headless

import (
	"fmt"
	"strings"
	"sync"

	"github.com/grafana/sobek"
	"github.com/rs/zerolog"

	"github.com/bnema/wui/internal/application/port"
)

// View is one headless webview. All methods are safe for concurrent use;
// script execution is serialized.
type View struct {
	mu        sync.Mutex
	vm        *sobek.Runtime
	log       zerolog.Logger
	window    port.WindowHandle
	opts      port.BuildOptions
	listeners map[string][]sobek.Callable
	console   []ConsoleMessage
	closed    bool
	onClose   func(*View)
}

// ConsoleMessage is one console call made by content.
type ConsoleMessage struct {
	Level string
	Text  string
}

func newView(log zerolog.Logger, window port.WindowHandle, opts port.BuildOptions) (*View, error) {
	v := &View{
		vm:        sobek.New(),
		log:       log,
		window:    window,
		opts:      opts,
		listeners: make(map[string][]sobek.Callable),
	}
	if err := v.installGlobals(); err != nil {
		return nil, fmt.Errorf("install globals: %w", err)
	}
	if opts.InitScript != "" {
		if _, err := v.vm.RunString(opts.InitScript); err != nil {
			return nil, fmt.Errorf("run initialization script: %w", err)
		}
	}
	return v, nil
}

func (v *View) installGlobals() error {
	global := v.vm.GlobalObject()
	if err := global.Set("window", global); err != nil {
		return err
	}

	if err := global.Set("addEventListener", func(call sobek.FunctionCall) sobek.Value {
		typ := call.Argument(0).String()
		fn, ok := sobek.AssertFunction(call.Argument(1))
		if !ok {
			panic(v.vm.NewTypeError("addEventListener: listener is not a function"))
		}
		v.listeners[typ] = append(v.listeners[typ], fn)
		return sobek.Undefined()
	}); err != nil {
		return err
	}

	console := v.vm.NewObject()
	for _, level := range []string{"log", "info", "warn", "error", "debug"} {
		level := level
		if err := console.Set(level, func(call sobek.FunctionCall) sobek.Value {
			parts := make([]string, 0, len(call.Arguments))
			for _, arg := range call.Arguments {
				parts = append(parts, arg.String())
			}
			text := strings.Join(parts, " ")
			v.console = append(v.console, ConsoleMessage{Level: level, Text: text})
			v.log.Debug().Str("level", level).Str("text", text).Msg("console")
			return sobek.Undefined()
		}); err != nil {
			return err
		}
	}
	if err := global.Set("console", console); err != nil {
		return err
	}

	ipc := v.vm.NewObject()
	if err := ipc.Set("postMessage", func(call sobek.FunctionCall) sobek.Value {
		if v.closed || v.opts.IPCHandler == nil {
			return sobek.Undefined()
		}
		v.opts.IPCHandler(call.Argument(0).String())
		return sobek.Undefined()
	}); err != nil {
		return err
	}
	return global.Set("ipc", ipc)
}

// Options returns the options the view was built with.
func (v *View) Options() port.BuildOptions {
	return v.opts
}

// Window returns the handle the view was embedded into.
func (v *View) Window() port.WindowHandle {
	return v.window
}

// EvaluateScript implements port.WebView.
func (v *View) EvaluateScript(script string) error {
	_, err := v.Eval(script)
	return err
}

// Eval runs script and returns its exported completion value.
func (v *View) Eval(script string) (any, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil, port.ErrWebViewClosed
	}
	val, err := v.vm.RunString(script)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}
	return val.Export(), nil
}

// Dispatch fires a DOM-like event at every listener registered for typ.
// A throwing listener does not stop the others. It reports whether any
// listener called preventDefault.
func (v *View) Dispatch(typ string, props map[string]any) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false, port.ErrWebViewClosed
	}

	prevented := false
	ev := v.vm.NewObject()
	for k, val := range props {
		if err := ev.Set(k, val); err != nil {
			return false, fmt.Errorf("set event property %q: %w", k, err)
		}
	}
	if err := ev.Set("type", typ); err != nil {
		return false, err
	}
	if err := ev.Set("preventDefault", func(sobek.FunctionCall) sobek.Value {
		prevented = true
		return sobek.Undefined()
	}); err != nil {
		return false, err
	}

	for _, fn := range v.listeners[typ] {
		if _, err := fn(sobek.Undefined(), ev); err != nil {
			v.log.Warn().Err(err).Str("event", typ).Msg("listener threw")
		}
	}
	return prevented, nil
}

// KeyDown dispatches a keydown event.
func (v *View) KeyDown(key, code string) error {
	_, err := v.Dispatch("keydown", map[string]any{"key": key, "code": code})
	return err
}

// KeyUp dispatches a keyup event.
func (v *View) KeyUp(key, code string) error {
	_, err := v.Dispatch("keyup", map[string]any{"key": key, "code": code})
	return err
}

// MouseDown dispatches a mousedown event.
func (v *View) MouseDown(button int) error {
	_, err := v.Dispatch("mousedown", map[string]any{"button": button})
	return err
}

// MouseUp dispatches a mouseup event.
func (v *View) MouseUp(button int) error {
	_, err := v.Dispatch("mouseup", map[string]any{"button": button})
	return err
}

// MouseMove dispatches a mousemove event with relative movement.
func (v *View) MouseMove(dx, dy float64) error {
	_, err := v.Dispatch("mousemove", map[string]any{"movementX": dx, "movementY": dy})
	return err
}

// ContextMenu dispatches a contextmenu event and reports whether the native
// menu would open.
func (v *View) ContextMenu() (bool, error) {
	prevented, err := v.Dispatch("contextmenu", map[string]any{"button": 2})
	if err != nil {
		return false, err
	}
	return !prevented, nil
}

// Console returns the console calls made so far.
func (v *View) Console() []ConsoleMessage {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]ConsoleMessage, len(v.console))
	copy(out, v.console)
	return out
}

// ConsoleErrors returns the text of console.error calls.
func (v *View) ConsoleErrors() []string {
	var out []string
	for _, m := range v.Console() {
		if m.Level == "error" {
			out = append(out, m.Text)
		}
	}
	return out
}

// Close implements port.WebView. Messages posted afterwards are dropped and
// the engine stops tracking the view.
func (v *View) Close() error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.closed = true
	v.listeners = nil
	v.vm.Interrupt("webview closed")
	onClose := v.onClose
	v.onClose = nil
	v.mu.Unlock()

	if onClose != nil {
		onClose(v)
	}
	return nil
}

// Closed reports whether Close was called.
func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}
