// Package host is an in-memory host runtime: windows, the WebviewConfig
// component with per-frame change tracking, native handle resolution and an
// input event buffer. It implements the host-side ports for the CLI and tests.
package host

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/infrastructure/headless"
)

// ErrUnknownWindow is returned for identities that do not exist.
var ErrUnknownWindow = errors.New("unknown window")

// WindowOptions describes a window to spawn.
type WindowOptions struct {
	Title         string
	Width, Height int
	ClipChildren  bool
	// Realized windows resolve a native handle immediately. Unrealized ones
	// report port.ErrWindowNotReady until Realize is called.
	Realized bool
}

type window struct {
	opts    WindowOptions
	webview *entity.WebviewConfig
}

// World owns windows and their components. Like a host ECS it is mutated
// only from the frame loop goroutine.
type World struct {
	nextID  entity.WindowID
	windows map[entity.WindowID]*window

	added   map[entity.WindowID]struct{}
	changed map[entity.WindowID]struct{}
	removed map[entity.WindowID]struct{}

	input []InputEvent
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID:  1,
		windows: make(map[entity.WindowID]*window),
		added:   make(map[entity.WindowID]struct{}),
		changed: make(map[entity.WindowID]struct{}),
		removed: make(map[entity.WindowID]struct{}),
	}
}

// SpawnWindow creates a window with a fresh identity.
func (w *World) SpawnWindow(opts WindowOptions) entity.WindowID {
	id := w.nextID
	w.nextID++
	w.windows[id] = &window{opts: opts}
	return id
}

// SpawnWindowWithID creates a window with a caller-chosen identity.
func (w *World) SpawnWindowWithID(id entity.WindowID, opts WindowOptions) error {
	if id == 0 {
		return fmt.Errorf("window id must be non-zero")
	}
	if _, exists := w.windows[id]; exists {
		return fmt.Errorf("window %s already exists", id)
	}
	w.windows[id] = &window{opts: opts}
	if id >= w.nextID {
		w.nextID = id + 1
	}
	return nil
}

// HasWindow reports whether the identity exists.
func (w *World) HasWindow(id entity.WindowID) bool {
	_, ok := w.windows[id]
	return ok
}

// WindowIDs returns every window identity in ascending order.
func (w *World) WindowIDs() []entity.WindowID {
	ids := make([]entity.WindowID, 0, len(w.windows))
	for id := range w.windows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Window returns the options of a window.
func (w *World) Window(id entity.WindowID) (WindowOptions, bool) {
	win, ok := w.windows[id]
	if !ok {
		return WindowOptions{}, false
	}
	return win.opts, true
}

// SetWindow replaces the options of a window, keeping its realized state
// unless opts realizes it.
func (w *World) SetWindow(id entity.WindowID, opts WindowOptions) error {
	win, ok := w.windows[id]
	if !ok {
		return fmt.Errorf("set window %s: %w", id, ErrUnknownWindow)
	}
	opts.Realized = opts.Realized || win.opts.Realized
	win.opts = opts
	return nil
}

// Realize makes the native handle of a window resolvable.
func (w *World) Realize(id entity.WindowID) error {
	win, ok := w.windows[id]
	if !ok {
		return fmt.Errorf("realize %s: %w", id, ErrUnknownWindow)
	}
	win.opts.Realized = true
	return nil
}

// DespawnWindow destroys a window and its components.
func (w *World) DespawnWindow(id entity.WindowID) {
	win, ok := w.windows[id]
	if !ok {
		return
	}
	if win.webview != nil {
		w.markRemoved(id)
	}
	delete(w.windows, id)
}

// InsertWebview attaches or replaces the WebviewConfig of a window.
func (w *World) InsertWebview(id entity.WindowID, cfg entity.WebviewConfig) error {
	win, ok := w.windows[id]
	if !ok {
		return fmt.Errorf("insert webview on %s: %w", id, ErrUnknownWindow)
	}
	if win.webview == nil {
		w.added[id] = struct{}{}
	} else if _, isNew := w.added[id]; !isNew {
		w.changed[id] = struct{}{}
	}
	c := cfg
	win.webview = &c
	return nil
}

// MutateWebview edits the WebviewConfig of a window in place.
func (w *World) MutateWebview(id entity.WindowID, fn func(*entity.WebviewConfig)) error {
	win, ok := w.windows[id]
	if !ok {
		return fmt.Errorf("mutate webview on %s: %w", id, ErrUnknownWindow)
	}
	if win.webview == nil {
		return fmt.Errorf("mutate webview on %s: no webview config", id)
	}
	fn(win.webview)
	if _, isNew := w.added[id]; !isNew {
		w.changed[id] = struct{}{}
	}
	return nil
}

// RemoveWebview implements port.WebviewComponents.
func (w *World) RemoveWebview(id entity.WindowID) {
	win, ok := w.windows[id]
	if !ok || win.webview == nil {
		return
	}
	win.webview = nil
	w.markRemoved(id)
}

func (w *World) markRemoved(id entity.WindowID) {
	delete(w.added, id)
	delete(w.changed, id)
	w.removed[id] = struct{}{}
}

// Webview implements port.WebviewComponents.
func (w *World) Webview(id entity.WindowID) (entity.WebviewConfig, bool) {
	win, ok := w.windows[id]
	if !ok || win.webview == nil {
		return entity.WebviewConfig{}, false
	}
	return *win.webview, true
}

func sortedKeys(m map[entity.WindowID]struct{}) []entity.WindowID {
	ids := make([]entity.WindowID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Added implements port.WebviewComponents.
func (w *World) Added() []entity.WindowID { return sortedKeys(w.added) }

// Changed implements port.WebviewComponents. Components added this frame
// are reported by Added only.
func (w *World) Changed() []entity.WindowID { return sortedKeys(w.changed) }

// Removed implements port.WebviewComponents.
func (w *World) Removed() []entity.WindowID { return sortedKeys(w.removed) }

// EndFrame clears change tracking. Call it after every frame.
func (w *World) EndFrame() {
	clear(w.added)
	clear(w.changed)
	clear(w.removed)
}

// NativeHandle implements port.Windows.
func (w *World) NativeHandle(id entity.WindowID) (port.WindowHandle, error) {
	win, ok := w.windows[id]
	if !ok {
		return port.WindowHandle{}, fmt.Errorf("native handle of %s: %w", id, ErrUnknownWindow)
	}
	if !win.opts.Realized {
		return port.WindowHandle{}, port.ErrWindowNotReady
	}
	return port.WindowHandle{
		Kind:   headless.HandleKind,
		Width:  win.opts.Width,
		Height: win.opts.Height,
	}, nil
}

// ClipChildren implements port.Windows.
func (w *World) ClipChildren(id entity.WindowID) bool {
	win, ok := w.windows[id]
	return ok && win.opts.ClipChildren
}
