package usecase

import (
	"fmt"
	"slices"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/queue"
)

// WebviewHandle is a live webview owned by the Registry.
type WebviewHandle struct {
	Window entity.WindowID
	View   port.WebView
	// Outbound carries messages from the content to the host. It is written
	// by the engine's IPC callback and drained by the frame loop.
	Outbound *queue.Queue[string]
	// Inbound carries messages from the host to the content.
	Inbound *queue.Queue[string]
}

// Registry maps window identities to live webviews. It is owned by the
// frame loop and is not safe for concurrent use.
type Registry struct {
	handles map[entity.WindowID]*WebviewHandle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[entity.WindowID]*WebviewHandle)}
}

// Get returns the handle of a window.
func (r *Registry) Get(id entity.WindowID) (*WebviewHandle, bool) {
	h, ok := r.handles[id]
	return h, ok
}

// Contains reports whether the window is webview-backed.
func (r *Registry) Contains(id entity.WindowID) bool {
	_, ok := r.handles[id]
	return ok
}

// Len returns the number of live webviews.
func (r *Registry) Len() int {
	return len(r.handles)
}

// IDs returns the webview-backed windows in ascending order.
func (r *Registry) IDs() []entity.WindowID {
	ids := make([]entity.WindowID, 0, len(r.handles))
	for id := range r.handles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (r *Registry) insert(h *WebviewHandle) error {
	if _, exists := r.handles[h.Window]; exists {
		return fmt.Errorf("window %s already has a webview", h.Window)
	}
	r.handles[h.Window] = h
	return nil
}

func (r *Registry) remove(id entity.WindowID) (*WebviewHandle, bool) {
	h, ok := r.handles[id]
	if ok {
		delete(r.handles, id)
	}
	return h, ok
}

// CloseAll closes and drops every webview. Used on shutdown.
func (r *Registry) CloseAll() []error {
	var errs []error
	for _, id := range r.IDs() {
		h, _ := r.remove(id)
		if err := h.View.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close webview of %s: %w", id, err))
		}
	}
	return errs
}
