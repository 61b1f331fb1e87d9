package host

import (
	"errors"

	"github.com/bnema/wui/internal/domain/entity"
)

// WindowSpec is the desired state of one window.
type WindowSpec struct {
	ID      entity.WindowID
	Options WindowOptions
	// Webview is nil for a plain window.
	Webview *entity.WebviewConfig
}

// ReconcileResult lists what Reconcile changed.
type ReconcileResult struct {
	Spawned   []entity.WindowID
	Despawned []entity.WindowID
	Inserted  []entity.WindowID
	Changed   []entity.WindowID
	Removed   []entity.WindowID
}

// Empty reports whether nothing changed.
func (r ReconcileResult) Empty() bool {
	return len(r.Spawned)+len(r.Despawned)+len(r.Inserted)+len(r.Changed)+len(r.Removed) == 0
}

// Reconcile drives the world towards specs: missing windows are spawned,
// windows absent from specs are despawned, and webview components are
// inserted, replaced or removed to match.
func (w *World) Reconcile(specs []WindowSpec) (ReconcileResult, error) {
	var res ReconcileResult
	var errs []error

	wanted := make(map[entity.WindowID]struct{}, len(specs))
	for _, spec := range specs {
		wanted[spec.ID] = struct{}{}

		if !w.HasWindow(spec.ID) {
			if err := w.SpawnWindowWithID(spec.ID, spec.Options); err != nil {
				errs = append(errs, err)
				continue
			}
			res.Spawned = append(res.Spawned, spec.ID)
		} else if err := w.SetWindow(spec.ID, spec.Options); err != nil {
			errs = append(errs, err)
			continue
		}

		current, has := w.Webview(spec.ID)
		switch {
		case spec.Webview == nil && has:
			w.RemoveWebview(spec.ID)
			res.Removed = append(res.Removed, spec.ID)
		case spec.Webview != nil && !has:
			if err := w.InsertWebview(spec.ID, *spec.Webview); err != nil {
				errs = append(errs, err)
				continue
			}
			res.Inserted = append(res.Inserted, spec.ID)
		case spec.Webview != nil && current != *spec.Webview:
			if err := w.InsertWebview(spec.ID, *spec.Webview); err != nil {
				errs = append(errs, err)
				continue
			}
			res.Changed = append(res.Changed, spec.ID)
		}
	}

	for _, id := range w.WindowIDs() {
		if _, ok := wanted[id]; !ok {
			w.DespawnWindow(id)
			res.Despawned = append(res.Despawned, id)
		}
	}

	return res, errors.Join(errs...)
}
