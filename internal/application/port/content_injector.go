package port

import "github.com/bnema/wui/internal/domain/entity"

// ContentInjector renders the scripts injected into webviews.
type ContentInjector interface {
	// Bootstrap renders the initialization script for a new instance.
	// Each call embeds a fresh instance token.
	Bootstrap(menu entity.ContextMenuResolution) (string, error)
	// ContextMenuUpdate renders the host-side snippet re-applying the
	// context menu policy to a live instance.
	ContextMenuUpdate(menu entity.ContextMenuResolution) (string, error)
}
