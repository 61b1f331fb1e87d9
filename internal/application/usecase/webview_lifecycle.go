package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/logging"
	"github.com/bnema/wui/internal/queue"
)

// CreateWebviewsOutput reports what one Create pass did.
type CreateWebviewsOutput struct {
	// Created lists windows that became webview-backed.
	Created []entity.WindowID
	// Pending lists windows whose native handle is not ready yet.
	Pending []entity.WindowID
	// Failed lists windows whose config component was removed after a
	// permanent failure.
	Failed []entity.WindowID
}

// UpdateWebviewsOutput reports what one Update pass did.
type UpdateWebviewsOutput struct {
	Updated []entity.WindowID
}

// RemoveWebviewsOutput reports what one Remove pass did.
type RemoveWebviewsOutput struct {
	Removed []entity.WindowID
}

// WebviewLifecycleUseCase creates, updates and removes webviews following
// the host's WebviewConfig component lifecycle. Run Create, Update and
// Remove once per frame, in that order.
type WebviewLifecycleUseCase struct {
	registry   *Registry
	components port.WebviewComponents
	windows    port.Windows
	engine     port.WebviewEngine
	injector   port.ContentInjector

	// pending holds windows waiting for a native handle.
	pending map[entity.WindowID]struct{}
}

// NewWebviewLifecycleUseCase creates a new lifecycle use case.
func NewWebviewLifecycleUseCase(
	registry *Registry,
	components port.WebviewComponents,
	windows port.Windows,
	engine port.WebviewEngine,
	injector port.ContentInjector,
) *WebviewLifecycleUseCase {
	return &WebviewLifecycleUseCase{
		registry:   registry,
		components: components,
		windows:    windows,
		engine:     engine,
		injector:   injector,
		pending:    make(map[entity.WindowID]struct{}),
	}
}

// Pending returns the windows waiting for a native handle, in ascending order.
func (uc *WebviewLifecycleUseCase) Pending() []entity.WindowID {
	ids := make([]entity.WindowID, 0, len(uc.pending))
	for id := range uc.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (uc *WebviewLifecycleUseCase) createCandidates() []entity.WindowID {
	ids := slices.Clone(uc.components.Added())
	for id := range uc.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// Create builds a webview for every window that newly carries a config.
func (uc *WebviewLifecycleUseCase) Create(ctx context.Context) CreateWebviewsOutput {
	log := logging.FromContext(ctx).With().Str("component", "webview-lifecycle").Logger()
	var out CreateWebviewsOutput

	for _, id := range uc.createCandidates() {
		_, retrying := uc.pending[id]
		delete(uc.pending, id)

		cfg, ok := uc.components.Webview(id)
		if !ok || uc.registry.Contains(id) {
			continue
		}

		if !retrying && uc.windows.ClipChildren(id) {
			log.Warn().
				Stringer("window", id).
				Msg("window has clip children enabled, which prevents the webview from being transparent")
		}

		handle, err := uc.windows.NativeHandle(id)
		if errors.Is(err, port.ErrWindowNotReady) {
			uc.pending[id] = struct{}{}
			out.Pending = append(out.Pending, id)
			log.Debug().Stringer("window", id).Msg("native window not ready, retrying next frame")
			continue
		}
		if err != nil {
			uc.fail(ctx, id, fmt.Errorf("resolve native window handle: %w", err))
			out.Failed = append(out.Failed, id)
			continue
		}

		h, err := uc.build(ctx, id, handle, cfg)
		if err != nil {
			uc.fail(ctx, id, err)
			out.Failed = append(out.Failed, id)
			continue
		}

		if err := uc.registry.insert(h); err != nil {
			_ = h.View.Close()
			uc.fail(ctx, id, err)
			out.Failed = append(out.Failed, id)
			continue
		}

		out.Created = append(out.Created, id)
		log.Info().
			Stringer("window", id).
			Str("engine", uc.engine.Name()).
			Bool("devtools", cfg.DevTools.Enabled()).
			Msg("created webview")
	}

	return out
}

func (uc *WebviewLifecycleUseCase) build(
	ctx context.Context,
	id entity.WindowID,
	handle port.WindowHandle,
	cfg entity.WebviewConfig,
) (*WebviewHandle, error) {
	script, err := uc.injector.Bootstrap(cfg.ContextMenu.Resolve())
	if err != nil {
		return nil, fmt.Errorf("render bootstrap script: %w", err)
	}

	outbound := queue.New[string]()
	inbound := queue.New[string]()

	opts := port.BuildOptions{
		Transparent:          true,
		BackgroundThrottling: port.BackgroundThrottlingDisabled,
		DevTools:             cfg.DevTools.Enabled(),
		Focused:              true,
		URL:                  cfg.URL,
		HTML:                 cfg.InitialHTML(),
		InitScript:           script,
		IPCHandler:           outbound.Push,
	}

	view, err := uc.engine.Build(logging.WithWindow(ctx, id), handle, opts)
	if err != nil {
		return nil, fmt.Errorf("build webview: %w", err)
	}
	if view == nil {
		return nil, fmt.Errorf("build webview: engine %s returned no instance", uc.engine.Name())
	}

	return &WebviewHandle{
		Window:   id,
		View:     view,
		Outbound: outbound,
		Inbound:  inbound,
	}, nil
}

// fail reports a permanent failure and reverts the window to a plain window.
func (uc *WebviewLifecycleUseCase) fail(ctx context.Context, id entity.WindowID, err error) {
	logging.FromContext(ctx).Error().
		Str("component", "webview-lifecycle").
		Stringer("window", id).
		Err(err).
		Msg("failed to create webview, removing webview config")
	uc.components.RemoveWebview(id)
}

// Update re-applies the context menu policy of changed configs to their
// live webviews. Devtools, HTML and URL only apply at creation.
func (uc *WebviewLifecycleUseCase) Update(ctx context.Context) UpdateWebviewsOutput {
	log := logging.FromContext(ctx).With().Str("component", "webview-lifecycle").Logger()
	var out UpdateWebviewsOutput

	ids := slices.Clone(uc.components.Changed())
	slices.Sort(ids)
	for _, id := range slices.Compact(ids) {
		h, ok := uc.registry.Get(id)
		if !ok {
			continue
		}
		cfg, ok := uc.components.Webview(id)
		if !ok {
			continue
		}

		script, err := uc.injector.ContextMenuUpdate(cfg.ContextMenu.Resolve())
		if err != nil {
			log.Debug().Err(err).Stringer("window", id).Msg("render context menu update failed")
			continue
		}
		// Best effort: on failure the content keeps its previous policy.
		if err := h.View.EvaluateScript(script); err != nil {
			log.Debug().Err(err).Stringer("window", id).Msg("context menu update not applied")
			continue
		}
		out.Updated = append(out.Updated, id)
	}

	return out
}

// Remove drops the webviews of windows that lost their config or were destroyed.
func (uc *WebviewLifecycleUseCase) Remove(ctx context.Context) RemoveWebviewsOutput {
	log := logging.FromContext(ctx).With().Str("component", "webview-lifecycle").Logger()
	var out RemoveWebviewsOutput

	ids := slices.Clone(uc.components.Removed())
	slices.Sort(ids)
	for _, id := range slices.Compact(ids) {
		delete(uc.pending, id)

		h, ok := uc.registry.remove(id)
		if !ok {
			continue
		}
		if err := h.View.Close(); err != nil {
			log.Warn().Err(err).Stringer("window", id).Msg("failed to close webview")
		}
		out.Removed = append(out.Removed, id)
		log.Info().Stringer("window", id).Msg("removed webview")

		// Removed and re-inserted within one frame: build afresh next frame.
		if _, ok := uc.components.Webview(id); ok {
			uc.pending[id] = struct{}{}
		}
	}

	return out
}
