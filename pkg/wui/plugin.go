// Package wui embeds webviews into host windows and bridges their input
// into the host's native input events.
//
// A Plugin runs four steps once per frame, in this order: create webviews
// for newly configured windows, re-apply changed policies, remove webviews
// of windows that lost their config, and translate queued content input
// into native events.
package wui

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/application/usecase"
	"github.com/bnema/wui/internal/infrastructure/keymap"
	"github.com/bnema/wui/internal/infrastructure/script"
	"github.com/bnema/wui/internal/logging"
	"github.com/bnema/wui/internal/mainloop"
)

// DefaultFrameInterval is used when Run is given a non-positive interval.
const DefaultFrameInterval = 16 * time.Millisecond

// Host is everything the plugin needs from the host runtime.
type Host interface {
	port.WebviewComponents
	port.Windows
	port.InputSink
}

// frameEnder is implemented by hosts that track component changes per frame.
type frameEnder interface {
	EndFrame()
}

// FrameReport summarizes one frame.
type FrameReport struct {
	Tasks     int
	Create    usecase.CreateWebviewsOutput
	Update    usecase.UpdateWebviewsOutput
	Remove    usecase.RemoveWebviewsOutput
	Translate usecase.TranslateEventsOutput
}

// Plugin owns the registry, the pressed key set and the frame steps.
type Plugin struct {
	host      Host
	engine    port.WebviewEngine
	injector  port.ContentInjector
	vocab     port.KeyVocabulary
	afterHook func(context.Context, FrameReport)

	registry  *usecase.Registry
	lifecycle *usecase.WebviewLifecycleUseCase
	translate *usecase.TranslateEventsUseCase
	loop      *mainloop.Loop
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithInjector replaces the default script injector.
func WithInjector(injector port.ContentInjector) Option {
	return func(p *Plugin) { p.injector = injector }
}

// WithVocabulary replaces the default key and button vocabulary.
func WithVocabulary(vocab port.KeyVocabulary) Option {
	return func(p *Plugin) { p.vocab = vocab }
}

// WithFrameHook registers fn to run at the end of every frame, after the
// host's change tracking was reset.
func WithFrameHook(fn func(context.Context, FrameReport)) Option {
	return func(p *Plugin) { p.afterHook = fn }
}

// New wires a plugin for host and engine.
func New(host Host, engine port.WebviewEngine, opts ...Option) *Plugin {
	p := &Plugin{
		host:     host,
		engine:   engine,
		injector: script.NewContentInjector(),
		vocab:    keymap.Default,
		registry: usecase.NewRegistry(),
		loop:     mainloop.NewLoop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.lifecycle = usecase.NewWebviewLifecycleUseCase(p.registry, host, host, engine, p.injector)
	p.translate = usecase.NewTranslateEventsUseCase(p.registry, host, p.vocab)
	return p
}

// Registry returns the live webviews. Only read it from the frame goroutine.
func (p *Plugin) Registry() *usecase.Registry {
	return p.registry
}

// Post schedules fn to run on the frame goroutine at the start of the next
// frame. Safe for concurrent use.
func (p *Plugin) Post(fn func()) {
	p.loop.Post(fn)
}

// Frame runs one frame.
func (p *Plugin) Frame(ctx context.Context) FrameReport {
	var r FrameReport
	r.Tasks = p.loop.RunPending()
	r.Create = p.lifecycle.Create(ctx)
	r.Update = p.lifecycle.Update(ctx)
	r.Remove = p.lifecycle.Remove(ctx)
	r.Translate = p.translate.Execute(ctx)

	if fe, ok := p.host.(frameEnder); ok {
		fe.EndFrame()
	}
	if p.afterHook != nil {
		p.afterHook(ctx, r)
	}
	return r
}

// Run drives frames on a ticker until ctx is cancelled, then closes every
// webview. Cancellation is not an error.
func (p *Plugin) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	log := logging.FromContext(ctx).With().Str("component", "frame-loop").Logger()
	log.Info().
		Str("engine", p.engine.Name()).
		Dur("interval", interval).
		Msg("frame loop started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			err := errors.Join(p.Close()...)
			if err != nil {
				log.Warn().Err(err).Msg("closing webviews")
			}
			log.Info().Msg("frame loop stopped")
			return err
		case <-ticker.C:
			p.Frame(ctx)
		}
	}
}

// Close drops every live webview.
func (p *Plugin) Close() []error {
	return p.registry.CloseAll()
}
