package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wui/internal/application/usecase"
	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/infrastructure/headless"
	"github.com/bnema/wui/internal/infrastructure/host"
	"github.com/bnema/wui/internal/infrastructure/keymap"
	"github.com/bnema/wui/internal/infrastructure/script"
	"github.com/bnema/wui/internal/logging"
)

// logBuffer collects JSON log lines.
type logBuffer struct {
	bytes.Buffer
}

func (b *logBuffer) count(level, message string) int {
	n := 0
	for _, line := range strings.Split(strings.TrimSpace(b.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry["level"] == level && (message == "" || entry["message"] == message) {
			n++
		}
	}
	return n
}

func testContext(t *testing.T) (context.Context, *logBuffer) {
	t.Helper()
	buf := &logBuffer{}
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.TraceLevel
	cfg.Output = buf
	return logging.WithContext(context.Background(), logging.New(cfg)), buf
}

// harness wires the use cases to the in-memory host and the headless engine.
type harness struct {
	t         *testing.T
	ctx       context.Context
	logs      *logBuffer
	world     *host.World
	engine    *headless.Engine
	registry  *usecase.Registry
	lifecycle *usecase.WebviewLifecycleUseCase
	translate *usecase.TranslateEventsUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx, logs := testContext(t)
	world := host.NewWorld()
	engine := headless.NewEngine()
	registry := usecase.NewRegistry()

	h := &harness{
		t:         t,
		ctx:       ctx,
		logs:      logs,
		world:     world,
		engine:    engine,
		registry:  registry,
		lifecycle: usecase.NewWebviewLifecycleUseCase(registry, world, world, engine, script.NewContentInjector()),
		translate: usecase.NewTranslateEventsUseCase(registry, world, keymap.Default),
	}
	t.Cleanup(func() { registry.CloseAll() })
	return h
}

type frameResult struct {
	create    usecase.CreateWebviewsOutput
	update    usecase.UpdateWebviewsOutput
	remove    usecase.RemoveWebviewsOutput
	translate usecase.TranslateEventsOutput
	input     []host.InputEvent
}

func (h *harness) frame() frameResult {
	var r frameResult
	r.create = h.lifecycle.Create(h.ctx)
	r.update = h.lifecycle.Update(h.ctx)
	r.remove = h.lifecycle.Remove(h.ctx)
	r.translate = h.translate.Execute(h.ctx)
	r.input = h.world.DrainInput()
	h.world.EndFrame()
	return r
}

func (h *harness) spawnWebview(cfg entity.WebviewConfig) entity.WindowID {
	h.t.Helper()
	id := h.world.SpawnWindow(host.WindowOptions{Realized: true})
	require.NoError(h.t, h.world.InsertWebview(id, cfg))
	return id
}

func (h *harness) push(id entity.WindowID, msgs ...string) {
	h.t.Helper()
	wh, ok := h.registry.Get(id)
	require.True(h.t, ok, "window %s has no webview", id)
	for _, m := range msgs {
		wh.Outbound.Push(m)
	}
}

func keyboard(events []host.InputEvent) []entity.KeyboardInput {
	var out []entity.KeyboardInput
	for _, ev := range events {
		if ev.Keyboard != nil {
			out = append(out, *ev.Keyboard)
		}
	}
	return out
}
