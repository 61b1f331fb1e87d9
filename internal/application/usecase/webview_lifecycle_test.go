package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/application/port/mocks"
	"github.com/bnema/wui/internal/application/usecase"
	"github.com/bnema/wui/internal/domain/build"
	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/infrastructure/host"
	"github.com/bnema/wui/internal/infrastructure/script"
)

func TestCreate_BuildsTransparentFocusedWebview(t *testing.T) {
	h := newHarness(t)
	id := h.spawnWebview(entity.NewWebviewConfig())

	r := h.frame()

	assert.Equal(t, []entity.WindowID{id}, r.create.Created)
	assert.Empty(t, r.create.Pending)
	assert.Empty(t, r.create.Failed)
	require.True(t, h.registry.Contains(id))
	assert.Equal(t, 1, h.logs.count("info", "created webview"))

	opts := h.engine.Last().Options()
	assert.True(t, opts.Transparent)
	assert.True(t, opts.Focused)
	assert.Equal(t, port.BackgroundThrottlingDisabled, opts.BackgroundThrottling)
	assert.Equal(t, build.Debug, opts.DevTools)
	assert.Equal(t, entity.DefaultHTML, opts.HTML)
	assert.Empty(t, opts.URL)
	assert.NotEmpty(t, opts.InitScript)
	assert.NotNil(t, opts.IPCHandler)
}

func TestCreate_PassesURLAndDevTools(t *testing.T) {
	h := newHarness(t)
	cfg := entity.NewWebviewConfig().
		WithDevTools(entity.DevToolsNever).
		WithURL("https://example.org/")
	h.spawnWebview(cfg)

	h.frame()

	opts := h.engine.Last().Options()
	assert.False(t, opts.DevTools)
	assert.Equal(t, "https://example.org/", opts.URL)
}

func TestCreate_IgnoresWindowsWithoutConfig(t *testing.T) {
	h := newHarness(t)
	h.world.SpawnWindow(host.WindowOptions{Realized: true})

	r := h.frame()

	assert.Empty(t, r.create.Created)
	assert.Zero(t, h.registry.Len())
	assert.Empty(t, h.engine.Views())
}

func TestCreate_RetriesUntilWindowIsReady(t *testing.T) {
	h := newHarness(t)
	id := h.world.SpawnWindow(host.WindowOptions{ClipChildren: true})
	require.NoError(t, h.world.InsertWebview(id, entity.NewWebviewConfig()))

	r := h.frame()
	assert.Equal(t, []entity.WindowID{id}, r.create.Pending)
	assert.Equal(t, []entity.WindowID{id}, h.lifecycle.Pending())
	assert.False(t, h.registry.Contains(id))

	// Still not ready: stays pending without another warning.
	r = h.frame()
	assert.Equal(t, []entity.WindowID{id}, r.create.Pending)

	require.NoError(t, h.world.Realize(id))
	r = h.frame()
	assert.Equal(t, []entity.WindowID{id}, r.create.Created)
	assert.Empty(t, h.lifecycle.Pending())
	assert.True(t, h.registry.Contains(id))

	assert.Equal(t, 1, h.logs.count("warn", ""), "clip children warning is emitted once")
	assert.Len(t, h.engine.Views(), 1)
}

func TestCreate_PendingDroppedWhenConfigRemoved(t *testing.T) {
	h := newHarness(t)
	id := h.world.SpawnWindow(host.WindowOptions{})
	require.NoError(t, h.world.InsertWebview(id, entity.NewWebviewConfig()))
	h.frame()
	require.Equal(t, []entity.WindowID{id}, h.lifecycle.Pending())

	h.world.RemoveWebview(id)
	h.frame()
	assert.Empty(t, h.lifecycle.Pending())

	require.NoError(t, h.world.Realize(id))
	r := h.frame()
	assert.Empty(t, r.create.Created)
	assert.False(t, h.registry.Contains(id))
}

func TestCreate_NoWarningWithoutClipChildren(t *testing.T) {
	h := newHarness(t)
	h.spawnWebview(entity.NewWebviewConfig())

	h.frame()

	assert.Zero(t, h.logs.count("warn", ""))
}

func TestCreate_EngineFailureRemovesConfig(t *testing.T) {
	ctx, logs := testContext(t)
	world := host.NewWorld()
	id := world.SpawnWindow(host.WindowOptions{Realized: true})
	require.NoError(t, world.InsertWebview(id, entity.NewWebviewConfig()))

	engine := mocks.NewMockWebviewEngine(t)
	engine.EXPECT().Name().Return("mock").Maybe()
	engine.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("no display")).Once()

	registry := usecase.NewRegistry()
	uc := usecase.NewWebviewLifecycleUseCase(registry, world, world, engine, script.NewContentInjector())

	out := uc.Create(ctx)

	assert.Equal(t, []entity.WindowID{id}, out.Failed)
	assert.Zero(t, registry.Len())
	_, still := world.Webview(id)
	assert.False(t, still, "config component is removed after a permanent failure")
	assert.True(t, world.HasWindow(id), "the window itself survives")
	assert.Equal(t, 1, logs.count("error", ""))

	// The window is a plain window now: nothing is retried.
	world.EndFrame()
	out = uc.Create(ctx)
	assert.Empty(t, out.Failed)
	assert.Empty(t, out.Created)
}

func TestCreate_HandleFailureRemovesConfig(t *testing.T) {
	ctx, logs := testContext(t)

	components := mocks.NewMockWebviewComponents(t)
	components.EXPECT().Added().Return([]entity.WindowID{7})
	components.EXPECT().Webview(entity.WindowID(7)).Return(entity.NewWebviewConfig(), true)
	components.EXPECT().RemoveWebview(entity.WindowID(7)).Once()

	windows := mocks.NewMockWindows(t)
	windows.EXPECT().ClipChildren(entity.WindowID(7)).Return(false)
	windows.EXPECT().NativeHandle(entity.WindowID(7)).Return(port.WindowHandle{}, errors.New("unsupported window system"))

	engine := mocks.NewMockWebviewEngine(t)
	injector := mocks.NewMockContentInjector(t)

	uc := usecase.NewWebviewLifecycleUseCase(usecase.NewRegistry(), components, windows, engine, injector)
	out := uc.Create(ctx)

	assert.Equal(t, []entity.WindowID{7}, out.Failed)
	assert.Empty(t, uc.Pending())
	assert.Equal(t, 1, logs.count("error", ""))
}

func TestCreate_InjectorFailureRemovesConfig(t *testing.T) {
	ctx, _ := testContext(t)
	world := host.NewWorld()
	id := world.SpawnWindow(host.WindowOptions{Realized: true})
	require.NoError(t, world.InsertWebview(id, entity.NewWebviewConfig()))

	injector := mocks.NewMockContentInjector(t)
	injector.EXPECT().Bootstrap(mock.Anything).Return("", errors.New("entropy exhausted"))
	engine := mocks.NewMockWebviewEngine(t)

	uc := usecase.NewWebviewLifecycleUseCase(usecase.NewRegistry(), world, world, engine, injector)
	out := uc.Create(ctx)

	assert.Equal(t, []entity.WindowID{id}, out.Failed)
	_, still := world.Webview(id)
	assert.False(t, still)
}

func TestCreate_BootstrapGetsResolvedPolicy(t *testing.T) {
	ctx, _ := testContext(t)
	world := host.NewWorld()
	id := world.SpawnWindow(host.WindowOptions{Realized: true})
	cfg := entity.NewWebviewConfig().WithContextMenu(entity.ContextMenuAlwaysWith("AltLeft"))
	require.NoError(t, world.InsertWebview(id, cfg))

	injector := mocks.NewMockContentInjector(t)
	injector.EXPECT().
		Bootstrap(entity.ContextMenuResolution{Enabled: true, HasKey: true, Key: "AltLeft"}).
		Return("/* bootstrap */", nil).Once()

	view := mocks.NewMockWebView(t)
	view.EXPECT().Close().Return(nil).Maybe()

	engine := mocks.NewMockWebviewEngine(t)
	engine.EXPECT().Name().Return("mock").Maybe()
	engine.EXPECT().Build(mock.Anything, mock.Anything, mock.MatchedBy(func(o port.BuildOptions) bool {
		return o.InitScript == "/* bootstrap */"
	})).Return(view, nil).Once()

	registry := usecase.NewRegistry()
	uc := usecase.NewWebviewLifecycleUseCase(registry, world, world, engine, injector)
	out := uc.Create(ctx)

	assert.Equal(t, []entity.WindowID{id}, out.Created)
	t.Cleanup(func() { registry.CloseAll() })
}

func TestCreate_ConsecutiveWindowsGetIndependentWebviews(t *testing.T) {
	h := newHarness(t)
	a := h.spawnWebview(entity.NewWebviewConfig())
	b := h.spawnWebview(entity.NewWebviewConfig())

	r := h.frame()

	assert.Equal(t, []entity.WindowID{a, b}, r.create.Created)
	assert.Equal(t, []entity.WindowID{a, b}, h.registry.IDs())
	views := h.engine.Views()
	require.Len(t, views, 2)
	assert.NotEqual(t, views[0].Options().InitScript, views[1].Options().InitScript,
		"every webview gets its own token")
}

func TestUpdate_AppliesContextMenuPolicy(t *testing.T) {
	h := newHarness(t)
	id := h.spawnWebview(entity.NewWebviewConfig().WithContextMenu(entity.ContextMenuAlwaysWith("")))
	h.frame()
	view := h.engine.Last()

	opened, err := view.ContextMenu()
	require.NoError(t, err)
	assert.True(t, opened)

	require.NoError(t, h.world.MutateWebview(id, func(c *entity.WebviewConfig) {
		c.ContextMenu = entity.ContextMenuDisabled()
	}))
	r := h.frame()
	assert.Equal(t, []entity.WindowID{id}, r.update.Updated)

	opened, err = view.ContextMenu()
	require.NoError(t, err)
	assert.False(t, opened)
	assert.Same(t, view, h.engine.Last(), "update does not rebuild the webview")
}

func TestUpdate_GatedByKey(t *testing.T) {
	h := newHarness(t)
	id := h.spawnWebview(entity.NewWebviewConfig().WithContextMenu(entity.ContextMenuDisabled()))
	h.frame()
	view := h.engine.Last()

	require.NoError(t, h.world.MutateWebview(id, func(c *entity.WebviewConfig) {
		c.ContextMenu = entity.ContextMenuAlwaysWith("ShiftLeft")
	}))
	h.frame()

	opened, err := view.ContextMenu()
	require.NoError(t, err)
	assert.False(t, opened)

	require.NoError(t, view.KeyDown("Shift", "ShiftLeft"))
	opened, err = view.ContextMenu()
	require.NoError(t, err)
	assert.True(t, opened)
}

func TestUpdate_DoesNotTouchDevToolsOrContent(t *testing.T) {
	h := newHarness(t)
	id := h.spawnWebview(entity.NewWebviewConfig().WithDevTools(entity.DevToolsNever))
	h.frame()

	require.NoError(t, h.world.MutateWebview(id, func(c *entity.WebviewConfig) {
		c.DevTools = entity.DevToolsAlways
		c.URL = "https://example.org/"
	}))
	h.frame()

	require.Len(t, h.engine.Views(), 1)
	opts := h.engine.Last().Options()
	assert.False(t, opts.DevTools)
	assert.Empty(t, opts.URL)
}

func TestUpdate_IgnoresEvaluationFailure(t *testing.T) {
	ctx, logs := testContext(t)
	world := host.NewWorld()
	id := world.SpawnWindow(host.WindowOptions{Realized: true})
	require.NoError(t, world.InsertWebview(id, entity.NewWebviewConfig()))

	view := mocks.NewMockWebView(t)
	view.EXPECT().EvaluateScript(mock.Anything).Return(port.ErrWebViewClosed).Once()
	view.EXPECT().Close().Return(nil).Maybe()

	engine := mocks.NewMockWebviewEngine(t)
	engine.EXPECT().Name().Return("mock").Maybe()
	engine.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(view, nil)

	registry := usecase.NewRegistry()
	t.Cleanup(func() { registry.CloseAll() })
	uc := usecase.NewWebviewLifecycleUseCase(registry, world, world, engine, script.NewContentInjector())
	uc.Create(ctx)
	world.EndFrame()

	require.NoError(t, world.MutateWebview(id, func(c *entity.WebviewConfig) {
		c.ContextMenu = entity.ContextMenuDisabled()
	}))
	out := uc.Update(ctx)

	assert.Empty(t, out.Updated)
	assert.True(t, registry.Contains(id))
	assert.Zero(t, logs.count("error", ""))
	assert.Equal(t, 1, logs.count("debug", "context menu update not applied"))
}

func TestRemove_ClosesWebviewAndLogsOnce(t *testing.T) {
	h := newHarness(t)
	id := h.spawnWebview(entity.NewWebviewConfig())
	h.frame()
	view := h.engine.Last()

	h.world.RemoveWebview(id)
	r := h.frame()

	assert.Equal(t, []entity.WindowID{id}, r.remove.Removed)
	assert.False(t, h.registry.Contains(id))
	assert.True(t, view.Closed())
	assert.Equal(t, 1, h.logs.count("info", "removed webview"))
	assert.True(t, h.world.HasWindow(id))
}

func TestRemove_OnWindowDespawn(t *testing.T) {
	h := newHarness(t)
	id := h.spawnWebview(entity.NewWebviewConfig())
	h.frame()

	h.world.DespawnWindow(id)
	r := h.frame()

	assert.Equal(t, []entity.WindowID{id}, r.remove.Removed)
	assert.Zero(t, h.registry.Len())
}

func TestRemove_ReinsertedInSameFrameIsRebuilt(t *testing.T) {
	h := newHarness(t)
	id := h.spawnWebview(entity.NewWebviewConfig())
	h.frame()
	first := h.engine.Last()

	h.world.RemoveWebview(id)
	require.NoError(t, h.world.InsertWebview(id, entity.NewWebviewConfig().WithURL("https://example.org/")))
	h.frame()

	assert.True(t, first.Closed())
	r := h.frame()
	assert.Equal(t, []entity.WindowID{id}, r.create.Created)

	second := h.engine.Last()
	assert.NotSame(t, first, second)
	assert.Equal(t, "https://example.org/", second.Options().URL)
	assert.True(t, h.registry.Contains(id))
}

func TestRemove_PostedMessagesAfterCloseAreDropped(t *testing.T) {
	h := newHarness(t)
	id := h.spawnWebview(entity.NewWebviewConfig())
	h.frame()
	view := h.engine.Last()
	wh, ok := h.registry.Get(id)
	require.True(t, ok)

	h.world.RemoveWebview(id)
	h.frame()

	assert.ErrorIs(t, view.KeyDown("a", "KeyA"), port.ErrWebViewClosed)
	assert.Zero(t, wh.Outbound.Len())
}
