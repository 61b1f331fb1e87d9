package script_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/infrastructure/headless"
	"github.com/bnema/wui/internal/infrastructure/script"
)

const testToken = "5f0c7a58-3c38-4c3f-9d0e-6f3f6c1d2a10"

type posted struct {
	mu   sync.Mutex
	msgs []string
}

func (p *posted) push(body string) {
	p.mu.Lock()
	p.msgs = append(p.msgs, body)
	p.mu.Unlock()
}

func (p *posted) all() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.msgs...)
}

func fixedToken() (string, error) { return testToken, nil }

// newView boots a headless view with the rendered bootstrap script.
func newView(t *testing.T, menu entity.ContextMenuResolution) (*headless.View, *posted) {
	t.Helper()
	ci := script.NewContentInjector(script.WithTokenGenerator(fixedToken))
	src, err := ci.Bootstrap(menu)
	require.NoError(t, err)

	out := &posted{}
	wv, err := headless.NewEngine().Build(context.Background(), port.WindowHandle{Kind: headless.HandleKind}, port.BuildOptions{
		InitScript: src,
		IPCHandler: out.push,
	})
	require.NoError(t, err)
	view := wv.(*headless.View)
	t.Cleanup(func() { _ = view.Close() })
	return view, out
}

func TestBootstrapRendersAllPlaceholders(t *testing.T) {
	ci := script.NewContentInjector(script.WithTokenGenerator(fixedToken))
	src, err := ci.Bootstrap(entity.ContextMenuResolution{Enabled: true, HasKey: true, Key: "AltLeft"})
	require.NoError(t, err)

	assert.NotContains(t, src, "{{")
	assert.NotContains(t, src, "}}")
	assert.Contains(t, src, `const token = "`+testToken+`";`)
	assert.Contains(t, src, `new Protect(true)`)
	assert.Contains(t, src, `new Protect("AltLeft")`)
}

func TestBootstrapUsesFreshRandomToken(t *testing.T) {
	ci := script.NewContentInjector()
	menu := entity.ContextMenuResolution{}

	a, err := ci.Bootstrap(menu)
	require.NoError(t, err)
	b, err := ci.Bootstrap(menu)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	tok, err := script.RandomToken()
	require.NoError(t, err)
	parsed, err := uuid.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, parsed.String(), tok, "token uses the canonical textual form")
}

func TestBootstrapFailsWithoutToken(t *testing.T) {
	ci := script.NewContentInjector(script.WithTokenGenerator(func() (string, error) {
		return "", errors.New("no entropy")
	}))
	_, err := ci.Bootstrap(entity.ContextMenuResolution{})
	assert.Error(t, err)
}

func TestForwardsInputAsSystemEvents(t *testing.T) {
	view, out := newView(t, entity.ContextMenuResolution{Enabled: true})

	require.NoError(t, view.KeyDown("a", "KeyA"))
	require.NoError(t, view.KeyUp("a", "KeyA"))
	require.NoError(t, view.MouseDown(0))
	require.NoError(t, view.MouseUp(2))
	require.NoError(t, view.MouseMove(3, -2))

	assert.Equal(t, []string{
		"kd\u0001" + `{"key":"a","code":"KeyA"}`,
		"ku\u0001" + `{"key":"a","code":"KeyA"}`,
		"md\u0001" + `{"button":0}`,
		"mu\u0001" + `{"button":2}`,
		"mm\u0001" + `{"relX":3,"relY":-2}`,
	}, out.all())
}

func TestContentCannotForgeSystemEvents(t *testing.T) {
	view, out := newView(t, entity.ContextMenuResolution{Enabled: true})

	for _, name := range entity.SystemEvents() {
		ok, err := view.Eval(`post("` + name + `", {key: "a", code: "KeyA"}, "guess")`)
		require.NoError(t, err)
		assert.Equal(t, false, ok, name)
	}
	ok, err := view.Eval(`post("kd", {key: "a", code: "KeyA"})`)
	require.NoError(t, err)
	assert.Equal(t, false, ok)
	assert.Empty(t, out.all())
	assert.NotEmpty(t, view.ConsoleErrors())

	// the native channel is not reachable around post()
	kind, err := view.Eval(`typeof window.ipc`)
	require.NoError(t, err)
	assert.Equal(t, "undefined", kind)

	// the right token is accepted
	ok, err = view.Eval(`post("kd", {key: "a", code: "KeyA"}, "` + testToken + `")`)
	require.NoError(t, err)
	assert.Equal(t, true, ok)
	assert.Len(t, out.all(), 1)
}

func TestPostRejectsDelimiterInName(t *testing.T) {
	view, out := newView(t, entity.ContextMenuResolution{})

	ok, err := view.Eval(`post("custom\u0001kd", {})`)
	require.NoError(t, err)
	assert.Equal(t, false, ok)

	ok, err = view.Eval(`post("kd\u0001", {}, "` + testToken + `")`)
	require.NoError(t, err)
	assert.Equal(t, false, ok)
	assert.Empty(t, out.all())

	// other names pass through untouched
	ok, err = view.Eval(`post("custom", {n: 1})`)
	require.NoError(t, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, []string{"custom\u0001" + `{"n":1}`}, out.all())
}

func TestGuardRefusesWrongToken(t *testing.T) {
	view, _ := newView(t, entity.ContextMenuResolution{Enabled: true})

	got, err := view.Eval(`__wuiContextMenuEnabled.get("nope")`)
	require.NoError(t, err, "a refused read must not throw")
	assert.Nil(t, got)

	_, err = view.Eval(`__wuiContextMenuEnabled.set("nope", false); __wuiContextMenuKey.set("nope", "KeyZ")`)
	require.NoError(t, err, "a refused write must not throw")

	got, err = view.Eval(`__wuiContextMenuEnabled.get("` + testToken + `")`)
	require.NoError(t, err)
	assert.Equal(t, true, got, "refused write left the value unchanged")

	got, err = view.Eval(`__wuiContextMenuKey.get("` + testToken + `")`)
	require.NoError(t, err)
	assert.Nil(t, got)

	errs := view.ConsoleErrors()
	require.Len(t, errs, 3)
	assert.True(t, strings.Contains(errs[0], "no permission"))
}

func TestContextMenuPolicyMatrix(t *testing.T) {
	t.Run("disabled always suppresses", func(t *testing.T) {
		view, _ := newView(t, entity.ContextMenuResolution{})
		opened, err := view.ContextMenu()
		require.NoError(t, err)
		assert.False(t, opened)
	})

	t.Run("enabled without key always opens", func(t *testing.T) {
		view, _ := newView(t, entity.ContextMenuResolution{Enabled: true})
		opened, err := view.ContextMenu()
		require.NoError(t, err)
		assert.True(t, opened)
	})

	t.Run("enabled with key opens only while held", func(t *testing.T) {
		view, _ := newView(t, entity.ContextMenuResolution{Enabled: true, HasKey: true, Key: "AltLeft"})

		opened, err := view.ContextMenu()
		require.NoError(t, err)
		assert.False(t, opened)

		require.NoError(t, view.KeyDown("Alt", "AltLeft"))
		opened, err = view.ContextMenu()
		require.NoError(t, err)
		assert.True(t, opened)

		// activation clears the pressed set
		opened, err = view.ContextMenu()
		require.NoError(t, err)
		assert.False(t, opened)

		require.NoError(t, view.KeyDown("Alt", "AltLeft"))
		require.NoError(t, view.KeyUp("Alt", "AltLeft"))
		opened, err = view.ContextMenu()
		require.NoError(t, err)
		assert.False(t, opened)
	})
}

func TestContextMenuUpdateAppliesToLiveView(t *testing.T) {
	ci := script.NewContentInjector()
	view, _ := newView(t, entity.ContextMenuResolution{Enabled: true})

	update, err := ci.ContextMenuUpdate(entity.ContextMenuResolution{})
	require.NoError(t, err)
	assert.NotContains(t, update, "{{")
	require.NoError(t, view.EvaluateScript(update))

	opened, err := view.ContextMenu()
	require.NoError(t, err)
	assert.False(t, opened)

	update, err = ci.ContextMenuUpdate(entity.ContextMenuResolution{Enabled: true, HasKey: true, Key: "ControlLeft"})
	require.NoError(t, err)
	require.NoError(t, view.EvaluateScript(update))

	opened, err = view.ContextMenu()
	require.NoError(t, err)
	assert.False(t, opened)

	require.NoError(t, view.KeyDown("Control", "ControlLeft"))
	opened, err = view.ContextMenu()
	require.NoError(t, err)
	assert.True(t, opened)
}

func TestGuardGlobalsAreReadOnly(t *testing.T) {
	view, _ := newView(t, entity.ContextMenuResolution{Enabled: true})

	_, err := view.Eval(`__wuiContextMenuEnabled = false; __wuiContextMenuKey = "KeyZ";`)
	require.NoError(t, err)

	opened, err := view.ContextMenu()
	require.NoError(t, err)
	assert.True(t, opened, "reassigning the globals has no effect")

	got, err := view.Eval(`__wuiContextMenuEnabled.get("` + testToken + `")`)
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestForgedGuardIsIgnored(t *testing.T) {
	view, _ := newView(t, entity.ContextMenuResolution{})

	_, err := view.Eval(`
		__wuiContextMenuEnabled = new __wuiContextMenuEnabled.constructor(true);
		__wuiContextMenuKey = new __wuiContextMenuKey.constructor(null);
	`)
	require.NoError(t, err)

	got, err := view.Eval(`Object.prototype.hasOwnProperty.call(Object.getPrototypeOf(__wuiContextMenuEnabled), "constructor")`)
	require.NoError(t, err)
	assert.Equal(t, false, got)

	opened, err := view.ContextMenu()
	require.NoError(t, err)
	assert.False(t, opened, "content cannot enable the menu without the token")
}

func TestGuardMethodsCannotBeReplaced(t *testing.T) {
	view, _ := newView(t, entity.ContextMenuResolution{})

	_, err := view.Eval(`
		var leaked;
		Object.getPrototypeOf(__wuiContextMenuEnabled).check = function (t) { leaked = t; return true; };
		__wuiContextMenuEnabled.get = function () { return true; };
	`)
	require.NoError(t, err)

	got, err := view.Eval(`__wuiContextMenuEnabled.get("nope")`)
	require.NoError(t, err)
	assert.Nil(t, got)

	opened, err := view.ContextMenu()
	require.NoError(t, err)
	assert.False(t, opened)

	leaked, err := view.Eval(`leaked`)
	require.NoError(t, err)
	assert.Nil(t, leaked)
	assert.Len(t, view.ConsoleErrors(), 1)
}
