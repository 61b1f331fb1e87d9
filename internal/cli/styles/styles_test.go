package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wui/internal/application/usecase"
	"github.com/bnema/wui/internal/cli/styles"
	"github.com/bnema/wui/internal/domain/build"
	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/infrastructure/host"
)

func TestAboutRenderer(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "v1.2.3", Commit: "abc123", BuildDate: "today", GoVersion: "go1.25", Mode: "release"})

	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "release")
	assert.Contains(t, out, build.RepoURL())
}

func TestConfigSchemaRenderer(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	keys := []entity.ConfigKeyInfo{
		{Key: "frame.interval_ms", Type: "int", Default: "16", Description: "Time between frames", Range: "1-1000", Section: "Frame"},
		{Key: "logging.format", Type: "string", Default: "console", Description: "Format", Values: []string{"console", "json"}, Section: "Logging"},
	}
	out := r.Render(keys)
	assert.Contains(t, out, "frame.interval_ms")
	assert.Contains(t, out, "Range: 1-1000")
	assert.Contains(t, out, "Values: console, json")
	assert.Less(t, indexOf(out, "Logging"), indexOf(out, "Frame"))

	js, err := r.RenderJSON(keys)
	require.NoError(t, err)
	assert.Contains(t, js, `"key": "logging.format"`)

	assert.Contains(t, r.Render(nil), "No configuration keys found")
}

func TestFrameRendererInput(t *testing.T) {
	r := styles.NewFrameRenderer(styles.NewTheme())

	out := r.RenderInput(host.InputEvent{Keyboard: &entity.KeyboardInput{
		Window: 1, State: entity.Pressed, KeyCode: "KeyA", LogicalKey: entity.Character("a"), Repeat: true,
	}})
	assert.Contains(t, out, "window#1")
	assert.Contains(t, out, "KeyA")
	assert.Contains(t, out, "repeat")

	out = r.RenderInput(host.InputEvent{MouseButton: &entity.MouseButtonInput{
		Window: 2, Button: entity.MouseButton{Kind: entity.MouseButtonOther, Index: 7}, State: entity.Released,
	}})
	assert.Contains(t, out, "button 7")
	assert.Contains(t, out, "released")

	out = r.RenderInput(host.InputEvent{MouseMotion: &entity.MouseMotion{Window: 3, DeltaX: 1.5, DeltaY: -2}})
	assert.Contains(t, out, "move +1.5 -2.0")

	assert.Empty(t, r.RenderInput(host.InputEvent{}))
}

func TestFrameRendererWindows(t *testing.T) {
	r := styles.NewFrameRenderer(styles.NewTheme())

	lines := r.RenderWindows([]entity.WindowID{1}, []entity.WindowID{2, 3})
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "webview created")
	assert.Contains(t, lines[2], "window#3")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestDoctorRenderer(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme())

	out := r.Render(&usecase.CheckRuntimeDependenciesOutput{
		Prefix: "/opt/webkit",
		Checks: []usecase.RuntimeDependencyStatus{
			{DisplayName: "GTK4", Installed: true, Version: "4.14.2", RequiredVersion: "4.10", MeetsRequirement: true},
			{DisplayName: "WebKitGTK 6.0", Installed: true, Version: "2.40.0", RequiredVersion: "2.42"},
		},
	}, false)

	assert.Contains(t, out, "/opt/webkit")
	assert.Contains(t, out, "4.14.2")
	assert.Contains(t, out, "needs >= 2.42")
	assert.Contains(t, out, "webkit_cgo")
}
