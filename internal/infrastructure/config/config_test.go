package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wui/internal/domain/entity"
)

const sampleConfig = `
[logging]
level = "debug"
format = "json"

[frame]
interval_ms = 8

[[windows]]
id = 1
title = "main"
  [windows.webview]
  devtools = "never"
  context_menu = "always"
  context_menu_key = "AltLeft"
  url = "https://example.org/"

[[windows]]
id = 2
title = "plain"
clip_children = true
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
}

func newTestManager(t *testing.T, path string) *Manager {
	t.Helper()
	m, err := NewManager(WithConfigFile(path), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return m
}

func TestLoadReadsWindows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, sampleConfig)

	m := newTestManager(t, path)
	require.NoError(t, m.Load())
	cfg := m.Get()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 8*time.Millisecond, cfg.Frame.Interval())
	require.Len(t, cfg.Windows, 2)

	main := cfg.Windows[0]
	assert.Equal(t, uint64(1), main.ID)
	assert.Equal(t, defaultWindowWidth, main.Width)
	require.NotNil(t, main.Webview)
	assert.Equal(t, "never", main.Webview.DevTools)
	assert.Equal(t, "AltLeft", main.Webview.ContextMenuKey)

	assert.Nil(t, cfg.Windows[1].Webview)
	assert.True(t, cfg.Windows[1].ClipChildren)
	assert.Equal(t, path, m.GetConfigFile())
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[[windows]]\nid = 3\n")

	m := newTestManager(t, path)
	require.NoError(t, m.Load())
	cfg := m.Get()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 16, cfg.Frame.IntervalMs)
	require.Len(t, cfg.Windows, 1)
	assert.Nil(t, cfg.Windows[0].Webview)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, sampleConfig)
	t.Setenv("WUI_FRAME_INTERVAL_MS", "33")
	t.Setenv("WUI_LOG_LEVEL", "warn")

	m := newTestManager(t, path)
	require.NoError(t, m.Load())
	cfg := m.Get()

	assert.Equal(t, 33, cfg.Frame.IntervalMs)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	m := newTestManager(t, path)
	require.NoError(t, m.Load())

	assert.FileExists(t, path)
	assert.FileExists(t, SchemaFileFor(path))
	cfg := m.Get()
	require.Len(t, cfg.Windows, 1)
	require.NotNil(t, cfg.Windows[0].Webview)
	assert.Equal(t, entity.PolicyDebug, cfg.Windows[0].Webview.ContextMenu)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[logging]
level = "loud"

[[windows]]
id = 1
  [windows.webview]
  context_menu = "never"
  context_menu_key = "AltLeft"

[[windows]]
id = 1
  [windows.webview]
  devtools = "sometimes"
  context_menu_key = "NotAKey"
`)

	m := newTestManager(t, path)
	err := m.Load()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "logging.level")
	assert.Contains(t, msg, "windows[0].webview.context_menu")
	assert.Contains(t, msg, "windows[1].id 1 is used by another window")
	assert.Contains(t, msg, "windows[1].webview.devtools")
	assert.Contains(t, msg, "windows[1].webview.context_menu_key")
}

func TestGetReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, sampleConfig)
	m := newTestManager(t, path)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Windows[0].Webview.URL = "changed"
	cfg.Windows = nil

	again := m.Get()
	require.Len(t, again.Windows, 2)
	assert.Equal(t, "https://example.org/", again.Windows[0].Webview.URL)
}

func TestReloadNotifiesAndKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, sampleConfig)
	m := newTestManager(t, path)
	require.NoError(t, m.Load())

	var got []*Config
	m.OnConfigChange(func(c *Config) { got = append(got, c) })

	writeFile(t, path, "[[windows]]\nid = 9\n")
	require.NoError(t, m.Reload())
	require.Len(t, got, 1)
	require.Len(t, got[0].Windows, 1)
	assert.Equal(t, uint64(9), got[0].Windows[0].ID)

	writeFile(t, path, "[frame]\ninterval_ms = 0\n")
	require.Error(t, m.Reload())
	assert.Len(t, got, 1)
	assert.Equal(t, uint64(9), m.Get().Windows[0].ID)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, sampleConfig)
	m := newTestManager(t, path)
	require.NoError(t, m.Load())

	var mu sync.Mutex
	var last *Config
	m.OnConfigChange(func(c *Config) {
		mu.Lock()
		last = c
		mu.Unlock()
	})
	require.NoError(t, m.Watch())
	require.NoError(t, m.Watch(), "watch is idempotent")

	writeFile(t, path, "[[windows]]\nid = 4\n")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return last != nil && len(last.Windows) == 1 && last.Windows[0].ID == 4
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchBeforeLoad(t *testing.T) {
	m := newTestManager(t, filepath.Join(t.TempDir(), "config.toml"))
	assert.Error(t, m.Watch())
}

func TestWindowSpecs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, sampleConfig)
	m := newTestManager(t, path)
	require.NoError(t, m.Load())

	specs, err := m.Get().WindowSpecs()
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, entity.WindowID(1), specs[0].ID)
	assert.True(t, specs[0].Options.Realized)
	require.NotNil(t, specs[0].Webview)
	assert.Equal(t, entity.DevToolsNever, specs[0].Webview.DevTools)
	assert.Equal(t, entity.ContextMenuAlwaysWith("AltLeft"), specs[0].Webview.ContextMenu)
	assert.Equal(t, "https://example.org/", specs[0].Webview.URL)

	assert.Nil(t, specs[1].Webview)
	assert.True(t, specs[1].Options.ClipChildren)
}

func TestEncodeRoundTripsThroughManager(t *testing.T) {
	data, err := Encode(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[windows]]")
	assert.Contains(t, string(data), "interval_ms = 16")

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, string(data))
	m := newTestManager(t, path)
	require.NoError(t, m.Load())
	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestJSONSchema(t *testing.T) {
	data, err := JSONSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"interval_ms"`)
	assert.Contains(t, s, `"context_menu_key"`)
	assert.Contains(t, s, `"never"`)
	assert.Contains(t, s, "https://github.com/bnema/wui/config.schema.json")
}

func TestSchemaProviderCoversEveryKey(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.Key)
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
	}
	assert.Contains(t, names, "frame.interval_ms")
	assert.Contains(t, names, "windows[].webview.context_menu")
}
