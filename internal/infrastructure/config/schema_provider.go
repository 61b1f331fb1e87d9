package config

import (
	"strconv"

	"github.com/bnema/wui/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLogging = "Logging"
	SectionFrame   = "Frame"
	SectionWindows = "Windows"
	SectionWebview = "Webview"
)

var policyValues = []string{entity.PolicyAlways, entity.PolicyDebug, entity.PolicyNever}

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getFrameKeys(defaults)...)
	keys = append(keys, p.getWindowKeys()...)
	keys = append(keys, p.getWebviewKeys()...)
	return keys
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Minimum log level (env WUI_LOG_LEVEL)",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format (env WUI_LOG_FORMAT)",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getFrameKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "frame.interval_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Frame.IntervalMs),
			Description: "Time between two frames in milliseconds",
			Range:       "1-1000",
			Section:     SectionFrame,
		},
	}
}

func (*SchemaProvider) getWindowKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "windows[].id", Type: "uint64", Description: "Stable window identity", Range: ">=1", Section: SectionWindows},
		{Key: "windows[].title", Type: "string", Description: "Window title", Section: SectionWindows},
		{Key: "windows[].width", Type: "int", Default: strconv.Itoa(defaultWindowWidth), Description: "Window width in pixels", Section: SectionWindows},
		{Key: "windows[].height", Type: "int", Default: strconv.Itoa(defaultWindowHeight), Description: "Window height in pixels", Section: SectionWindows},
		{
			Key:         "windows[].clip_children",
			Type:        "bool",
			Default:     "false",
			Description: "Clip child surfaces (prevents webview transparency)",
			Section:     SectionWindows,
		},
	}
}

func (*SchemaProvider) getWebviewKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "windows[].webview.devtools",
			Type:        "string",
			Default:     entity.PolicyDebug,
			Description: "Developer tools availability, applied at creation",
			Values:      policyValues,
			Section:     SectionWebview,
		},
		{
			Key:         "windows[].webview.context_menu",
			Type:        "string",
			Default:     entity.PolicyDebug,
			Description: "Native context menu availability, applied live",
			Values:      policyValues,
			Section:     SectionWebview,
		},
		{
			Key:         "windows[].webview.context_menu_key",
			Type:        "string",
			Description: "KeyboardEvent.code that must be held to open the context menu",
			Section:     SectionWebview,
		},
		{Key: "windows[].webview.html", Type: "string", Description: "Initial document when no URL is set", Section: SectionWebview},
		{Key: "windows[].webview.url", Type: "string", Description: "Initial URL", Section: SectionWebview},
	}
}
