package config

import (
	"fmt"
	"strings"

	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/infrastructure/keymap"
)

// validateConfig collects every problem into a single error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateFrame(config)...)
	validationErrors = append(validationErrors, validateWindows(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateFrame(config *Config) []string {
	if config.Frame.IntervalMs < 1 || config.Frame.IntervalMs > 1000 {
		return []string{"frame.interval_ms must be between 1 and 1000"}
	}
	return nil
}

func validateWindows(config *Config) []string {
	var validationErrors []string
	seen := make(map[uint64]struct{}, len(config.Windows))

	for i, w := range config.Windows {
		prefix := fmt.Sprintf("windows[%d]", i)
		if w.ID == 0 {
			validationErrors = append(validationErrors, prefix+".id must be greater than 0")
		} else if _, dup := seen[w.ID]; dup {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.id %d is used by another window", prefix, w.ID))
		}
		seen[w.ID] = struct{}{}

		if w.Webview == nil {
			continue
		}
		if _, err := entity.ParseDevTools(w.Webview.DevTools); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.webview.devtools: %v", prefix, err))
		}
		if _, err := entity.ParseContextMenu(w.Webview.ContextMenu, w.Webview.ContextMenuKey); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.webview.context_menu: %v", prefix, err))
		}
		if key := w.Webview.ContextMenuKey; key != "" && !keymap.IsKnownCode(key) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s.webview.context_menu_key %q is not a KeyboardEvent.code value", prefix, key))
		}
	}
	return validationErrors
}
