package config

import (
	"errors"
	"fmt"

	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/infrastructure/host"
)

// WebviewConfig converts the section into the component inserted on a window.
func (s WebviewSection) WebviewConfig() (entity.WebviewConfig, error) {
	devtools, err := entity.ParseDevTools(s.DevTools)
	if err != nil {
		return entity.WebviewConfig{}, err
	}
	menu, err := entity.ParseContextMenu(s.ContextMenu, s.ContextMenuKey)
	if err != nil {
		return entity.WebviewConfig{}, err
	}
	return entity.NewWebviewConfig().
		WithDevTools(devtools).
		WithContextMenu(menu).
		WithHTML(s.HTML).
		WithURL(s.URL), nil
}

// WindowSpecs maps the declared windows onto host window specs. Config
// windows are always realized.
func (c *Config) WindowSpecs() ([]host.WindowSpec, error) {
	specs := make([]host.WindowSpec, 0, len(c.Windows))
	var errs []error

	for _, w := range c.Windows {
		spec := host.WindowSpec{
			ID: entity.WindowID(w.ID),
			Options: host.WindowOptions{
				Title:        w.Title,
				Width:        w.Width,
				Height:       w.Height,
				ClipChildren: w.ClipChildren,
				Realized:     true,
			},
		}
		if w.Webview != nil {
			cfg, err := w.Webview.WebviewConfig()
			if err != nil {
				errs = append(errs, fmt.Errorf("window %d: %w", w.ID, err))
				continue
			}
			spec.Webview = &cfg
		}
		specs = append(specs, spec)
	}

	return specs, errors.Join(errs...)
}
