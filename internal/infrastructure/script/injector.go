// Package script renders the scripts injected into embedded webviews.
package script

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/bnema/wui/internal/domain/entity"
)

// TokenGenerator returns a fresh instance token.
type TokenGenerator func() (string, error)

// RandomToken returns a random (version 4) UUID in canonical form.
func RandomToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate instance token: %w", err)
	}
	return id.String(), nil
}

// Option configures a ContentInjector.
type Option func(*ContentInjector)

// WithTokenGenerator replaces the random token source. Tests use it to
// present the right token from inside the content.
func WithTokenGenerator(gen TokenGenerator) Option {
	return func(ci *ContentInjector) {
		if gen != nil {
			ci.token = gen
		}
	}
}

// ContentInjector renders the bootstrap script and the context menu update
// snippet. Implements port.ContentInjector.
type ContentInjector struct {
	token     TokenGenerator
	bootstrap *template.Template
	update    *template.Template
}

var (
	bootstrapTmpl = template.Must(template.New("bootstrap").Option("missingkey=error").Parse(bootstrapTemplate))
	updateTmpl    = template.Must(template.New("context-menu-update").Option("missingkey=error").Parse(contextMenuUpdateTemplate))
)

// NewContentInjector creates an injector using random tokens by default.
func NewContentInjector(opts ...Option) *ContentInjector {
	ci := &ContentInjector{
		token:     RandomToken,
		bootstrap: bootstrapTmpl,
		update:    updateTmpl,
	}
	for _, opt := range opts {
		opt(ci)
	}
	return ci
}

// scriptValues holds JS literals, already encoded.
type scriptValues struct {
	Token   string
	Enabled string
	Key     string
}

func literal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func menuValues(menu entity.ContextMenuResolution) (scriptValues, error) {
	vals := scriptValues{Enabled: "false", Key: "null"}
	if !menu.Enabled {
		return vals, nil
	}
	vals.Enabled = "true"
	if menu.HasKey {
		key, err := literal(string(menu.Key))
		if err != nil {
			return vals, fmt.Errorf("encode context menu key: %w", err)
		}
		vals.Key = key
	}
	return vals, nil
}

func render(t *template.Template, vals scriptValues) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, vals); err != nil {
		return "", fmt.Errorf("render %s script: %w", t.Name(), err)
	}
	return sb.String(), nil
}

// Bootstrap renders the initialization script for a new instance with a
// freshly generated token.
func (ci *ContentInjector) Bootstrap(menu entity.ContextMenuResolution) (string, error) {
	vals, err := menuValues(menu)
	if err != nil {
		return "", err
	}

	token, err := ci.token()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", fmt.Errorf("instance token is empty")
	}
	if vals.Token, err = literal(token); err != nil {
		return "", fmt.Errorf("encode instance token: %w", err)
	}

	return render(ci.bootstrap, vals)
}

// ContextMenuUpdate renders the snippet re-applying a context menu policy.
func (ci *ContentInjector) ContextMenuUpdate(menu entity.ContextMenuResolution) (string, error) {
	vals, err := menuValues(menu)
	if err != nil {
		return "", err
	}
	return render(ci.update, vals)
}
