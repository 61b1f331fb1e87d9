package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wui/internal/domain/entity"
)

// sectionOrder is the order sections appear in the key reference.
var sectionOrder = []string{"Logging", "Frame", "Windows", "Webview"}

// ConfigSchemaRenderer renders the configuration key reference.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders keys grouped by section, one box per section.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	bySection := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		bySection[key.Section] = append(bySection[key.Section], key)
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	parts := []string{fmt.Sprintf("%s %s", icon, r.theme.Title.Render("Configuration keys")), ""}
	for _, section := range sectionOrder {
		if sectionKeys, ok := bySection[section]; ok {
			parts = append(parts, r.renderSection(section, sectionKeys), "")
		}
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders the keys as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := []string{r.theme.Highlight.Render(name)}
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	head := fmt.Sprintf("%s  %s", r.theme.Normal.Bold(true).Render(key.Key), r.theme.Subtle.Render(key.Type))
	if key.Default != "" {
		head += "  " + lipgloss.NewStyle().Foreground(r.theme.Accent).Render(key.Default)
	}
	out := head + "\n  " + r.theme.Subtle.Render(key.Description)

	switch {
	case len(key.Values) > 0:
		out += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", "))
	case key.Range != "":
		out += "\n  " + r.theme.Normal.Render("Range: "+key.Range)
	}
	return out
}
