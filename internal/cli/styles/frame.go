package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/infrastructure/host"
)

// FrameRenderer renders what the frame loop delivered to the host.
type FrameRenderer struct {
	theme *Theme
}

// NewFrameRenderer creates a new FrameRenderer.
func NewFrameRenderer(theme *Theme) *FrameRenderer {
	return &FrameRenderer{theme: theme}
}

func (r *FrameRenderer) icon(s string) string {
	return lipgloss.NewStyle().Foreground(r.theme.Accent).Render(s)
}

func (r *FrameRenderer) state(s entity.ButtonState) string {
	if s == entity.Pressed {
		return r.theme.SuccessStyle.Render("pressed")
	}
	return r.theme.Subtle.Render("released")
}

// RenderInput renders one native input event on a single line.
func (r *FrameRenderer) RenderInput(ev host.InputEvent) string {
	switch {
	case ev.Keyboard != nil:
		k := ev.Keyboard
		line := fmt.Sprintf("%s %s %s %s %s",
			r.icon(IconKeyboard),
			r.theme.BadgeMuted.Render(k.Window.String()),
			r.theme.Highlight.Render(k.LogicalKey.String()),
			r.theme.Subtle.Render(string(k.KeyCode)),
			r.state(k.State))
		if k.Repeat {
			line += " " + r.theme.WarningStyle.Render("repeat")
		}
		return line
	case ev.MouseMotion != nil:
		m := ev.MouseMotion
		return fmt.Sprintf("%s %s %s",
			r.icon(IconMouse),
			r.theme.BadgeMuted.Render(m.Window.String()),
			r.theme.Normal.Render(fmt.Sprintf("move %+.1f %+.1f", m.DeltaX, m.DeltaY)))
	case ev.MouseButton != nil:
		b := ev.MouseButton
		return fmt.Sprintf("%s %s %s %s",
			r.icon(IconMouse),
			r.theme.BadgeMuted.Render(b.Window.String()),
			r.theme.Highlight.Render(mouseButtonName(b.Button)),
			r.state(b.State))
	default:
		return ""
	}
}

// RenderWindows renders the windows that became or stopped being webviews.
func (r *FrameRenderer) RenderWindows(created, removed []entity.WindowID) []string {
	lines := make([]string, 0, len(created)+len(removed))
	for _, id := range created {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			r.icon(IconWindow), r.theme.Badge.Render(id.String()), r.theme.SuccessStyle.Render("webview created")))
	}
	for _, id := range removed {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			r.icon(IconWindow), r.theme.BadgeMuted.Render(id.String()), r.theme.Subtle.Render("webview removed")))
	}
	return lines
}

func mouseButtonName(b entity.MouseButton) string {
	switch b.Kind {
	case entity.MouseButtonLeft:
		return "left"
	case entity.MouseButtonMiddle:
		return "middle"
	case entity.MouseButtonRight:
		return "right"
	case entity.MouseButtonBack:
		return "back"
	case entity.MouseButtonForward:
		return "forward"
	default:
		return fmt.Sprintf("button %d", b.Index)
	}
}
