package host

import "github.com/bnema/wui/internal/domain/entity"

// InputEvent is one event received by the world. Exactly one field is set.
type InputEvent struct {
	Keyboard    *entity.KeyboardInput
	MouseMotion *entity.MouseMotion
	MouseButton *entity.MouseButtonInput
}

// SendKeyboard implements port.InputSink.
func (w *World) SendKeyboard(ev entity.KeyboardInput) {
	w.input = append(w.input, InputEvent{Keyboard: &ev})
}

// SendMouseMotion implements port.InputSink.
func (w *World) SendMouseMotion(ev entity.MouseMotion) {
	w.input = append(w.input, InputEvent{MouseMotion: &ev})
}

// SendMouseButton implements port.InputSink.
func (w *World) SendMouseButton(ev entity.MouseButtonInput) {
	w.input = append(w.input, InputEvent{MouseButton: &ev})
}

// DrainInput returns and clears the received input events.
func (w *World) DrainInput() []InputEvent {
	out := w.input
	w.input = nil
	return out
}
