package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/domain/entity"
	"github.com/bnema/wui/internal/logging"
)

type keyboardPayload struct {
	Key  *string `json:"key"`
	Code *string `json:"code"`
}

type mouseButtonPayload struct {
	Button *uint16 `json:"button"`
}

type mouseMotionPayload struct {
	RelX *float32 `json:"relX"`
	RelY *float32 `json:"relY"`
}

// TranslateEventsOutput reports what one translation pass did.
type TranslateEventsOutput struct {
	// Emitted counts native input events sent to the sink.
	Emitted int
	// Errors holds one entry per dropped message.
	Errors []error
}

// TranslateEventsUseCase drains the outbound queue of every live webview and
// turns system event messages into native input events.
//
// It owns the pressed key set used for the repeat flag. The set is keyed by
// logical key, shared across webviews, and lives as long as the use case.
type TranslateEventsUseCase struct {
	registry *Registry
	sink     port.InputSink
	vocab    port.KeyVocabulary
	pressed  map[entity.Key]struct{}
}

// NewTranslateEventsUseCase creates a new translator.
func NewTranslateEventsUseCase(registry *Registry, sink port.InputSink, vocab port.KeyVocabulary) *TranslateEventsUseCase {
	return &TranslateEventsUseCase{
		registry: registry,
		sink:     sink,
		vocab:    vocab,
		pressed:  make(map[entity.Key]struct{}),
	}
}

// IsPressed reports whether a logical key is held according to the messages seen so far.
func (uc *TranslateEventsUseCase) IsPressed(key entity.Key) bool {
	_, ok := uc.pressed[key]
	return ok
}

// Execute runs one translation pass. Malformed messages are logged and
// skipped, they never stop the pass.
func (uc *TranslateEventsUseCase) Execute(ctx context.Context) TranslateEventsOutput {
	log := logging.FromContext(ctx).With().Str("component", "event-translator").Logger()
	var out TranslateEventsOutput

	for _, id := range uc.registry.IDs() {
		h, _ := uc.registry.Get(id)
		for _, msg := range h.Outbound.Drain() {
			if err := uc.translate(id, msg); err != nil {
				log.Error().Err(err).Stringer("window", id).Msg("dropped webview message")
				out.Errors = append(out.Errors, err)
				continue
			}
			out.Emitted++
		}
	}

	return out
}

func (uc *TranslateEventsUseCase) translate(id entity.WindowID, msg string) error {
	name, data, ok := entity.SplitMessage(msg)
	if !ok {
		return fmt.Errorf("%w: %q", port.ErrMalformedMessage, msg)
	}

	switch name {
	case entity.EventKeyDown, entity.EventKeyUp:
		var p keyboardPayload
		if err := decode(data, &p); err != nil {
			return err
		}
		if p.Key == nil || p.Code == nil {
			return fmt.Errorf("%w: %s requires key and code: %s", port.ErrInvalidPayload, name, data)
		}
		uc.sendKeyboard(id, name == entity.EventKeyDown, *p.Key, *p.Code)

	case entity.EventMouseMove:
		var p mouseMotionPayload
		if err := decode(data, &p); err != nil {
			return err
		}
		if p.RelX == nil || p.RelY == nil {
			return fmt.Errorf("%w: %s requires relX and relY: %s", port.ErrInvalidPayload, name, data)
		}
		uc.sink.SendMouseMotion(entity.MouseMotion{Window: id, DeltaX: *p.RelX, DeltaY: *p.RelY})

	case entity.EventMouseDown, entity.EventMouseUp:
		var p mouseButtonPayload
		if err := decode(data, &p); err != nil {
			return err
		}
		if p.Button == nil {
			return fmt.Errorf("%w: %s requires button: %s", port.ErrInvalidPayload, name, data)
		}
		state := entity.Pressed
		if name == entity.EventMouseUp {
			state = entity.Released
		}
		uc.sink.SendMouseButton(entity.MouseButtonInput{
			Window: id,
			Button: uc.vocab.MouseButton(*p.Button),
			State:  state,
		})

	default:
		return fmt.Errorf("%w: %q (payload %s)", port.ErrUnknownEvent, name, data)
	}

	return nil
}

func (uc *TranslateEventsUseCase) sendKeyboard(id entity.WindowID, down bool, key, code string) {
	logical := uc.vocab.Key(key)
	ev := entity.KeyboardInput{
		Window:     id,
		State:      entity.Released,
		KeyCode:    uc.vocab.KeyCode(code),
		LogicalKey: logical,
	}

	if down {
		_, ev.Repeat = uc.pressed[logical]
		uc.pressed[logical] = struct{}{}
		ev.State = entity.Pressed
	} else {
		delete(uc.pressed, logical)
	}

	uc.sink.SendKeyboard(ev)
}

func decode(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("%w: %s: %v", port.ErrInvalidPayload, data, err)
	}
	return nil
}
