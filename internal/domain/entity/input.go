package entity

// ButtonState is the state of a key or button in an input event.
type ButtonState int

const (
	Pressed ButtonState = iota
	Released
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// KeyCode is a physical key, named after the DOM KeyboardEvent.code values
// ("KeyA", "AltLeft", "ArrowUp", ...).
type KeyCode string

// KeyCodeUnidentified is used for codes the vocabulary does not know.
const KeyCodeUnidentified KeyCode = "Unidentified"

// KeyKind distinguishes logical key variants.
type KeyKind int

const (
	// KeyCharacter is a key that produces text.
	KeyCharacter KeyKind = iota
	// KeyNamed is a non-text key such as Enter or ArrowLeft.
	KeyNamed
	// KeyDead is a dead key used for composition.
	KeyDead
	// KeyUnidentified is a key the platform could not identify.
	KeyUnidentified
)

// Key is a logical key. It is a comparable value so it can be used as a map key.
type Key struct {
	Kind  KeyKind
	Value string
}

// Character returns a character key.
func Character(s string) Key { return Key{Kind: KeyCharacter, Value: s} }

// Named returns a named key.
func Named(name string) Key { return Key{Kind: KeyNamed, Value: name} }

func (k Key) String() string {
	switch k.Kind {
	case KeyNamed:
		return k.Value
	case KeyDead:
		return "Dead"
	case KeyUnidentified:
		return "Unidentified"
	default:
		return "'" + k.Value + "'"
	}
}

// MouseButton is a mouse button in host vocabulary.
type MouseButton struct {
	Kind MouseButtonKind
	// Index is set for MouseButtonOther.
	Index uint16
}

// MouseButtonKind enumerates the known mouse buttons.
type MouseButtonKind int

const (
	MouseButtonLeft MouseButtonKind = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonBack
	MouseButtonForward
	MouseButtonOther
)

// KeyboardInput is a key press or release targeted at a window.
type KeyboardInput struct {
	Window     WindowID
	State      ButtonState
	KeyCode    KeyCode
	LogicalKey Key
	Repeat     bool
}

// MouseMotion is a relative pointer movement.
type MouseMotion struct {
	Window WindowID
	DeltaX float32
	DeltaY float32
}

// MouseButtonInput is a mouse button press or release targeted at a window.
type MouseButtonInput struct {
	Window WindowID
	Button MouseButton
	State  ButtonState
}
