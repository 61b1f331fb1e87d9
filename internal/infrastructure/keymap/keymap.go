// Package keymap maps DOM keyboard and mouse vocabulary onto host input types.
package keymap

import (
	"strconv"
	"unicode/utf8"

	"github.com/bnema/wui/internal/domain/entity"
)

// Vocabulary is the default DOM lookup table. Implements port.KeyVocabulary.
type Vocabulary struct{}

// Default is the shared vocabulary instance.
var Default = Vocabulary{}

// namedKeys are KeyboardEvent.key values that do not produce text.
var namedKeys = map[string]struct{}{}

func init() {
	for _, k := range []string{
		"Alt", "AltGraph", "CapsLock", "Control", "Fn", "FnLock", "Hyper", "Meta",
		"NumLock", "ScrollLock", "Shift", "Super", "Symbol", "SymbolLock",
		"Enter", "Tab", "Space",
		"ArrowDown", "ArrowLeft", "ArrowRight", "ArrowUp", "End", "Home", "PageDown", "PageUp",
		"Backspace", "Clear", "Copy", "CrSel", "Cut", "Delete", "EraseEof", "ExSel", "Insert",
		"Paste", "Redo", "Undo",
		"Accept", "Again", "Attn", "Cancel", "ContextMenu", "Escape", "Execute", "Find",
		"Help", "Pause", "Play", "Props", "Select", "ZoomIn", "ZoomOut",
		"BrightnessDown", "BrightnessUp", "Eject", "LogOff", "Power", "PowerOff",
		"PrintScreen", "Hibernate", "Standby", "WakeUp",
		"AudioVolumeDown", "AudioVolumeMute", "AudioVolumeUp",
		"MediaPlayPause", "MediaStop", "MediaTrackNext", "MediaTrackPrevious",
		"BrowserBack", "BrowserFavorites", "BrowserForward", "BrowserHome",
		"BrowserRefresh", "BrowserSearch", "BrowserStop",
	} {
		namedKeys[k] = struct{}{}
	}
	for i := 1; i <= 24; i++ {
		namedKeys["F"+strconv.Itoa(i)] = struct{}{}
	}
}

// Key implements port.KeyVocabulary.
func (Vocabulary) Key(key string) entity.Key {
	switch key {
	case "", "Unidentified":
		return entity.Key{Kind: entity.KeyUnidentified}
	case "Dead":
		return entity.Key{Kind: entity.KeyDead}
	case " ":
		return entity.Named("Space")
	}
	if _, ok := namedKeys[key]; ok {
		return entity.Named(key)
	}
	// Multi-rune names not in the table are still names, not text.
	if utf8.RuneCountInString(key) > 1 && isASCIILetters(key) {
		return entity.Named(key)
	}
	return entity.Character(key)
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// KeyCode implements port.KeyVocabulary. Codes follow the UI Events
// KeyboardEvent.code registry; unknown codes map to KeyCodeUnidentified.
func (Vocabulary) KeyCode(code string) entity.KeyCode {
	if _, ok := knownCodes[code]; ok {
		return entity.KeyCode(code)
	}
	return entity.KeyCodeUnidentified
}

// IsKnownCode reports whether code is part of the vocabulary.
func IsKnownCode(code string) bool {
	_, ok := knownCodes[code]
	return ok
}

// MouseButton implements port.KeyVocabulary using MouseEvent.button indices.
func (Vocabulary) MouseButton(button uint16) entity.MouseButton {
	switch button {
	case 0:
		return entity.MouseButton{Kind: entity.MouseButtonLeft}
	case 1:
		return entity.MouseButton{Kind: entity.MouseButtonMiddle}
	case 2:
		return entity.MouseButton{Kind: entity.MouseButtonRight}
	case 3:
		return entity.MouseButton{Kind: entity.MouseButtonBack}
	case 4:
		return entity.MouseButton{Kind: entity.MouseButtonForward}
	default:
		return entity.MouseButton{Kind: entity.MouseButtonOther, Index: button}
	}
}
