package keymap

import "strconv"

var knownCodes = map[string]struct{}{}

func init() {
	codes := []string{
		"Backquote", "Backslash", "BracketLeft", "BracketRight", "Comma", "Equal",
		"IntlBackslash", "IntlRo", "IntlYen", "Minus", "Period", "Quote", "Semicolon", "Slash",
		"AltLeft", "AltRight", "Backspace", "CapsLock", "ContextMenu", "ControlLeft",
		"ControlRight", "Enter", "MetaLeft", "MetaRight", "ShiftLeft", "ShiftRight", "Space", "Tab",
		"Convert", "KanaMode", "Lang1", "Lang2", "Lang3", "Lang4", "Lang5", "NonConvert",
		"Delete", "End", "Help", "Home", "Insert", "PageDown", "PageUp",
		"ArrowDown", "ArrowLeft", "ArrowRight", "ArrowUp",
		"NumLock", "NumpadAdd", "NumpadBackspace", "NumpadClear", "NumpadClearEntry",
		"NumpadComma", "NumpadDecimal", "NumpadDivide", "NumpadEnter", "NumpadEqual",
		"NumpadHash", "NumpadMemoryAdd", "NumpadMemoryClear", "NumpadMemoryRecall",
		"NumpadMemoryStore", "NumpadMemorySubtract", "NumpadMultiply", "NumpadParenLeft",
		"NumpadParenRight", "NumpadStar", "NumpadSubtract",
		"Escape", "Fn", "FnLock", "PrintScreen", "ScrollLock", "Pause",
		"BrowserBack", "BrowserFavorites", "BrowserForward", "BrowserHome", "BrowserRefresh",
		"BrowserSearch", "BrowserStop", "Eject", "LaunchApp1", "LaunchApp2", "LaunchMail",
		"MediaPlayPause", "MediaSelect", "MediaStop", "MediaTrackNext", "MediaTrackPrevious",
		"Power", "Sleep", "AudioVolumeDown", "AudioVolumeMute", "AudioVolumeUp", "WakeUp",
		"Meta", "Hyper", "Turbo", "Abort", "Resume", "Suspend", "Again", "Copy", "Cut", "Find",
		"Open", "Paste", "Props", "Select", "Undo", "Hiragana", "Katakana",
	}
	for _, c := range codes {
		knownCodes[c] = struct{}{}
	}
	for c := 'A'; c <= 'Z'; c++ {
		knownCodes["Key"+string(c)] = struct{}{}
	}
	for d := '0'; d <= '9'; d++ {
		knownCodes["Digit"+string(d)] = struct{}{}
		knownCodes["Numpad"+string(d)] = struct{}{}
	}
	for i := 1; i <= 35; i++ {
		knownCodes["F"+strconv.Itoa(i)] = struct{}{}
	}
}
