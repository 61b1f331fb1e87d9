package port

import "github.com/bnema/wui/internal/domain/entity"

// WebviewComponents exposes host change tracking for the WebviewConfig
// component. Lists cover the changes since the previous frame.
type WebviewComponents interface {
	// Added lists identities that newly carry a WebviewConfig.
	Added() []entity.WindowID
	// Changed lists identities whose WebviewConfig was mutated.
	Changed() []entity.WindowID
	// Removed lists identities that lost their WebviewConfig, either by
	// removal or because the window itself was destroyed.
	Removed() []entity.WindowID
	// Webview returns the current component of an identity.
	Webview(id entity.WindowID) (entity.WebviewConfig, bool)
	// RemoveWebview detaches the component from an identity.
	RemoveWebview(id entity.WindowID)
}

// Windows resolves host windows to native handles.
type Windows interface {
	// NativeHandle returns ErrWindowNotReady while the native window does not
	// exist yet. Any other error is permanent for the identity.
	NativeHandle(id entity.WindowID) (WindowHandle, error)
	// ClipChildren reports whether the window layout clips child surfaces,
	// which prevents a transparent webview background.
	ClipChildren(id entity.WindowID) bool
}

// InputSink receives translated input events, like any other host input source.
type InputSink interface {
	SendKeyboard(ev entity.KeyboardInput)
	SendMouseMotion(ev entity.MouseMotion)
	SendMouseButton(ev entity.MouseButtonInput)
}

// KeyVocabulary converts DOM key data into host input vocabulary.
type KeyVocabulary interface {
	// Key maps a KeyboardEvent.key value to a logical key.
	Key(key string) entity.Key
	// KeyCode maps a KeyboardEvent.code value to a physical key.
	KeyCode(code string) entity.KeyCode
	// MouseButton maps a MouseEvent.button index.
	MouseButton(button uint16) entity.MouseButton
}
