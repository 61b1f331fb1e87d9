package port

import "errors"

var (
	// ErrWindowNotReady means the native window cannot be resolved yet; retry later.
	ErrWindowNotReady = errors.New("native window not ready")
	// ErrEngineUnavailable means the engine backend was not compiled in.
	ErrEngineUnavailable = errors.New("webview engine unavailable")
	// ErrWebViewClosed is returned by operations on a closed instance.
	ErrWebViewClosed = errors.New("webview closed")

	// ErrMalformedMessage means an IPC message had no event delimiter.
	ErrMalformedMessage = errors.New("malformed message")
	// ErrUnknownEvent means an IPC message named an unknown event.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrInvalidPayload means an IPC payload did not decode into the expected shape.
	ErrInvalidPayload = errors.New("invalid event payload")
)
