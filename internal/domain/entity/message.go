package entity

import "strings"

// System event names posted by the bootstrap script.
const (
	EventKeyDown   = "kd"
	EventKeyUp     = "ku"
	EventMouseDown = "md"
	EventMouseUp   = "mu"
	EventMouseMove = "mm"
)

// MessageDelimiter separates the event name from its JSON payload on the wire.
const MessageDelimiter = "\u0001"

// SystemEvents lists the names reserved for the bootstrap script.
func SystemEvents() []string {
	return []string{EventKeyDown, EventKeyUp, EventMouseDown, EventMouseUp, EventMouseMove}
}

// FormatMessage encodes a wire message: "<name>\u0001<json>".
func FormatMessage(name, payload string) string {
	return name + MessageDelimiter + payload
}

// SplitMessage splits a wire message on the first delimiter.
func SplitMessage(msg string) (name, payload string, ok bool) {
	return strings.Cut(msg, MessageDelimiter)
}
