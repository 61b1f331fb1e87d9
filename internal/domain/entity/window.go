// Package entity defines domain entities for the webview bridge.
package entity

import "strconv"

// WindowID is the host runtime's stable identity for one application window.
// It is a plain value key; nothing in this module holds pointers into host state.
type WindowID uint64

// String implements fmt.Stringer.
func (id WindowID) String() string {
	return "window#" + strconv.FormatUint(uint64(id), 10)
}
