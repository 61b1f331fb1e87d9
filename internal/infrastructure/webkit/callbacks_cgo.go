//go:build webkit_cgo

package webkit

import "C"

//export wuiOnScriptMessage
func wuiOnScriptMessage(id C.ulong, msg *C.char) {
	if msg == nil {
		return
	}
	if v := lookupView(uint64(id)); v != nil {
		v.deliver(C.GoString(msg))
	}
}
