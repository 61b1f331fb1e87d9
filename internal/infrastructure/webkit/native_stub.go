//go:build !webkit_cgo

package webkit

import "github.com/bnema/wui/internal/application/port"

const nativeAvailable = false

type nativeView struct{}

func nativeInit() error { return port.ErrEngineUnavailable }

func nativePump() {}

func nativeBuild(*View, port.WindowHandle, port.BuildOptions) error {
	return port.ErrEngineUnavailable
}

func nativeEvaluate(*View, string) error { return port.ErrEngineUnavailable }

func nativeDestroy(*View) {}
