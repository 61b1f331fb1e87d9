//go:build !webkit_cgo

package webkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wui/internal/application/port"
)

func TestStubEngineIsUnavailable(t *testing.T) {
	assert.False(t, Available())
	assert.ErrorIs(t, Init(), port.ErrEngineUnavailable)

	e := NewEngine()
	assert.Equal(t, "webkitgtk", e.Name())
	e.Pump()

	wv, err := e.Build(context.Background(), port.WindowHandle{Kind: HandleKind}, port.BuildOptions{})
	require.ErrorIs(t, err, port.ErrEngineUnavailable)
	assert.Nil(t, wv)
}

func TestViewDeliverAfterClose(t *testing.T) {
	var got []string
	v := &View{handler: func(s string) { got = append(got, s) }}
	registerView(v)
	require.Same(t, v, lookupView(v.id))

	v.deliver("kd\u0001{}")
	require.NoError(t, v.Close())
	require.NoError(t, v.Close())
	v.deliver("ku\u0001{}")

	assert.Equal(t, []string{"kd\u0001{}"}, got)
	assert.Nil(t, lookupView(v.id))
	assert.ErrorIs(t, v.EvaluateScript("1"), port.ErrWebViewClosed)
}
