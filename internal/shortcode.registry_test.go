package internal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// handlerFunc adapts a function to InternalHandler for tests
type handlerFunc func(call Call) string

func (f handlerFunc) Handle(call Call) string {
	return f(call)
}

func constHandler(out string) InternalHandler {
	return handlerFunc(func(Call) string { return out })
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	require.NoError(t, registry.Register("home", constHandler("home shortcode")))

	handler, ok := registry.Get("home")
	require.True(t, ok)
	assert.Equal(t, "home shortcode", handler.Handle(Call{}))

	assert.True(t, registry.Has("home"))
	assert.False(t, registry.Has("nothing"))
	assert.False(t, registry.Has("HOME"))

	_, ok = registry.Get("nothing")
	assert.False(t, ok)
}

func TestRegistry_Overwrite(t *testing.T) {
	registry := NewRegistry(nil)

	require.NoError(t, registry.Register("x", constHandler("first")))
	require.NoError(t, registry.Register("x", constHandler("second")))

	handler, ok := registry.Get("x")
	require.True(t, ok)
	assert.Equal(t, "second", handler.Handle(Call{}))
	assert.Equal(t, 1, registry.Count())
}

func TestRegistry_Errors(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	err := registry.Register("", constHandler("x"))
	require.Error(t, err)
	assert.Equal(t, ErrMsgEmptyTagName, err.Error())

	err = registry.Register("tag", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNilHandler)
	assert.Contains(t, err.Error(), "tag")

	var regErr *RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "tag", regErr.TagName)

	assert.Equal(t, 0, registry.Count())
}

func TestRegistry_List(t *testing.T) {
	registry := NewRegistry(zap.NewNop())
	for _, name := range []string{"video", "audio", "gallery"} {
		require.NoError(t, registry.Register(name, constHandler(name)))
	}

	assert.Equal(t, []string{"audio", "gallery", "video"}, registry.List())
	assert.Equal(t, 3, registry.Count())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry(zap.NewNop())
	require.NoError(t, registry.Register("a", constHandler("A")))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = registry.Register("b", constHandler("B"))
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Get("a")
			_ = registry.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, registry.Count())
}
