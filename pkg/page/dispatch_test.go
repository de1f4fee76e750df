package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/pagewright/pkg/driver"
)

func TestCallRegisteredAccessorReceivesDriverAndArgs(t *testing.T) {
	typ := NewType("DispatchPage")

	var gotDrv driver.Driver
	var gotArgs []interface{}
	require.NoError(t, typ.Action("fill_form", func(drv driver.Driver, args ...interface{}) (interface{}, error) {
		gotDrv = drv
		gotArgs = args
		return "done", nil
	}))

	drv := newFakeDriver()
	p, err := New(typ, drv)
	require.NoError(t, err)

	result, err := p.Call("fill_form", "ada", 42)
	require.NoError(t, err)
	assert.Equal(t, "done", result)
	assert.Same(t, drv, gotDrv)
	assert.Equal(t, []interface{}{"ada", 42}, gotArgs)
}

func TestCallResolvesThroughAncestorChain(t *testing.T) {
	base := NewType("BasePage")
	require.NoError(t, base.Element("header", ByID("header")))
	sub := base.Extend("SubPage")

	drv := newFakeDriver()
	p, err := New(sub, drv)
	require.NoError(t, err)

	result, err := p.Call("header")
	require.NoError(t, err)
	assert.Same(t, drv.el, result)
}

func TestForwardThroughCallerHook(t *testing.T) {
	typ := NewType("ForwardPage")

	drv := &callerDriver{fakeDriver: newFakeDriver(), callResult: "from-driver"}
	p, err := New(typ, drv)
	require.NoError(t, err)

	result, err := p.Call("press_key", "Enter", 3)
	require.NoError(t, err)

	// Same name, same arguments, result unchanged
	assert.Equal(t, "press_key", drv.callName)
	assert.Equal(t, []interface{}{"Enter", 3}, drv.callArgs)
	assert.Equal(t, "from-driver", result)
}

func TestForwardByReflection(t *testing.T) {
	typ := NewType("ReflectPage")

	drv := newFakeDriver()
	drv.title = "Reflected"
	p, err := New(typ, drv)
	require.NoError(t, err)

	t.Run("snake name maps to exported method", func(t *testing.T) {
		result, err := p.Call("title")
		require.NoError(t, err)
		assert.Equal(t, "Reflected", result)
	})

	t.Run("method without results beyond error", func(t *testing.T) {
		result, err := p.Call("refresh")
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Contains(t, drv.events, "refresh")
	})

	t.Run("arguments pass through in order", func(t *testing.T) {
		result, err := p.Call("resize", 1280, 720)
		require.NoError(t, err)
		assert.Equal(t, "1280x720", result)
	})

	t.Run("verbatim exported name", func(t *testing.T) {
		result, err := p.Call("URL")
		require.NoError(t, err)
		assert.Equal(t, "about:blank", result)
	})

	t.Run("single-argument script evaluation", func(t *testing.T) {
		drv.scriptQueue = []interface{}{"value"}
		result, err := p.Call("execute_script", "document.title")
		require.NoError(t, err)
		assert.Equal(t, "value", result)
		assert.Equal(t, []string{"document.title"}, drv.scripts)
	})
}

func TestForwardUnknownName(t *testing.T) {
	typ := NewType("UnknownPage")
	p, err := New(typ, newFakeDriver())
	require.NoError(t, err)

	_, err = p.Call("no_such_thing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_thing")
}

func TestForwardArgumentCountMismatch(t *testing.T) {
	typ := NewType("ArityPage")
	p, err := New(typ, newFakeDriver())
	require.NoError(t, err)

	_, err = p.Call("resize", 1280)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes 2 arguments")
}

func TestForwardArgumentConversion(t *testing.T) {
	typ := NewType("ConvertPage")
	p, err := New(typ, newFakeDriver())
	require.NoError(t, err)

	// int64 converts to the method's int parameters
	result, err := p.Call("resize", int64(800), int64(600))
	require.NoError(t, err)
	assert.Equal(t, "800x600", result)

	_, err = p.Call("resize", "wide", "tall")
	require.Error(t, err)
}

func TestUndefinedNameForwardsToDriver(t *testing.T) {
	base := NewType("BasePage")
	require.NoError(t, base.Action("refresh", func(drv driver.Driver, _ ...interface{}) (interface{}, error) {
		return "accessor", nil
	}))

	sub := base.Extend("SubPage")
	sub.Undefine("refresh")

	drv := newFakeDriver()
	p, err := New(sub, drv)
	require.NoError(t, err)

	// With the accessor undefined, dispatch falls through to the driver
	result, err := p.Call("refresh")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Contains(t, drv.events, "refresh")
}
