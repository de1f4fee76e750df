package collection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/pagewright/pkg/driver"
)

// stubDriver is the minimal driver.Driver for factory wiring.
type stubDriver struct{}

func (stubDriver) Goto(string) error                            { return nil }
func (stubDriver) Title() (string, error)                       { return "", nil }
func (stubDriver) ExecuteScript(string) (interface{}, error)    { return nil, nil }
func (stubDriver) Find(driver.Selector) (driver.Element, error) { return nil, nil }
func (stubDriver) URL() string                                  { return "" }

// invoice is a record whose Create side effect can be made to fail.
type invoice struct {
	drv       driver.Driver
	number    string
	created   bool
	createErr error
}

func (i *invoice) Create() error {
	if i.createErr != nil {
		return i.createErr
	}
	i.created = true
	return nil
}

func newInvoiceGroup() *Group[*invoice] {
	return NewGroup(func(drv driver.Driver, opts map[string]interface{}) *invoice {
		inv := &invoice{drv: drv}
		if n, ok := opts["number"].(string); ok {
			inv.number = n
		}
		if err, ok := opts["fail"].(error); ok {
			inv.createErr = err
		}
		return inv
	})
}

func TestGroupAddCreatesAndAppends(t *testing.T) {
	group := newInvoiceGroup()
	drv := stubDriver{}

	first, err := group.Add(drv, map[string]interface{}{"number": "INV-1"})
	require.NoError(t, err)
	second, err := group.Add(drv, map[string]interface{}{"number": "INV-2"})
	require.NoError(t, err)

	assert.True(t, first.created)
	assert.True(t, second.created)
	assert.Equal(t, 2, group.Len())

	// Insertion order is preserved
	assert.Equal(t, "INV-1", group.At(0).number)
	assert.Equal(t, "INV-2", group.At(1).number)
}

func TestGroupAddFailureIsNotRetained(t *testing.T) {
	group := newInvoiceGroup()
	boom := errors.New("form rejected")

	_, err := group.Add(stubDriver{}, map[string]interface{}{"fail": boom})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, group.Len())
}

func TestGroupItemsReturnsCopy(t *testing.T) {
	group := newInvoiceGroup()
	_, err := group.Add(stubDriver{}, map[string]interface{}{"number": "INV-1"})
	require.NoError(t, err)

	items := group.Items()
	require.Len(t, items, 1)
	items[0] = nil

	assert.NotNil(t, group.At(0))
}
