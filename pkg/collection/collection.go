// Package collection provides a small ordered container for repeated data
// records created against a browser page, such as the rows of a form-backed
// table. It groups construction, the record's create side effect, and
// retention in one step.
package collection

import "github.com/entrhq/pagewright/pkg/driver"

// Record is a data object with a create side effect, typically one that fills
// and submits part of a page.
type Record interface {
	Create() error
}

// Factory constructs a record bound to a driver handle from caller options.
type Factory[T Record] func(drv driver.Driver, opts map[string]interface{}) T

// Group is an ordered collection of records of one configured type.
type Group[T Record] struct {
	factory Factory[T]
	items   []T
}

// NewGroup creates a group that builds records with the given factory.
func NewGroup[T Record](factory Factory[T]) *Group[T] {
	return &Group[T]{factory: factory}
}

// Add constructs a record, invokes its Create side effect, and appends it.
// The record is not retained when Create fails.
func (g *Group[T]) Add(drv driver.Driver, opts map[string]interface{}) (T, error) {
	record := g.factory(drv, opts)
	if err := record.Create(); err != nil {
		var zero T
		return zero, err
	}
	g.items = append(g.items, record)
	return record, nil
}

// Len returns the number of records added so far.
func (g *Group[T]) Len() int {
	return len(g.items)
}

// At returns the i-th record in insertion order.
func (g *Group[T]) At(i int) T {
	return g.items[i]
}

// Items returns the records in insertion order. The returned slice is a copy.
func (g *Group[T]) Items() []T {
	items := make([]T, len(g.items))
	copy(items, g.items)
	return items
}
