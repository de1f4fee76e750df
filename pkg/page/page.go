package page

import (
	"fmt"
	"time"

	"github.com/entrhq/pagewright/pkg/driver"
)

// Page is a live instance of a Type bound to a driver handle. The handle is
// shared, not owned; the caller manages its lifetime. A Page holds no other
// resources.
type Page struct {
	typ       *Type
	drv       driver.Driver
	navigated bool
}

// Option configures page construction.
type Option func(*pageOptions)

type pageOptions struct {
	visit bool
}

// Visit requests navigation during construction. Navigation only happens when
// the Type also registered a navigation handler; requesting it without one is
// a no-op.
func Visit() Option {
	return func(o *pageOptions) {
		o.visit = true
	}
}

// New constructs a page instance. The lifecycle runs strictly in order:
// navigation (when requested and registered), the readiness wait, then the
// title check. Each step runs at most once and a failure aborts construction;
// no instance is returned mid-lifecycle. Navigation and title-read errors
// propagate untranslated from the driver.
func New(t *Type, drv driver.Driver, opts ...Option) (*Page, error) {
	if t == nil {
		return nil, fmt.Errorf("page type is required")
	}
	if drv == nil {
		return nil, fmt.Errorf("driver handle is required")
	}

	var o pageOptions
	for _, opt := range opts {
		opt(&o)
	}

	p := &Page{typ: t, drv: drv}

	if o.visit && t.navigate != nil {
		if err := t.navigate(drv); err != nil {
			return nil, err
		}
		p.navigated = true
	}

	if t.readiness != nil {
		if err := p.awaitElement(t.readiness.element, t.readiness.timeout); err != nil {
			return nil, err
		}
	}

	if t.title != nil {
		if err := p.checkTitle(t.title); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Type returns the page's descriptor.
func (p *Page) Type() *Type {
	return p.typ
}

// Driver returns the underlying driver handle.
func (p *Page) Driver() driver.Driver {
	return p.drv
}

// Navigated reports whether construction performed navigation.
func (p *Page) Navigated() bool {
	return p.navigated
}

// awaitElement polls the named element accessor until it reports present or
// the bound expires.
func (p *Page) awaitElement(name string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for {
		result, err := p.Call(name)
		if err != nil {
			return err
		}
		el, ok := result.(driver.Element)
		if !ok {
			return fmt.Errorf("readiness accessor %q did not return an element", name)
		}
		if el.Exists() {
			return nil
		}
		if time.Now().After(deadline) {
			return &TimeoutError{Awaited: fmt.Sprintf("element %q", name), Timeout: timeout}
		}
		time.Sleep(DefaultPollInterval)
	}
}

func (p *Page) checkTitle(exp *titleExpectation) error {
	actual, err := p.drv.Title()
	if err != nil {
		return err
	}

	if exp.matcher != nil {
		if !exp.matcher.Match(actual) {
			return &TitleMismatchError{Expected: exp.expected, Actual: actual, Pattern: true}
		}
		return nil
	}

	if actual != exp.expected {
		return &TitleMismatchError{Expected: exp.expected, Actual: actual}
	}
	return nil
}
