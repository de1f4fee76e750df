package page

import (
	"fmt"
	"time"

	"github.com/entrhq/pagewright/pkg/driver"
)

// fakeElement is an in-memory driver.Element.
type fakeElement struct {
	present      bool
	presentAfter int // Exists calls before the element reports present
	text         string
	value        string
	clicks       int
	clickErr     error
	filled       []string
}

func (e *fakeElement) Exists() bool {
	if e.presentAfter > 0 {
		e.presentAfter--
		return false
	}
	return e.present
}

func (e *fakeElement) Click() error {
	e.clicks++
	return e.clickErr
}

func (e *fakeElement) Text() (string, error) {
	return e.text, nil
}

func (e *fakeElement) Value() (string, error) {
	return e.value, nil
}

func (e *fakeElement) Fill(value string) error {
	e.filled = append(e.filled, value)
	return nil
}

func (e *fakeElement) WaitUntilPresent(timeout time.Duration) error {
	if !e.present {
		return fmt.Errorf("not present within %s", timeout)
	}
	return nil
}

// fakeDriver is an in-memory driver.Driver recording every interaction. It
// deliberately does not implement driver.Caller so forwarded calls exercise
// the reflection path; callerDriver below covers the hook path.
type fakeDriver struct {
	events []string

	gotoErr  error
	title    string
	titleErr error
	current  string

	el      *fakeElement
	finds   []driver.Selector
	findErr error

	scripts     []string
	scriptQueue []interface{}
	scriptErr   error
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		el:      &fakeElement{present: true},
		current: "about:blank",
	}
}

func (d *fakeDriver) Goto(url string) error {
	d.events = append(d.events, "goto:"+url)
	if d.gotoErr != nil {
		return d.gotoErr
	}
	d.current = url
	return nil
}

func (d *fakeDriver) Title() (string, error) {
	d.events = append(d.events, "title")
	return d.title, d.titleErr
}

func (d *fakeDriver) ExecuteScript(code string) (interface{}, error) {
	d.events = append(d.events, "script")
	d.scripts = append(d.scripts, code)
	if d.scriptErr != nil {
		return nil, d.scriptErr
	}
	if len(d.scriptQueue) == 0 {
		return 0, nil
	}
	// Last value repeats
	v := d.scriptQueue[0]
	if len(d.scriptQueue) > 1 {
		d.scriptQueue = d.scriptQueue[1:]
	}
	return v, nil
}

func (d *fakeDriver) Find(sel driver.Selector) (driver.Element, error) {
	d.events = append(d.events, "find")
	d.finds = append(d.finds, sel)
	if d.findErr != nil {
		return nil, d.findErr
	}
	return d.el, nil
}

func (d *fakeDriver) URL() string {
	return d.current
}

// Extra surface only reachable through call forwarding.

func (d *fakeDriver) Refresh() error {
	d.events = append(d.events, "refresh")
	return nil
}

func (d *fakeDriver) Resize(width, height int) (string, error) {
	d.events = append(d.events, "resize")
	return fmt.Sprintf("%dx%d", width, height), nil
}

// callerDriver forwards through the driver.Caller hook instead of
// reflection.
type callerDriver struct {
	*fakeDriver
	callName   string
	callArgs   []interface{}
	callResult interface{}
	callErr    error
}

func (d *callerDriver) Call(name string, args ...interface{}) (interface{}, error) {
	d.callName = name
	d.callArgs = args
	return d.callResult, d.callErr
}
