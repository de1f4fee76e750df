package pwdriver

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// element is a selector-bound page artifact. Each operation re-queries the
// page, so operations work against whatever currently matches.
type element struct {
	page  playwright.Page
	query string
	index int
}

// handle resolves the current matching element, or nil when nothing matches.
func (e *element) handle() (playwright.ElementHandle, error) {
	if e.index == 0 {
		return e.page.QuerySelector(e.query)
	}

	handles, err := e.page.QuerySelectorAll(e.query)
	if err != nil {
		return nil, err
	}
	if e.index >= len(handles) {
		return nil, nil
	}
	return handles[e.index], nil
}

// require resolves the element and fails when it is absent.
func (e *element) require() (playwright.ElementHandle, error) {
	h, err := e.handle()
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("no element matching %q", e.query)
	}
	return h, nil
}

// Exists reports whether the element is currently attached to the page.
func (e *element) Exists() bool {
	h, err := e.handle()
	return err == nil && h != nil
}

// Click clicks the element.
func (e *element) Click() error {
	h, err := e.require()
	if err != nil {
		return err
	}
	return h.Click()
}

// Text returns the element's visible text content.
func (e *element) Text() (string, error) {
	h, err := e.require()
	if err != nil {
		return "", err
	}
	return h.TextContent()
}

// Value returns the element's value attribute.
func (e *element) Value() (string, error) {
	h, err := e.require()
	if err != nil {
		return "", err
	}
	return h.GetAttribute("value")
}

// Fill replaces the element's value with the given text.
func (e *element) Fill(value string) error {
	h, err := e.require()
	if err != nil {
		return err
	}
	return h.Fill(value)
}

// WaitUntilPresent blocks until an element matching the query is attached to
// the page or the timeout elapses.
func (e *element) WaitUntilPresent(timeout time.Duration) error {
	_, err := e.page.WaitForSelector(e.query, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err
}
