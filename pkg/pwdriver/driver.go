package pwdriver

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/pagewright/pkg/driver"
)

// Driver implements the driver boundary over a Playwright page. Beyond the
// interface it exposes a few extra page operations (Reload, GoBack, Content)
// that page objects reach through call forwarding.
type Driver struct {
	page playwright.Page
}

// New wraps a Playwright page. The page's lifetime is managed by its session,
// not the driver.
func New(page playwright.Page) *Driver {
	return &Driver{page: page}
}

// Goto navigates to the given URL.
func (d *Driver) Goto(url string) error {
	_, err := d.page.Goto(url)
	return err
}

// Title returns the current document title.
func (d *Driver) Title() (string, error) {
	return d.page.Title()
}

// ExecuteScript evaluates a JavaScript expression in the page context.
func (d *Driver) ExecuteScript(code string) (interface{}, error) {
	return d.page.Evaluate(code)
}

// URL returns the current page URL.
func (d *Driver) URL() string {
	return d.page.URL()
}

// Find builds a selector-bound element. The element re-queries the page on
// every operation, so it never goes stale.
func (d *Driver) Find(sel driver.Selector) (driver.Element, error) {
	query, err := buildQuery(sel)
	if err != nil {
		return nil, err
	}
	return &element{page: d.page, query: query, index: sel.Index}, nil
}

// Reload reloads the current page.
func (d *Driver) Reload() error {
	_, err := d.page.Reload()
	return err
}

// GoBack navigates to the previous page in the session history.
func (d *Driver) GoBack() error {
	_, err := d.page.GoBack()
	return err
}

// Content returns the full HTML of the current page.
func (d *Driver) Content() (string, error) {
	return d.page.Content()
}

// buildQuery maps a selector onto a Playwright query string. Exactly one
// primary attribute is honored, in this precedence order.
func buildQuery(sel driver.Selector) (string, error) {
	switch {
	case sel.CSS != "":
		return sel.CSS, nil
	case sel.ID != "":
		return fmt.Sprintf("[id=%q]", sel.ID), nil
	case sel.XPath != "":
		return "xpath=" + sel.XPath, nil
	case sel.Class != "":
		return "." + sel.Class, nil
	case sel.Text != "":
		return fmt.Sprintf("a:text-is(%q)", sel.Text), nil
	case sel.Value != "":
		return fmt.Sprintf("input[value=%q], button[value=%q]", sel.Value, sel.Value), nil
	default:
		return "", fmt.Errorf("selector has no attributes")
	}
}
