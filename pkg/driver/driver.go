// Package driver defines the boundary between page objects and the browser
// automation backend. The page package never talks to a browser directly; it
// calls these interfaces, and an implementation (pkg/pwdriver, or a test fake)
// supplies the actual behavior.
package driver

import "time"

// Driver is the minimum surface a browser backend must expose to page objects.
// All real browser interaction is delegated through it.
type Driver interface {
	// Goto navigates to the given URL.
	Goto(url string) error

	// Title returns the current document title.
	Title() (string, error)

	// ExecuteScript evaluates a JavaScript expression in the page context
	// and returns its value.
	ExecuteScript(code string) (interface{}, error)

	// Find locates a single element matching the selector. The element is
	// returned even when nothing matches; callers check Exists.
	Find(sel Selector) (Element, error)

	// URL returns the current page URL.
	URL() string
}

// Element is a located page artifact.
type Element interface {
	// Exists reports whether the element is currently attached to the page.
	Exists() bool

	// Click clicks the element.
	Click() error

	// Text returns the element's visible text content.
	Text() (string, error)

	// Value returns the element's value attribute.
	Value() (string, error)

	// Fill replaces the element's value with the given text.
	Fill(value string) error

	// WaitUntilPresent blocks until the element is attached to the page or
	// the timeout elapses.
	WaitUntilPresent(timeout time.Duration) error
}

// Caller is an optional interface a Driver may implement to receive calls
// forwarded from a page object for accessor names the page does not define.
// Drivers that do not implement it are called through reflection instead.
type Caller interface {
	Call(name string, args ...interface{}) (interface{}, error)
}

// Selector identifies an element by one or more attributes. Exactly the set
// of non-empty fields is used to build the backend query.
type Selector struct {
	// ID matches the element's id attribute.
	ID string

	// CSS is a raw CSS selector.
	CSS string

	// XPath is a raw XPath expression.
	XPath string

	// Class matches a CSS class name.
	Class string

	// Text matches the element's visible text (used for links).
	Text string

	// Value matches the element's value attribute (used for buttons).
	Value string

	// Index picks among multiple matches (0-based).
	Index int
}

// IsZero reports whether no selector attributes are set.
func (s Selector) IsZero() bool {
	return s.ID == "" && s.CSS == "" && s.XPath == "" && s.Class == "" &&
		s.Text == "" && s.Value == ""
}
