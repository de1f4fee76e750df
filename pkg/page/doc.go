// Package page implements a declarative page-object model on top of a
// browser-automation driver.
//
// A Type describes one logical page: how to reach it, when it is ready, and
// the named elements and actions it exposes. Page code declares accessors once
// at setup time; tests then drive the page through those names instead of raw
// selectors.
//
// # Architecture
//
// The package is built around three core concepts:
//
// 1. Type: a registry of named accessor declarations, optionally parented to
// another Type so shared accessors are declared once
// 2. Page: a live instance binding a Type to a driver handle, constructed
// through an optional navigate/readiness/title lifecycle
// 3. Dispatch: accessor calls resolve through the Type's ancestor chain and,
// when unresolved, forward verbatim to the driver handle
//
// # Declaration
//
// Accessor names are unique across a Type and all of its ancestors. Declaring
// a name that already resolves anywhere in the chain fails immediately with a
// *DuplicateDefinitionError; Undefine removes an inherited name from a
// subtype's resolution set so the subtype can redeclare it.
//
// # Lifecycle
//
// Constructing a Page runs, strictly in order: navigation (only when requested
// with Visit and the Type registered a handler), the readiness wait (bounded
// poll for a declared element, *TimeoutError on expiry), and the title check
// (exact string or glob pattern, *TitleMismatchError on mismatch). No step is
// retried and no instance is returned after a failure.
//
// # Example Usage
//
//	login := page.NewType("LoginPage")
//	login.NavigateTo("https://example.com/login")
//	login.Element("username", page.ByID("username"))
//	login.Button("Sign In")
//	login.ExpectTitle("Log In")
//
//	p, err := page.New(login, drv, page.Visit())
//	_, err = p.Call("sign_in")
package page
