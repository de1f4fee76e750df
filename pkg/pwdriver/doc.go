// Package pwdriver implements the driver boundary on top of Playwright.
//
// A Manager owns the Playwright runtime and a registry of named browser
// sessions. Each Session wraps one browser/context/page triple and exposes a
// Driver, the value page objects bind to. Elements are selector-bound: every
// element operation re-queries the page, so a located element never goes
// stale across navigations.
//
// # Session Lifecycle
//
//  1. Initialize installs and starts the Playwright runtime
//  2. StartSession launches a browser and opens a page under a unique name
//  3. CloseSession releases the session's browser resources
//  4. Shutdown closes every session and stops the runtime
//
// # Example Usage
//
//	manager := pwdriver.NewManager()
//	if err := manager.Initialize(); err != nil {
//	    return err
//	}
//	defer manager.Shutdown()
//
//	session, err := manager.StartSession("checkout", pwdriver.Options{Headless: true})
//	if err != nil {
//	    return err
//	}
//	p, err := page.New(checkoutPage, session.Driver(), page.Visit())
package pwdriver
