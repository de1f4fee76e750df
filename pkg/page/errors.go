package page

import (
	"fmt"
	"time"
)

// DuplicateDefinitionError is returned when an accessor name is declared on a
// Type while the same name already resolves on that Type or one of its
// ancestors.
type DuplicateDefinitionError struct {
	// Name is the colliding accessor name.
	Name string

	// Type is the name of the type that already declares the accessor.
	Type string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("accessor %q is already defined on %s", e.Name, e.Type)
}

// TimeoutError is returned when a bounded poll (readiness wait or background
// activity wait) exceeds its bound.
type TimeoutError struct {
	// Awaited identifies the condition that was waited on.
	Awaited string

	// Message is the caller-supplied failure message, if any.
	Message string

	// Timeout is the bound that expired.
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("timed out after %s waiting for %s: %s", e.Timeout, e.Awaited, e.Message)
	}
	return fmt.Sprintf("timed out after %s waiting for %s", e.Timeout, e.Awaited)
}

// TitleMismatchError is returned when the title check fails during page
// construction.
type TitleMismatchError struct {
	// Expected is the expected title, or the pattern when Pattern is true.
	Expected string

	// Actual is the title the driver reported.
	Actual string

	// Pattern indicates the expectation was a glob pattern rather than an
	// exact string.
	Pattern bool
}

func (e *TitleMismatchError) Error() string {
	if e.Pattern {
		return fmt.Sprintf("title %q does not match pattern %q", e.Actual, e.Expected)
	}
	return fmt.Sprintf("title %q does not equal %q", e.Actual, e.Expected)
}
