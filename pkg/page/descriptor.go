package page

import (
	"fmt"
	"time"

	"github.com/gobwas/glob"

	"github.com/entrhq/pagewright/pkg/driver"
)

// Default values for page lifecycle waits
const (
	// DefaultTimeout bounds the readiness wait and the background activity
	// wait when no explicit timeout is given.
	DefaultTimeout = 30 * time.Second

	// DefaultPollInterval is the pause between readiness poll attempts.
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultActivityProbe counts outstanding jQuery requests. Pages without
	// jQuery report idle.
	DefaultActivityProbe = `typeof jQuery === "undefined" ? 0 : jQuery.active`
)

// Kind classifies an accessor. Value declarations and the plural aliases are
// readability variants of these two kinds, not kinds of their own.
type Kind int

const (
	// KindElement locates and returns a page artifact.
	KindElement Kind = iota

	// KindAction performs an operation against a page artifact.
	KindAction
)

// Locator is the callable behind an accessor. It receives the instance's
// driver handle plus any caller-supplied arguments.
type Locator func(drv driver.Driver, args ...interface{}) (interface{}, error)

// Accessor is one named element/action declaration on a Type.
type Accessor struct {
	// Name is the accessor name, unique across the owning Type and its
	// ancestors.
	Name string

	// Kind classifies the accessor.
	Kind Kind

	// Locator is invoked on dispatch.
	Locator Locator
}

// Type describes one logical page: its accessors, optional navigation
// handler, optional readiness check, and optional title expectation.
// Declaration is not safe for concurrent use; declare types during setup,
// before instances are constructed.
type Type struct {
	name      string
	parent    *Type
	accessors map[string]*Accessor
	order     []string
	undefined map[string]struct{}

	navigate  func(driver.Driver) error
	readiness *readinessCheck
	title     *titleExpectation

	activityProbe string
}

type readinessCheck struct {
	element string
	timeout time.Duration
}

type titleExpectation struct {
	expected string
	matcher  glob.Glob
}

// NewType declares a new root page type. The background activity wait is
// installed on every freshly declared type, including roots.
func NewType(name string) *Type {
	t := &Type{
		name:      name,
		accessors: make(map[string]*Accessor),
		undefined: make(map[string]struct{}),
	}
	t.installActivityWait()
	return t
}

// Extend declares a subtype of t. The subtype resolves accessors through t's
// chain and receives its own, freshly generated background activity wait;
// sibling subtypes never share one.
func (t *Type) Extend(name string) *Type {
	sub := &Type{
		name:      name,
		parent:    t,
		accessors: make(map[string]*Accessor),
		undefined: make(map[string]struct{}),
	}
	sub.installActivityWait()
	return sub
}

// Name returns the type's declared name.
func (t *Type) Name() string {
	return t.name
}

// Parent returns the type this type extends, or nil for a root type.
func (t *Type) Parent() *Type {
	return t.parent
}

// register is the single entry point for accessor declaration. Every naming
// variant routes through it and is subject to the uniqueness invariant:
// the name must not already resolve on this type or any ancestor.
func (t *Type) register(name string, kind Kind, fn Locator) error {
	if name == "" {
		return fmt.Errorf("accessor name is required")
	}
	if fn == nil {
		return fmt.Errorf("accessor %q requires a locator", name)
	}
	if owner := t.resolveOwner(name); owner != nil {
		return &DuplicateDefinitionError{Name: name, Type: owner.name}
	}

	t.accessors[name] = &Accessor{Name: name, Kind: kind, Locator: fn}
	t.order = append(t.order, name)
	return nil
}

// resolve looks up an accessor by name through the ancestor chain. A name
// tombstoned by Undefine stops resolution at that level unless the type
// redeclared it.
func (t *Type) resolve(name string) *Accessor {
	for cur := t; cur != nil; cur = cur.parent {
		if acc, ok := cur.accessors[name]; ok {
			return acc
		}
		if _, ok := cur.undefined[name]; ok {
			return nil
		}
	}
	return nil
}

// resolveOwner returns the type in the chain that declares name, or nil.
func (t *Type) resolveOwner(name string) *Type {
	for cur := t; cur != nil; cur = cur.parent {
		if _, ok := cur.accessors[name]; ok {
			return cur
		}
		if _, ok := cur.undefined[name]; ok {
			return nil
		}
	}
	return nil
}

// Element declares a named element accessor.
func (t *Type) Element(name string, fn Locator) error {
	return t.register(name, KindElement, fn)
}

// Action declares a named action accessor.
func (t *Type) Action(name string, fn Locator) error {
	return t.register(name, KindAction, fn)
}

// Value declares a named value accessor. Structurally identical to Element;
// the name exists for readability at the declaration site.
func (t *Type) Value(name string, fn Locator) error {
	return t.register(name, KindElement, fn)
}

// Elements is the plural alias of Element, for declarations that sit
// alongside grouped accessors.
func (t *Type) Elements(name string, fn Locator) error {
	return t.register(name, KindElement, fn)
}

// Actions is the plural alias of Action.
func (t *Type) Actions(name string, fn Locator) error {
	return t.register(name, KindAction, fn)
}

// Values is the plural alias of Value.
func (t *Type) Values(name string, fn Locator) error {
	return t.register(name, KindElement, fn)
}

// Undefine removes an inherited accessor name from this type's resolution
// set. The type is then free to redeclare the name. Undefining a name the
// type declares itself removes the declaration as well.
func (t *Type) Undefine(name string) {
	if _, ok := t.accessors[name]; ok {
		delete(t.accessors, name)
		for i, n := range t.order {
			if n == name {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
	}
	t.undefined[name] = struct{}{}
}

// Has reports whether name currently resolves on this type.
func (t *Type) Has(name string) bool {
	return t.resolve(name) != nil
}

// AccessorNames returns the names declared directly on this type, in
// declaration order.
func (t *Type) AccessorNames() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// LabelOption configures a Link or Button declaration.
type LabelOption func(*labelConfig)

type labelConfig struct {
	alias string
}

// WithAlias replaces the label-derived base name with an explicit one, used
// verbatim.
func WithAlias(alias string) LabelOption {
	return func(c *labelConfig) {
		c.alias = alias
	}
}

// Link declares two accessors for a link with the given visible text:
// "<base>_link" locating the link and "<base>" clicking it, where base is the
// snake-cased label unless an alias is given. Both declarations are subject
// to the uniqueness invariant.
func (t *Type) Link(label string, opts ...LabelOption) error {
	return t.labeled(label, "link", driver.Selector{Text: label}, opts)
}

// Button declares two accessors for a button with the given value attribute:
// "<base>_button" locating the button and "<base>" clicking it.
func (t *Type) Button(label string, opts ...LabelOption) error {
	return t.labeled(label, "button", driver.Selector{Value: label}, opts)
}

func (t *Type) labeled(label, suffix string, sel driver.Selector, opts []LabelOption) error {
	var cfg labelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	base := cfg.alias
	if base == "" {
		base = snakeCase(label)
	}
	if base == "" {
		return fmt.Errorf("label %q yields an empty accessor name; use WithAlias", label)
	}

	locate := func(drv driver.Driver, _ ...interface{}) (interface{}, error) {
		return drv.Find(sel)
	}
	if err := t.register(base+"_"+suffix, KindElement, locate); err != nil {
		return err
	}

	click := func(drv driver.Driver, _ ...interface{}) (interface{}, error) {
		el, err := drv.Find(sel)
		if err != nil {
			return nil, err
		}
		return nil, el.Click()
	}
	return t.register(base, KindAction, click)
}

// SetNavigation registers the navigation handler run when an instance is
// constructed with Visit.
func (t *Type) SetNavigation(fn func(driver.Driver) error) {
	t.navigate = fn
}

// NavigateTo registers a navigation handler that drives the browser to url.
func (t *Type) NavigateTo(url string) {
	t.navigate = func(drv driver.Driver) error {
		return drv.Goto(url)
	}
}

// ExpectElement registers the readiness check: construction blocks until the
// named accessor's element is present, bounded by DefaultTimeout.
func (t *Type) ExpectElement(name string) {
	t.ExpectElementWithin(name, DefaultTimeout)
}

// ExpectElementWithin registers the readiness check with an explicit bound.
func (t *Type) ExpectElementWithin(name string, timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t.readiness = &readinessCheck{element: name, timeout: timeout}
}

// ExpectTitle registers an exact-match title check run during construction.
func (t *Type) ExpectTitle(title string) {
	t.title = &titleExpectation{expected: title}
}

// ExpectTitleMatch registers a glob-pattern title check run during
// construction.
func (t *Type) ExpectTitleMatch(pattern string) error {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid title pattern %q: %w", pattern, err)
	}
	t.title = &titleExpectation{expected: pattern, matcher: matcher}
	return nil
}

// SetActivityProbe overrides the JavaScript expression the background
// activity wait polls. Subtypes without their own probe inherit it.
func (t *Type) SetActivityProbe(code string) {
	t.activityProbe = code
}

// probe returns the activity probe in effect for this type.
func (t *Type) probe() string {
	for cur := t; cur != nil; cur = cur.parent {
		if cur.activityProbe != "" {
			return cur.activityProbe
		}
	}
	return DefaultActivityProbe
}
