// Package suite loads declarative page suites from YAML. A suite file names
// pages with their navigation URL, readiness element, title expectation, and
// accessor declarations; Load turns each entry into a page.Type so tests and
// the CLI can drive pages without writing declaration code.
package suite

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/pagewright/pkg/driver"
	"github.com/entrhq/pagewright/pkg/page"
)

// Config is the root of a suite file.
type Config struct {
	// Pages are built in file order. A page extending another must come
	// after the page it extends.
	Pages []PageConfig `yaml:"pages"`
}

// PageConfig declares one page type.
type PageConfig struct {
	// Name identifies the page within the suite.
	Name string `yaml:"name"`

	// Extends names an earlier page in the file to inherit accessors from.
	Extends string `yaml:"extends"`

	// URL registers a navigation handler pointing at this address.
	URL string `yaml:"url"`

	// Title registers an exact title check.
	Title string `yaml:"title"`

	// TitlePattern registers a glob title check. Mutually exclusive with
	// Title.
	TitlePattern string `yaml:"title_pattern"`

	// Ready names the element accessor the readiness check waits on.
	Ready string `yaml:"ready"`

	// ReadyTimeout bounds the readiness wait (Go duration string,
	// e.g. "10s"). Defaults to the page package default.
	ReadyTimeout string `yaml:"ready_timeout"`

	// ActivityProbe overrides the background activity probe expression.
	ActivityProbe string `yaml:"activity_probe"`

	// Elements declares element accessors keyed by name.
	Elements map[string]SelectorConfig `yaml:"elements"`

	// Values declares value accessors keyed by name.
	Values map[string]SelectorConfig `yaml:"values"`

	// Links declares link accessor pairs by visible text.
	Links []LabelConfig `yaml:"links"`

	// Buttons declares button accessor pairs by value attribute.
	Buttons []LabelConfig `yaml:"buttons"`
}

// SelectorConfig mirrors driver.Selector for YAML declaration.
type SelectorConfig struct {
	ID    string `yaml:"id"`
	CSS   string `yaml:"css"`
	XPath string `yaml:"xpath"`
	Class string `yaml:"class"`
	Text  string `yaml:"text"`
	Value string `yaml:"value"`
	Index int    `yaml:"index"`
}

// LabelConfig declares a link or button by its visible label, with an
// optional explicit accessor base name.
type LabelConfig struct {
	Label string `yaml:"label"`
	Alias string `yaml:"alias"`
}

// Suite is a set of built page types, retrievable by name in file order.
type Suite struct {
	types map[string]*page.Type
	order []string
}

// Load reads and builds a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("suite file %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a suite from raw YAML.
func Parse(data []byte) (*Suite, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid suite YAML: %w", err)
	}
	return Build(config)
}

// Build turns a parsed config into page types.
func Build(config Config) (*Suite, error) {
	s := &Suite{types: make(map[string]*page.Type)}

	for _, pc := range config.Pages {
		if pc.Name == "" {
			return nil, fmt.Errorf("page entry without a name")
		}
		if _, exists := s.types[pc.Name]; exists {
			return nil, fmt.Errorf("page %q declared twice", pc.Name)
		}

		t, err := s.buildType(pc)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", pc.Name, err)
		}

		s.types[pc.Name] = t
		s.order = append(s.order, pc.Name)
	}

	return s, nil
}

// Page returns the built type for a page name.
func (s *Suite) Page(name string) (*page.Type, bool) {
	t, ok := s.types[name]
	return t, ok
}

// Names returns the page names in file order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

func (s *Suite) buildType(pc PageConfig) (*page.Type, error) {
	var t *page.Type
	if pc.Extends != "" {
		parent, ok := s.types[pc.Extends]
		if !ok {
			return nil, fmt.Errorf("extends unknown page %q", pc.Extends)
		}
		t = parent.Extend(pc.Name)
	} else {
		t = page.NewType(pc.Name)
	}

	if pc.URL != "" {
		t.NavigateTo(pc.URL)
	}

	if pc.Title != "" && pc.TitlePattern != "" {
		return nil, fmt.Errorf("title and title_pattern are mutually exclusive")
	}
	if pc.Title != "" {
		t.ExpectTitle(pc.Title)
	}
	if pc.TitlePattern != "" {
		if err := t.ExpectTitleMatch(pc.TitlePattern); err != nil {
			return nil, err
		}
	}

	if pc.ActivityProbe != "" {
		t.SetActivityProbe(pc.ActivityProbe)
	}

	for name, sc := range pc.Elements {
		sel, err := sc.selector(name)
		if err != nil {
			return nil, err
		}
		if err := t.Element(name, page.By(sel)); err != nil {
			return nil, err
		}
	}

	for name, sc := range pc.Values {
		sel, err := sc.selector(name)
		if err != nil {
			return nil, err
		}
		if err := t.Value(name, page.By(sel)); err != nil {
			return nil, err
		}
	}

	for _, lc := range pc.Links {
		if err := t.Link(lc.Label, lc.options()...); err != nil {
			return nil, err
		}
	}

	for _, lc := range pc.Buttons {
		if err := t.Button(lc.Label, lc.options()...); err != nil {
			return nil, err
		}
	}

	// Readiness is registered last so it may reference any declared element,
	// but the referenced name must exist somewhere in the chain.
	if pc.Ready != "" {
		if !t.Has(pc.Ready) {
			return nil, fmt.Errorf("ready element %q is not declared", pc.Ready)
		}
		timeout := time.Duration(0)
		if pc.ReadyTimeout != "" {
			d, err := time.ParseDuration(pc.ReadyTimeout)
			if err != nil {
				return nil, fmt.Errorf("invalid ready_timeout %q: %w", pc.ReadyTimeout, err)
			}
			timeout = d
		}
		t.ExpectElementWithin(pc.Ready, timeout)
	}

	return t, nil
}

func (sc SelectorConfig) selector(name string) (driver.Selector, error) {
	sel := driver.Selector{
		ID:    sc.ID,
		CSS:   sc.CSS,
		XPath: sc.XPath,
		Class: sc.Class,
		Text:  sc.Text,
		Value: sc.Value,
		Index: sc.Index,
	}
	if sel.IsZero() {
		return driver.Selector{}, fmt.Errorf("element %q needs a selector attribute", name)
	}
	return sel, nil
}

func (lc LabelConfig) options() []page.LabelOption {
	if lc.Alias == "" {
		return nil
	}
	return []page.LabelOption{page.WithAlias(lc.Alias)}
}
