package page

import "github.com/entrhq/pagewright/pkg/driver"

// Locator helpers for the common single-attribute lookups. Anything richer
// takes a driver.Selector through By.

// By builds a Locator from a full selector.
func By(sel driver.Selector) Locator {
	return func(drv driver.Driver, _ ...interface{}) (interface{}, error) {
		return drv.Find(sel)
	}
}

// ByID locates an element by id attribute.
func ByID(id string) Locator {
	return By(driver.Selector{ID: id})
}

// ByCSS locates an element by CSS selector.
func ByCSS(css string) Locator {
	return By(driver.Selector{CSS: css})
}

// ByXPath locates an element by XPath expression.
func ByXPath(xpath string) Locator {
	return By(driver.Selector{XPath: xpath})
}

// ByClass locates an element by CSS class name.
func ByClass(class string) Locator {
	return By(driver.Selector{Class: class})
}
