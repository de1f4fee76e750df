package page

import (
	"fmt"
	"reflect"

	"github.com/entrhq/pagewright/pkg/driver"
)

// Call invokes the named accessor with the page's driver handle plus args.
// Resolution walks the Type's ancestor chain; a name that does not resolve is
// forwarded verbatim to the driver handle and the driver's result is returned
// unchanged.
func (p *Page) Call(name string, args ...interface{}) (interface{}, error) {
	if acc := p.typ.resolve(name); acc != nil {
		return acc.Locator(p.drv, args...)
	}
	return forward(p.drv, name, args...)
}

// forward hands an unresolved accessor call to the driver. Drivers that
// implement driver.Caller receive the call directly; otherwise the driver
// value is called through reflection, first by the verbatim name and then by
// its exported form.
func forward(drv driver.Driver, name string, args ...interface{}) (interface{}, error) {
	if c, ok := drv.(driver.Caller); ok {
		return c.Call(name, args...)
	}

	rv := reflect.ValueOf(drv)
	method := rv.MethodByName(name)
	if !method.IsValid() {
		method = rv.MethodByName(exportedName(name))
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("no accessor or driver method named %q", name)
	}

	in, err := forwardArgs(method.Type(), name, args)
	if err != nil {
		return nil, err
	}

	return forwardResults(method.Call(in))
}

// forwardArgs adapts caller arguments to the method's parameter types.
func forwardArgs(mt reflect.Type, name string, args []interface{}) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%q takes at least %d arguments, got %d", name, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%q takes %d arguments, got %d", name, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if i < fixed {
			want = mt.In(i)
		} else {
			want = mt.In(fixed).Elem()
		}

		if arg == nil {
			in[i] = reflect.Zero(want)
			continue
		}

		av := reflect.ValueOf(arg)
		switch {
		case av.Type().AssignableTo(want):
			in[i] = av
		case av.Type().ConvertibleTo(want):
			in[i] = av.Convert(want)
		default:
			return nil, fmt.Errorf("argument %d of %q: cannot use %T", i, name, arg)
		}
	}
	return in, nil
}

// forwardResults maps a reflected return list onto (result, error), splitting
// off a trailing error value when present.
func forwardResults(out []reflect.Value) (interface{}, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		results := make([]interface{}, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results, err
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()
