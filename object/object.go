package object

import (
	"strconv"

	"github.com/wippyai/js-runtime/errors"
)

// Getter computes a property value on access. Getters may re-enter the
// runtime; callers must not cache state across a getter call.
type Getter func(ctx *Context) (Value, error)

// Impl is the exotic-behavior capability of an object. An object that
// carries an Impl routes canonical integer-indexed access to it instead of
// the ordinary property table.
type Impl interface {
	// Class returns the object's class name ("ArrayBuffer", "Int8Array", ...).
	Class() string

	// GetIndex handles an indexed read. handled reports whether the access
	// was claimed by the exotic behavior; if false, lookup falls through to
	// the ordinary property table.
	GetIndex(ctx *Context, idx int64) (v Value, handled bool, err error)

	// SetIndex handles an indexed write, with the same fall-through contract.
	SetIndex(ctx *Context, idx int64, v Value) (handled bool, err error)
}

// Object is an engine object: a prototype reference, a property table,
// optional accessor properties, and an optional exotic capability.
type Object struct {
	proto   *Object
	props   map[string]Value
	getters map[string]Getter
	keys    []string
	impl    Impl
}

// New creates an ordinary object with the given prototype.
func New(proto *Object) *Object {
	return &Object{proto: proto}
}

// NewExotic creates an object whose indexed access is served by impl.
func NewExotic(proto *Object, impl Impl) *Object {
	return &Object{proto: proto, impl: impl}
}

// Proto returns the object's prototype, which may be nil.
func (o *Object) Proto() *Object {
	return o.proto
}

// Impl returns the exotic capability, or nil for an ordinary object.
func (o *Object) Impl() Impl {
	return o.impl
}

// Class returns the exotic class name, or "Object" for ordinary objects.
func (o *Object) Class() string {
	if o.impl != nil {
		return o.impl.Class()
	}
	return "Object"
}

// Set defines or overwrites a data property.
func (o *Object) Set(name string, v Value) {
	if o.props == nil {
		o.props = make(map[string]Value)
	}
	if _, exists := o.props[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.props[name] = v
}

// SetGetter defines an accessor property computed on every access.
func (o *Object) SetGetter(name string, g Getter) {
	if o.getters == nil {
		o.getters = make(map[string]Getter)
	}
	o.getters[name] = g
}

// Keys returns the object's own data property names in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Has reports whether name is a data or accessor property on o or its
// prototype chain, without invoking getters. Exotic indexed elements are
// not consulted; an in-range exotic read never produces undefined.
func (o *Object) Has(name string) bool {
	for cur := o; cur != nil; cur = cur.proto {
		if _, ok := cur.getters[name]; ok {
			return true
		}
		if _, ok := cur.props[name]; ok {
			return true
		}
	}
	return false
}

// Get resolves a property through exotic dispatch, own accessors, own data
// properties, and finally the prototype chain. A getter failure propagates
// unchanged.
func (o *Object) Get(ctx *Context, name string) (Value, error) {
	if o.impl != nil {
		if idx, ok := canonicalIndex(name); ok {
			v, handled, err := o.impl.GetIndex(ctx, idx)
			if err != nil {
				return nil, err
			}
			if handled {
				return v, nil
			}
		}
	}
	for cur := o; cur != nil; cur = cur.proto {
		if g, ok := cur.getters[name]; ok {
			return g(ctx)
		}
		if v, ok := cur.props[name]; ok {
			return v, nil
		}
	}
	return Undefined{}, nil
}

// GetIndex resolves an integer-indexed property.
func (o *Object) GetIndex(ctx *Context, idx int64) (Value, error) {
	return o.Get(ctx, strconv.FormatInt(idx, 10))
}

// SetIndex writes an integer-indexed property, honoring exotic dispatch.
func (o *Object) SetIndex(ctx *Context, idx int64, v Value) error {
	if o.impl != nil {
		handled, err := o.impl.SetIndex(ctx, idx, v)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}
	o.Set(strconv.FormatInt(idx, 10), v)
	return nil
}

// canonicalIndex parses name as a canonical non-negative integer index.
// Names like "01" or "1e2" are ordinary property names, not indices.
func canonicalIndex(name string) (int64, bool) {
	if name == "" || name == "-0" {
		return 0, false
	}
	if len(name) > 1 && name[0] == '0' {
		return 0, false
	}
	idx, err := strconv.ParseInt(name, 10, 64)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// GetMethod looks up name on obj and requires the result to be callable.
// An undefined or missing property yields (nil, nil).
func GetMethod(ctx *Context, obj *Object, name string) (Func, error) {
	v, err := obj.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if IsUndefined(v) {
		return nil, nil
	}
	fn, ok := v.(Func)
	if !ok {
		return nil, errors.TypeError(errors.PhaseGet, "property %q is not callable (got %s)", name, TypeName(v))
	}
	return fn, nil
}
