package object

import (
	"github.com/wippyai/js-runtime/errors"
)

// SymbolIterator is the property key under which an object exposes its
// iteration method. It stands in for the well-known @@iterator symbol of
// the full runtime's symbol registry.
const SymbolIterator = "@@iterator"

// GetIterationMethod returns obj's iteration method, or nil if the object
// is not iterable. A lookup failure propagates unchanged.
func GetIterationMethod(ctx *Context, obj *Object) (Func, error) {
	return GetMethod(ctx, obj, SymbolIterator)
}

// IterableToList fully drains an iteration of src into an ordered list.
// Any failure raised while draining propagates immediately; whatever the
// iterator already consumed from src stays consumed.
func IterableToList(ctx *Context, src *Object, method Func) ([]Value, error) {
	itVal, err := method(ctx, src, nil)
	if err != nil {
		return nil, err
	}
	it := AsObject(itVal)
	if it == nil {
		return nil, errors.TypeError(errors.PhaseGet, "iteration method returned %s, not an object", TypeName(itVal))
	}
	next, err := GetMethod(ctx, it, "next")
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, errors.TypeError(errors.PhaseGet, "iterator has no next method")
	}

	var values []Value
	for {
		resVal, err := next(ctx, it, nil)
		if err != nil {
			return nil, err
		}
		res := AsObject(resVal)
		if res == nil {
			return nil, errors.TypeError(errors.PhaseGet, "iterator result is %s, not an object", TypeName(resVal))
		}
		done, err := res.Get(ctx, "done")
		if err != nil {
			return nil, err
		}
		if ToBoolean(done) {
			return values, nil
		}
		v, err := res.Get(ctx, "value")
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

// NewArrayLike builds an ordinary object with indexed properties
// 0..len(values)-1, a "length" property, and an iteration method, the shape
// the constructor paths consume.
func NewArrayLike(realm *Realm, values ...Value) *Object {
	obj := New(realm.ObjectPrototype)
	for i, v := range values {
		obj.SetIndex(nil, int64(i), v)
	}
	obj.Set("length", Number(len(values)))
	obj.Set(SymbolIterator, Func(func(ctx *Context, this Value, args []Value) (Value, error) {
		pos := 0
		it := New(realm.ObjectPrototype)
		it.Set("next", Func(func(ctx *Context, _ Value, _ []Value) (Value, error) {
			res := New(realm.ObjectPrototype)
			if pos >= len(values) {
				res.Set("done", Boolean(true))
				res.Set("value", Undefined{})
				return res, nil
			}
			res.Set("done", Boolean(false))
			res.Set("value", values[pos])
			pos++
			return res, nil
		}))
		return it, nil
	}))
	return obj
}
