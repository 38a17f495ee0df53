package object

import (
	"fmt"
	"math"
	"math/big"
)

// Value is a language-level value: undefined, boolean, number, string,
// big integer, function, or object.
type Value interface {
	value()
}

// Undefined is the undefined value.
type Undefined struct{}

// Boolean is a boolean primitive.
type Boolean bool

// Number is a double-precision number primitive.
type Number float64

// String is a string primitive.
type String string

// BigInt is an arbitrary-precision integer primitive.
type BigInt struct {
	Int *big.Int
}

// Func is a callable value. Methods looked up through the object model
// (iteration methods, accessors called as functions) are of this type.
type Func func(ctx *Context, this Value, args []Value) (Value, error)

func (Undefined) value() {}
func (Boolean) value()   {}
func (Number) value()    {}
func (String) value()    {}
func (BigInt) value()    {}
func (Func) value()      {}
func (*Object) value()   {}

// NewBigInt wraps v as a BigInt value.
func NewBigInt(v int64) BigInt {
	return BigInt{Int: big.NewInt(v)}
}

// IsUndefined reports whether v is absent or the undefined value.
func IsUndefined(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Undefined)
	return ok
}

// AsObject returns v as an object handle, or nil if v is not an object.
func AsObject(v Value) *Object {
	if o, ok := v.(*Object); ok {
		return o
	}
	return nil
}

// ToBoolean applies the standard truthiness rules.
func ToBoolean(v Value) bool {
	switch t := v.(type) {
	case nil, Undefined:
		return false
	case Boolean:
		return bool(t)
	case Number:
		return t != 0 && !math.IsNaN(float64(t))
	case String:
		return t != ""
	case BigInt:
		return t.Int.Sign() != 0
	default:
		return true
	}
}

// TypeName returns a short name for v's type, used in error details.
func TypeName(v Value) string {
	switch v.(type) {
	case nil, Undefined:
		return "undefined"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case BigInt:
		return "bigint"
	case Func:
		return "function"
	case *Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
