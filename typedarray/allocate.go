package typedarray

import (
	"github.com/wippyai/js-runtime/errors"
	"github.com/wippyai/js-runtime/object"
)

// LengthAbsent marks the optional length parameter of Allocate as missing:
// the view is returned unattached for a later single attach step.
const LengthAbsent = int64(-1)

// Allocate validates and creates a typed-array instance for kind.
//
// The prototype is resolved from newTarget's "prototype" property; a lookup
// failure propagates unchanged, and a non-object result falls back to
// defaultProto. When length is present the view also gets a fresh,
// exclusively owned buffer of the matching byte length.
func Allocate(ctx *object.Context, kind Kind, newTarget *object.Object, defaultProto func() *object.Object, length int64) (*object.Object, error) {
	if newTarget == nil {
		return nil, errors.MissingNewTarget(kind.String())
	}
	protoVal, err := newTarget.Get(ctx, "prototype")
	if err != nil {
		return nil, err
	}
	proto := object.AsObject(protoVal)
	if proto == nil {
		proto = defaultProto()
	}

	view := newView(proto, kind)
	if length != LengthAbsent {
		if err := view.attachFresh(ctx, length); err != nil {
			return nil, err
		}
	}
	return view.obj, nil
}

// DefaultPrototype returns the realm's intrinsic prototype for kind.
func DefaultPrototype(ctx *object.Context, kind Kind) *object.Object {
	return ctx.Realm.Prototype(kind.String())
}

// IntrinsicConstructor returns the realm's construction target for kind: an
// object whose "prototype" property is the kind's intrinsic prototype.
// Hosts pass it as newTarget when no script-provided target exists.
func IntrinsicConstructor(ctx *object.Context, kind Kind) *object.Object {
	c := ctx.Realm.Prototype(kind.String() + " constructor")
	c.Set("prototype", DefaultPrototype(ctx, kind))
	return c
}
