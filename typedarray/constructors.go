package typedarray

import (
	"github.com/wippyai/js-runtime/object"
)

// The eleven externally visible constructor entry points. Each binds its
// kind and delegates to the shared parameterized algorithm.

// ConstructInt8Array implements the Int8Array constructor.
func ConstructInt8Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, Int8, newTarget, args)
}

// ConstructUint8Array implements the Uint8Array constructor.
func ConstructUint8Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, Uint8, newTarget, args)
}

// ConstructUint8ClampedArray implements the Uint8ClampedArray constructor.
func ConstructUint8ClampedArray(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, Uint8Clamped, newTarget, args)
}

// ConstructInt16Array implements the Int16Array constructor.
func ConstructInt16Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, Int16, newTarget, args)
}

// ConstructUint16Array implements the Uint16Array constructor.
func ConstructUint16Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, Uint16, newTarget, args)
}

// ConstructInt32Array implements the Int32Array constructor.
func ConstructInt32Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, Int32, newTarget, args)
}

// ConstructUint32Array implements the Uint32Array constructor.
func ConstructUint32Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, Uint32, newTarget, args)
}

// ConstructFloat32Array implements the Float32Array constructor.
func ConstructFloat32Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, Float32, newTarget, args)
}

// ConstructFloat64Array implements the Float64Array constructor.
func ConstructFloat64Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, Float64, newTarget, args)
}

// ConstructBigInt64Array implements the BigInt64Array constructor.
func ConstructBigInt64Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, BigInt64, newTarget, args)
}

// ConstructBigUint64Array implements the BigUint64Array constructor.
func ConstructBigUint64Array(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	return Construct(ctx, BigUint64, newTarget, args)
}

// Entry returns the entry point bound to kind.
func Entry(kind Kind) func(*object.Context, *object.Object, []object.Value) (*object.Object, error) {
	return func(ctx *object.Context, newTarget *object.Object, args []object.Value) (*object.Object, error) {
		return Construct(ctx, kind, newTarget, args)
	}
}
