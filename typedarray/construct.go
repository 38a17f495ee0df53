package typedarray

import (
	"strconv"

	"go.uber.org/zap"

	jsruntime "github.com/wippyai/js-runtime"
	"github.com/wippyai/js-runtime/errors"
	"github.com/wippyai/js-runtime/object"
)

// Construct is the parameterized constructor algorithm shared by all eleven
// typed-array constructors. newTarget nil denotes invocation without a
// construction target. The step order is a correctness contract: which
// check fires first is observable.
func Construct(ctx *object.Context, kind Kind, newTarget *object.Object, args []object.Value) (*object.Object, error) {
	if newTarget == nil {
		return nil, errors.MissingNewTarget(kind.String())
	}
	defaultProto := func() *object.Object { return DefaultPrototype(ctx, kind) }

	if len(args) == 0 {
		return Allocate(ctx, kind, newTarget, defaultProto, 0)
	}

	first := args[0]
	firstObj := object.AsObject(first)
	if firstObj == nil {
		length, err := object.ToIndex(first)
		if err != nil {
			return nil, err
		}
		return Allocate(ctx, kind, newTarget, defaultProto, length)
	}

	handle, err := Allocate(ctx, kind, newTarget, defaultProto, LengthAbsent)
	if err != nil {
		return nil, err
	}
	view := ViewOf(handle)

	switch impl := firstObj.Impl().(type) {
	case *View:
		err = initFromTypedArray(ctx, view, impl)
	case jsruntime.BufferLike:
		err = initFromBuffer(ctx, view, impl, firstObj, args)
	default:
		err = initFromObject(ctx, view, firstObj)
	}
	if err != nil {
		return nil, err
	}

	Logger().Debug("constructed view",
		zap.Stringer("kind", kind),
		zap.Int64("arrayLength", view.arrayLength))
	return handle, nil
}

// initFromTypedArray copies every logical element of src into a freshly
// allocated buffer, converting through the target kind's write conversion.
// Content types must match exactly; there is no implicit cross-content-type
// conversion.
func initFromTypedArray(ctx *object.Context, dst, src *View) error {
	if src.content != dst.content {
		return errors.ContentTypeMismatch(src.kind.String(), dst.kind.String())
	}
	if err := dst.attachFresh(ctx, src.arrayLength); err != nil {
		return err
	}
	for i := int64(0); i < src.arrayLength; i++ {
		// Source detachment is re-validated on every element read.
		v, err := src.GetElement(ctx, i)
		if err != nil {
			return err
		}
		if err := dst.SetElement(ctx, i, v); err != nil {
			return err
		}
	}
	return nil
}

// initFromBuffer attaches the view over a caller-supplied buffer, reading
// the optional byteOffset and length arguments.
func initFromBuffer(ctx *object.Context, view *View, buf jsruntime.BufferLike, bufObj *object.Object, args []object.Value) error {
	size := view.kind.Size()

	var byteOffset int64
	if len(args) > 1 {
		var err error
		byteOffset, err = object.ToIndex(args[1])
		if err != nil {
			return err
		}
	}
	if byteOffset%size != 0 {
		return errors.Misaligned(errors.PhaseConstruct, byteOffset, size)
	}

	var arrayLength int64
	if len(args) > 2 && !object.IsUndefined(args[2]) {
		var err error
		arrayLength, err = object.ToIndex(args[2])
		if err != nil {
			return err
		}
	} else {
		remaining := buf.ByteLength() - byteOffset
		if remaining < 0 {
			return errors.OutOfBounds(errors.PhaseConstruct, byteOffset, 0, buf.ByteLength())
		}
		if remaining%size != 0 {
			return errors.RangeError(errors.PhaseConstruct,
				"buffer length %d minus offset %d is not a multiple of element size %d",
				buf.ByteLength(), byteOffset, size)
		}
		arrayLength = remaining / size
	}

	return view.attachOver(buf, bufObj, byteOffset, arrayLength)
}

// initFromObject initializes the view from an iterable or array-like source.
func initFromObject(ctx *object.Context, view *View, src *object.Object) error {
	method, err := object.GetIterationMethod(ctx, src)
	if err != nil {
		return err
	}
	if method != nil {
		return initFromIterable(ctx, view, src, method)
	}
	return initFromArrayLike(ctx, view, src)
}

// initFromIterable fully drains the iteration into an ordered list before
// sizing the buffer. A failure while draining aborts construction; whatever
// the iterator already consumed stays consumed.
func initFromIterable(ctx *object.Context, view *View, src *object.Object, method object.Func) error {
	values, err := object.IterableToList(ctx, src, method)
	if err != nil {
		return err
	}
	if err := view.attachFresh(ctx, int64(len(values))); err != nil {
		return err
	}
	for i, v := range values {
		if err := view.SetElement(ctx, int64(i), v); err != nil {
			return err
		}
	}
	return nil
}

// initFromArrayLike sizes the view from the source's "length" property and
// copies indexed properties through ordinary reads. A missing index is a
// true hole and stores the kind's zero-equivalent value without conversion;
// a present value, undefined included, goes through the kind's write
// conversion. Any read or conversion failure propagates immediately.
func initFromArrayLike(ctx *object.Context, view *View, src *object.Object) error {
	lenVal, err := src.Get(ctx, "length")
	if err != nil {
		return err
	}
	length, err := object.ToArrayLength(lenVal)
	if err != nil {
		return err
	}
	if err := view.attachFresh(ctx, length); err != nil {
		return err
	}
	for i := int64(0); i < length; i++ {
		v, err := src.GetIndex(ctx, i)
		if err != nil {
			return err
		}
		if object.IsUndefined(v) && !src.Has(strconv.FormatInt(i, 10)) {
			block, err := view.block(errors.PhaseConstruct)
			if err != nil {
				return err
			}
			if err := zeroElement(block, view.kind, view.byteOffset+i*view.kind.Size()); err != nil {
				return err
			}
			continue
		}
		if err := view.SetElement(ctx, int64(i), v); err != nil {
			return err
		}
	}
	return nil
}
