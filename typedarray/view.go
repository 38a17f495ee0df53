package typedarray

import (
	"go.uber.org/zap"

	jsruntime "github.com/wippyai/js-runtime"
	"github.com/wippyai/js-runtime/arraybuffer"
	"github.com/wippyai/js-runtime/errors"
	"github.com/wippyai/js-runtime/heap"
	"github.com/wippyai/js-runtime/object"
)

// View is the integer-indexed exotic object: a kind, a content type derived
// once from it, a prototype (held by the engine object), and, once attached,
// a buffer reference plus byte offset/length and logical element count.
//
// A view is created unattached with every size field zero and transitions
// exactly once to attached. There is no re-attachment and no detachment at
// this layer; detachment belongs to the buffer and is only observed here.
type View struct {
	kind    Kind
	content ContentType

	obj    *object.Object
	buffer jsruntime.BufferLike
	bufObj *object.Object

	byteOffset  int64
	byteLength  int64
	arrayLength int64
	attached    bool
}

// newView creates an unattached view wired to a fresh engine object with the
// given prototype. The produced surface (buffer, byteOffset, byteLength,
// length) is exposed as accessor properties for prototype-level consumers.
func newView(proto *object.Object, kind Kind) *View {
	v := &View{kind: kind, content: kind.Content()}
	obj := object.NewExotic(proto, v)
	obj.SetGetter("length", func(*object.Context) (object.Value, error) {
		return object.Number(v.arrayLength), nil
	})
	obj.SetGetter("byteLength", func(*object.Context) (object.Value, error) {
		return object.Number(v.byteLength), nil
	})
	obj.SetGetter("byteOffset", func(*object.Context) (object.Value, error) {
		return object.Number(v.byteOffset), nil
	})
	obj.SetGetter("buffer", func(*object.Context) (object.Value, error) {
		if v.bufObj == nil {
			return object.Undefined{}, nil
		}
		return v.bufObj, nil
	})
	v.obj = obj
	return v
}

// ViewOf returns the view behind o, or nil if o is not a typed-array object.
func ViewOf(o *object.Object) *View {
	if o == nil {
		return nil
	}
	v, _ := o.Impl().(*View)
	return v
}

// Kind returns the view's element kind.
func (v *View) Kind() Kind { return v.kind }

// Content returns the view's content type, fixed at creation.
func (v *View) Content() ContentType { return v.content }

// Object returns the engine object this view backs.
func (v *View) Object() *object.Object { return v.obj }

// Attached reports whether the view has been bound to a buffer.
func (v *View) Attached() bool { return v.attached }

// Buffer returns the backing buffer, nil while unattached.
func (v *View) Buffer() jsruntime.BufferLike { return v.buffer }

// ByteOffset returns the view's offset into its buffer in bytes.
func (v *View) ByteOffset() int64 { return v.byteOffset }

// ByteLength returns the view's length in bytes.
func (v *View) ByteLength() int64 { return v.byteLength }

// ArrayLength returns the view's logical element count.
func (v *View) ArrayLength() int64 { return v.arrayLength }

// attachFresh allocates an exclusively owned buffer for length elements and
// binds the view to it. Fails with a range error when the byte length
// overflows the platform limit.
func (v *View) attachFresh(ctx *object.Context, length int64) error {
	if v.attached {
		return errors.TypeError(errors.PhaseAttach, "%s view is already attached", v.kind)
	}
	size := v.kind.Size()
	if length < 0 || length > heap.MaxByteLength/size {
		return errors.RangeError(errors.PhaseAttach, "invalid %s length %d", v.kind, length)
	}
	byteLength := size * length
	buf, err := arraybuffer.Allocate(ctx, byteLength)
	if err != nil {
		return err
	}
	v.buffer = buf
	v.bufObj = buf.Object()
	v.byteOffset = 0
	v.byteLength = byteLength
	v.arrayLength = length
	v.attached = true
	Logger().Debug("attached fresh buffer",
		zap.Stringer("kind", v.kind),
		zap.Int64("arrayLength", length),
		zap.Int64("byteLength", byteLength))
	return nil
}

// attachOver binds the view over a slice of a caller-supplied buffer, which
// stays externally owned and shared. The buffer's non-detached status is
// checked at the moment of the call.
func (v *View) attachOver(buf jsruntime.BufferLike, bufObj *object.Object, byteOffset, arrayLength int64) error {
	if v.attached {
		return errors.TypeError(errors.PhaseAttach, "%s view is already attached", v.kind)
	}
	size := v.kind.Size()
	if byteOffset < 0 || byteOffset%size != 0 {
		return errors.Misaligned(errors.PhaseAttach, byteOffset, size)
	}
	if arrayLength < 0 || arrayLength > heap.MaxByteLength/size {
		return errors.RangeError(errors.PhaseAttach, "invalid %s length %d", v.kind, arrayLength)
	}
	if buf.Detached() {
		return errors.DetachedBuffer(errors.PhaseAttach)
	}
	byteLength := arrayLength * size
	if byteOffset+byteLength > buf.ByteLength() {
		return errors.OutOfBounds(errors.PhaseAttach, byteOffset, byteLength, buf.ByteLength())
	}
	v.buffer = buf
	v.bufObj = bufObj
	v.byteOffset = byteOffset
	v.byteLength = byteLength
	v.arrayLength = arrayLength
	v.attached = true
	Logger().Debug("attached over shared buffer",
		zap.Stringer("kind", v.kind),
		zap.Int64("byteOffset", byteOffset),
		zap.Int64("arrayLength", arrayLength))
	return nil
}

// block re-validates the buffer and returns the backing data block. It is
// called immediately before every byte access; user code observed between
// two accesses may have detached the buffer in the meantime.
func (v *View) block(phase errors.Phase) (*heap.DataBlock, error) {
	if !v.attached {
		return nil, errors.TypeError(phase, "%s view is not attached", v.kind)
	}
	if v.buffer.Detached() {
		return nil, errors.DetachedBuffer(phase)
	}
	return v.buffer.Block(), nil
}

// GetElement reads the element at idx. Out-of-range indices yield undefined;
// access through a detached buffer is a type error.
func (v *View) GetElement(ctx *object.Context, idx int64) (object.Value, error) {
	if !v.attached || idx < 0 || idx >= v.arrayLength {
		if v.attached && v.buffer.Detached() {
			return nil, errors.DetachedBuffer(errors.PhaseGet)
		}
		return object.Undefined{}, nil
	}
	block, err := v.block(errors.PhaseGet)
	if err != nil {
		return nil, err
	}
	return readElement(block, v.kind, v.byteOffset+idx*v.kind.Size())
}

// SetElement converts val with the kind's write conversion and stores it at
// idx. The conversion runs before the bounds check, so conversion failures
// surface even for out-of-range writes; an in-range write re-validates the
// buffer immediately before touching bytes.
func (v *View) SetElement(ctx *object.Context, idx int64, val object.Value) error {
	if !v.attached {
		return errors.TypeError(errors.PhaseGet, "%s view is not attached", v.kind)
	}
	block, err := v.block(errors.PhaseGet)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= v.arrayLength {
		// Conversion failure modes still apply for out-of-range writes.
		_, err := convertElement(v.kind, val)
		return err
	}
	return writeElement(block, v.kind, v.byteOffset+idx*v.kind.Size(), val)
}

// Class implements object.Impl.
func (v *View) Class() string {
	return v.kind.String()
}

// GetIndex implements object.Impl: canonical indices bypass the ordinary
// property table entirely.
func (v *View) GetIndex(ctx *object.Context, idx int64) (object.Value, bool, error) {
	val, err := v.GetElement(ctx, idx)
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// SetIndex implements object.Impl.
func (v *View) SetIndex(ctx *object.Context, idx int64, val object.Value) (bool, error) {
	if err := v.SetElement(ctx, idx, val); err != nil {
		return false, err
	}
	return true, nil
}
