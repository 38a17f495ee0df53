package arraybuffer

import (
	"go.uber.org/zap"

	"github.com/wippyai/js-runtime/errors"
	"github.com/wippyai/js-runtime/heap"
	"github.com/wippyai/js-runtime/object"
)

// PrototypeName is the intrinsic prototype key for array buffer objects.
const PrototypeName = "ArrayBuffer"

// Buffer is an array buffer: an engine object owning a data block. It is
// the exotic capability of its engine object and satisfies the runtime's
// BufferLike facade.
type Buffer struct {
	block    *heap.DataBlock
	obj      *object.Object
	detached bool
}

// Allocate creates a fresh buffer of byteLength zero bytes wired to a new
// engine object rooted at the realm's ArrayBuffer prototype.
func Allocate(ctx *object.Context, byteLength int64) (*Buffer, error) {
	block, err := heap.Create(byteLength)
	if err != nil {
		return nil, err
	}
	b := &Buffer{block: block}
	obj := object.NewExotic(ctx.Realm.Prototype(PrototypeName), b)
	obj.SetGetter("byteLength", func(*object.Context) (object.Value, error) {
		if b.detached {
			return nil, errors.DetachedBuffer(errors.PhaseGet)
		}
		return object.Number(b.block.Size()), nil
	})
	b.obj = obj
	Logger().Debug("allocated array buffer", zap.Int64("byteLength", byteLength))
	return b, nil
}

// FromObject returns the buffer behind o, or nil if o is not a buffer object.
func FromObject(o *object.Object) *Buffer {
	if o == nil {
		return nil
	}
	b, _ := o.Impl().(*Buffer)
	return b
}

// Object returns the engine object this buffer backs.
func (b *Buffer) Object() *object.Object {
	return b.obj
}

// Block returns the backing data block, which is nil once detached.
func (b *Buffer) Block() *heap.DataBlock {
	return b.block
}

// ByteLength returns the buffer's byte length, 0 once detached.
func (b *Buffer) ByteLength() int64 {
	if b.detached {
		return 0
	}
	return b.block.Size()
}

// Bytes returns the raw backing storage, nil once detached.
func (b *Buffer) Bytes() []byte {
	if b.detached {
		return nil
	}
	return b.block.Bytes()
}

// Detached reports whether the backing storage has been released.
func (b *Buffer) Detached() bool {
	return b.detached
}

// Detach releases the backing storage. Every view over this buffer treats
// further access as a type error. Detaching twice is a no-op.
func (b *Buffer) Detach() {
	if b.detached {
		return
	}
	b.detached = true
	b.block = nil
	Logger().Debug("detached array buffer")
}

// Class implements object.Impl.
func (b *Buffer) Class() string {
	return "ArrayBuffer"
}

// GetIndex implements object.Impl. Buffers have no indexed elements; access
// falls through to the ordinary property table.
func (b *Buffer) GetIndex(ctx *object.Context, idx int64) (object.Value, bool, error) {
	return nil, false, nil
}

// SetIndex implements object.Impl.
func (b *Buffer) SetIndex(ctx *object.Context, idx int64, v object.Value) (bool, error) {
	return false, nil
}
