package jsruntime

import "github.com/wippyai/js-runtime/heap"

// BufferLike is implemented by engine objects that expose raw byte storage:
// a byte length, the backing data block, and a detachment flag. The
// typed-array constructor accepts any such object as a backing buffer.
//
// Block returns nil once the buffer is detached; callers re-check Detached
// at the moment of every access rather than caching the block.
type BufferLike interface {
	ByteLength() int64
	Block() *heap.DataBlock
	Detached() bool
}
