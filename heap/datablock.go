package heap

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/js-runtime/errors"
)

// MaxByteLength is the largest data block this runtime will allocate.
// Requests above it fail the same way an exhausted allocator would.
const MaxByteLength = math.MaxInt32

// DataBlock is a fixed-size, zero-initialized byte store. Multiple views may
// read the same block; the block itself never grows or shrinks.
type DataBlock struct {
	data []byte
}

// Create allocates a DataBlock of exactly size zero bytes.
// It fails with an allocation error if size is negative or exceeds MaxByteLength.
func Create(size int64) (*DataBlock, error) {
	if size < 0 || size > MaxByteLength {
		return nil, errors.AllocationFailed(size)
	}
	return &DataBlock{data: make([]byte, size)}, nil
}

// Size returns the block size in bytes.
func (b *DataBlock) Size() int64 {
	return int64(len(b.data))
}

// Bytes returns the underlying storage. Callers must not resize it.
func (b *DataBlock) Bytes() []byte {
	return b.data
}

func (b *DataBlock) check(offset, n int64) error {
	if offset < 0 || offset+n > int64(len(b.data)) {
		return errors.New(errors.PhaseGet, errors.KindRangeError).
			Detail("access of %d bytes at offset %d is outside block of %d bytes", n, offset, len(b.data)).
			Build()
	}
	return nil
}

// ReadU8 reads an unsigned 8-bit value.
func (b *DataBlock) ReadU8(offset int64) (uint8, error) {
	if err := b.check(offset, 1); err != nil {
		return 0, err
	}
	return b.data[offset], nil
}

// WriteU8 writes an unsigned 8-bit value.
func (b *DataBlock) WriteU8(offset int64, v uint8) error {
	if err := b.check(offset, 1); err != nil {
		return err
	}
	b.data[offset] = v
	return nil
}

// ReadU16 reads an unsigned 16-bit little-endian value.
func (b *DataBlock) ReadU16(offset int64) (uint16, error) {
	if err := b.check(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b.data[offset:]), nil
}

// WriteU16 writes an unsigned 16-bit little-endian value.
func (b *DataBlock) WriteU16(offset int64, v uint16) error {
	if err := b.check(offset, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b.data[offset:], v)
	return nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (b *DataBlock) ReadU32(offset int64) (uint32, error) {
	if err := b.check(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b.data[offset:]), nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (b *DataBlock) WriteU32(offset int64, v uint32) error {
	if err := b.check(offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.data[offset:], v)
	return nil
}

// ReadU64 reads an unsigned 64-bit little-endian value.
func (b *DataBlock) ReadU64(offset int64) (uint64, error) {
	if err := b.check(offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b.data[offset:]), nil
}

// WriteU64 writes an unsigned 64-bit little-endian value.
func (b *DataBlock) WriteU64(offset int64, v uint64) error {
	if err := b.check(offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b.data[offset:], v)
	return nil
}

// ReadF32 reads a 32-bit IEEE 754 value.
func (b *DataBlock) ReadF32(offset int64) (float32, error) {
	v, err := b.ReadU32(offset)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// WriteF32 writes a 32-bit IEEE 754 value.
func (b *DataBlock) WriteF32(offset int64, v float32) error {
	return b.WriteU32(offset, math.Float32bits(v))
}

// ReadF64 reads a 64-bit IEEE 754 value.
func (b *DataBlock) ReadF64(offset int64) (float64, error) {
	v, err := b.ReadU64(offset)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// WriteF64 writes a 64-bit IEEE 754 value.
func (b *DataBlock) WriteF64(offset int64, v float64) error {
	return b.WriteU64(offset, math.Float64bits(v))
}
