package typedarray

import (
	"math"
	"math/big"

	"github.com/wippyai/js-runtime/errors"
	"github.com/wippyai/js-runtime/heap"
	"github.com/wippyai/js-runtime/object"
)

// Element codecs: the standard per-kind write conversion applied whenever a
// value is stored, and the read producing a Number or BigInt value. Copies
// between views of different kinds go through the target kind's write
// conversion; there is no identity byte copy across kinds.

var uint64Mask = new(big.Int).SetUint64(math.MaxUint64)

// toIntegral truncates v toward zero after number conversion.
// NaN and infinities collapse to 0, matching the modulo conversions.
func toIntegral(v object.Value) (float64, error) {
	n, err := object.ToNumber(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, nil
	}
	return math.Trunc(n), nil
}

func toUint64Bits(v object.Value) (uint64, error) {
	n, err := toIntegral(v)
	if err != nil {
		return 0, err
	}
	// Reduce to the 2^64 residue, then convert through the signed range:
	// a float64 cannot represent 2^64-adjacent values exactly, and a
	// float-to-uint64 conversion of an out-of-range value is
	// implementation-defined. int64 two's complement carries the low bits
	// exactly.
	n = math.Mod(n, 1<<64)
	if n >= 1<<63 {
		n -= 1 << 64
	} else if n < -(1 << 63) {
		n += 1 << 64
	}
	return uint64(int64(n)), nil
}

func toBigIntBits(v object.Value) (uint64, error) {
	b, ok := v.(object.BigInt)
	if !ok {
		return 0, errors.TypeError(errors.PhaseConvert, "cannot convert %s to a bigint", object.TypeName(v))
	}
	return new(big.Int).And(b.Int, uint64Mask).Uint64(), nil
}

func toUint8Clamped(v object.Value) (uint8, error) {
	n, err := object.ToNumber(v)
	if err != nil {
		return 0, err
	}
	switch {
	case math.IsNaN(n) || n <= 0:
		return 0, nil
	case n >= 255:
		return 255, nil
	default:
		return uint8(math.RoundToEven(n)), nil
	}
}

// convertElement applies kind's standard write conversion and returns the
// element's bit pattern in the low bits. It is the single source of the
// per-kind conversion, so its failure modes apply identically whether or
// not a store follows.
func convertElement(kind Kind, v object.Value) (uint64, error) {
	switch kind {
	case Uint8Clamped:
		b, err := toUint8Clamped(v)
		return uint64(b), err
	case Float32:
		n, err := object.ToNumber(v)
		return uint64(math.Float32bits(float32(n))), err
	case Float64:
		n, err := object.ToNumber(v)
		return math.Float64bits(n), err
	case BigInt64, BigUint64:
		return toBigIntBits(v)
	default:
		return toUint64Bits(v)
	}
}

// writeElement converts v with kind's standard write conversion and stores
// it at byteOffset. The conversion runs before the store, so a conversion
// failure leaves the block untouched.
func writeElement(block *heap.DataBlock, kind Kind, byteOffset int64, v object.Value) error {
	bits, err := convertElement(kind, v)
	if err != nil {
		return err
	}
	switch kind.Size() {
	case 1:
		return block.WriteU8(byteOffset, uint8(bits))
	case 2:
		return block.WriteU16(byteOffset, uint16(bits))
	case 4:
		return block.WriteU32(byteOffset, uint32(bits))
	default:
		return block.WriteU64(byteOffset, bits)
	}
}

// zeroElement stores kind's zero-equivalent value without any conversion.
// Used for missing indices in the array-like path.
func zeroElement(block *heap.DataBlock, kind Kind, byteOffset int64) error {
	switch kind.Size() {
	case 1:
		return block.WriteU8(byteOffset, 0)
	case 2:
		return block.WriteU16(byteOffset, 0)
	case 4:
		return block.WriteU32(byteOffset, 0)
	default:
		return block.WriteU64(byteOffset, 0)
	}
}

// readElement loads the element at byteOffset as a language value.
func readElement(block *heap.DataBlock, kind Kind, byteOffset int64) (object.Value, error) {
	switch kind {
	case Int8:
		b, err := block.ReadU8(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.Number(int8(b)), nil
	case Uint8, Uint8Clamped:
		b, err := block.ReadU8(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.Number(b), nil
	case Int16:
		b, err := block.ReadU16(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.Number(int16(b)), nil
	case Uint16:
		b, err := block.ReadU16(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.Number(b), nil
	case Int32:
		b, err := block.ReadU32(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.Number(int32(b)), nil
	case Uint32:
		b, err := block.ReadU32(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.Number(b), nil
	case Float32:
		f, err := block.ReadF32(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.Number(float64(f)), nil
	case Float64:
		f, err := block.ReadF64(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.Number(f), nil
	case BigInt64:
		b, err := block.ReadU64(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.BigInt{Int: big.NewInt(int64(b))}, nil
	case BigUint64:
		b, err := block.ReadU64(byteOffset)
		if err != nil {
			return nil, err
		}
		return object.BigInt{Int: new(big.Int).SetUint64(b)}, nil
	default:
		return nil, errors.TypeError(errors.PhaseConvert, "unknown element kind %d", kind)
	}
}
