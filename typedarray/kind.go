package typedarray

// Kind identifies one of the eleven element representations a view can hold.
type Kind uint8

const (
	Int8 Kind = iota
	Uint8
	Uint8Clamped
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
	BigInt64
	BigUint64
)

// ContentType distinguishes kinds whose elements are ordinary numbers from
// the two kinds holding big integers. The two never convert implicitly.
type ContentType uint8

const (
	ContentNumber ContentType = iota
	ContentBigInt
)

var kindNames = [...]string{
	Int8:         "Int8Array",
	Uint8:        "Uint8Array",
	Uint8Clamped: "Uint8ClampedArray",
	Int16:        "Int16Array",
	Uint16:       "Uint16Array",
	Int32:        "Int32Array",
	Uint32:       "Uint32Array",
	Float32:      "Float32Array",
	Float64:      "Float64Array",
	BigInt64:     "BigInt64Array",
	BigUint64:    "BigUint64Array",
}

var kindSizes = [...]int64{
	Int8:         1,
	Uint8:        1,
	Uint8Clamped: 1,
	Int16:        2,
	Uint16:       2,
	Int32:        4,
	Uint32:       4,
	Float32:      4,
	Float64:      8,
	BigInt64:     8,
	BigUint64:    8,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Size returns the element size in bytes: 1, 2, 4, or 8.
func (k Kind) Size() int64 {
	return kindSizes[k]
}

// Content returns the kind's content type.
func (k Kind) Content() ContentType {
	if k == BigInt64 || k == BigUint64 {
		return ContentBigInt
	}
	return ContentNumber
}

func (c ContentType) String() string {
	if c == ContentBigInt {
		return "bigint"
	}
	return "number"
}

// Kinds lists every element kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		Int8, Uint8, Uint8Clamped,
		Int16, Uint16,
		Int32, Uint32,
		Float32, Float64,
		BigInt64, BigUint64,
	}
}
