package typedarray

import (
	"testing"

	"github.com/wippyai/js-runtime/arraybuffer"
	"github.com/wippyai/js-runtime/errors"
	"github.com/wippyai/js-runtime/heap"
	"github.com/wippyai/js-runtime/object"
)

func TestNewView_Unattached(t *testing.T) {
	ctx := object.NewContext()

	v := newView(DefaultPrototype(ctx, Int16), Int16)
	if v.Attached() {
		t.Fatal("fresh view must be unattached")
	}
	if v.Kind() != Int16 || v.Content() != ContentNumber {
		t.Fatalf("kind/content = %v/%v", v.Kind(), v.Content())
	}
	if v.ByteOffset() != 0 || v.ByteLength() != 0 || v.ArrayLength() != 0 {
		t.Fatal("size fields must be zero while unattached")
	}
	if v.Buffer() != nil {
		t.Fatal("unattached view has no buffer")
	}
	if v.Object().Class() != "Int16Array" {
		t.Fatalf("Class = %q", v.Object().Class())
	}
}

func TestAttachFresh(t *testing.T) {
	ctx := object.NewContext()

	v := newView(DefaultPrototype(ctx, Int32), Int32)
	if err := v.attachFresh(ctx, 3); err != nil {
		t.Fatalf("attachFresh failed: %v", err)
	}
	if !v.Attached() {
		t.Fatal("view should be attached")
	}
	if v.ByteLength() != 12 || v.ArrayLength() != 3 || v.ByteOffset() != 0 {
		t.Fatalf("fields = offset %d, byteLength %d, length %d",
			v.ByteOffset(), v.ByteLength(), v.ArrayLength())
	}
	for _, c := range v.Buffer().Block().Bytes() {
		if c != 0 {
			t.Fatal("fresh buffer must be zeroed")
		}
	}

	// Single forward transition only.
	if err := v.attachFresh(ctx, 1); err == nil {
		t.Fatal("second attach must fail")
	}
}

func TestAttachFresh_Overflow(t *testing.T) {
	ctx := object.NewContext()

	for _, kind := range Kinds() {
		v := newView(DefaultPrototype(ctx, kind), kind)
		err := v.attachFresh(ctx, heap.MaxByteLength/kind.Size()+1)
		if !errors.IsKind(err, errors.KindRangeError) {
			t.Errorf("%s: expected range error, got %v", kind, err)
		}
		if v.Attached() {
			t.Errorf("%s: failed attach must leave the view unattached", kind)
		}
	}
}

func TestAttachFresh_NegativeLength(t *testing.T) {
	ctx := object.NewContext()

	v := newView(DefaultPrototype(ctx, Uint8), Uint8)
	if err := v.attachFresh(ctx, -1); !errors.IsKind(err, errors.KindRangeError) {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestAttachOver(t *testing.T) {
	ctx := object.NewContext()

	buf, err := arraybuffer.Allocate(ctx, 10)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	v := newView(DefaultPrototype(ctx, Uint8), Uint8)
	if err := v.attachOver(buf, buf.Object(), 2, 3); err != nil {
		t.Fatalf("attachOver failed: %v", err)
	}
	if v.ByteOffset() != 2 || v.ArrayLength() != 3 || v.ByteLength() != 3 {
		t.Fatalf("fields = offset %d, byteLength %d, length %d",
			v.ByteOffset(), v.ByteLength(), v.ArrayLength())
	}
	if v.Buffer() != buf {
		t.Fatal("view should share the supplied buffer")
	}
}

func TestAttachOver_Validation(t *testing.T) {
	ctx := object.NewContext()

	tests := []struct {
		name        string
		kind        Kind
		byteOffset  int64
		arrayLength int64
		errKind     errors.Kind
	}{
		{"misaligned offset", Int16, 1, 2, errors.KindRangeError},
		{"negative offset", Int16, -2, 2, errors.KindRangeError},
		{"negative length", Int16, 0, -1, errors.KindRangeError},
		{"past end", Int16, 8, 2, errors.KindRangeError},
		{"offset past end", Uint8, 11, 0, errors.KindRangeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := arraybuffer.Allocate(ctx, 10)
			if err != nil {
				t.Fatalf("Allocate failed: %v", err)
			}
			v := newView(DefaultPrototype(ctx, tt.kind), tt.kind)
			err = v.attachOver(buf, buf.Object(), tt.byteOffset, tt.arrayLength)
			if !errors.IsKind(err, tt.errKind) {
				t.Fatalf("expected %s, got %v", tt.errKind, err)
			}
		})
	}
}

func TestAttachOver_Detached(t *testing.T) {
	ctx := object.NewContext()

	buf, err := arraybuffer.Allocate(ctx, 8)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	buf.Detach()

	v := newView(DefaultPrototype(ctx, Uint8), Uint8)
	if err := v.attachOver(buf, buf.Object(), 0, 4); !errors.IsKind(err, errors.KindTypeError) {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestElementAccess(t *testing.T) {
	ctx := object.NewContext()

	v := newView(DefaultPrototype(ctx, Int16), Int16)
	if err := v.attachFresh(ctx, 4); err != nil {
		t.Fatalf("attachFresh failed: %v", err)
	}

	if err := v.SetElement(ctx, 2, object.Number(-300)); err != nil {
		t.Fatalf("SetElement failed: %v", err)
	}
	got, err := v.GetElement(ctx, 2)
	if err != nil || got != object.Number(-300) {
		t.Fatalf("GetElement = %v, %v", got, err)
	}

	// Out-of-range reads yield undefined, not an error.
	got, err = v.GetElement(ctx, 9)
	if err != nil || !object.IsUndefined(got) {
		t.Fatalf("out-of-range read = %v, %v", got, err)
	}

	// Out-of-range writes still run the conversion.
	if err := v.SetElement(ctx, 9, object.NewBigInt(1)); !errors.IsKind(err, errors.KindTypeError) {
		t.Fatalf("out-of-range bigint write: expected type error, got %v", err)
	}
	if err := v.SetElement(ctx, 9, object.Number(5)); err != nil {
		t.Fatalf("out-of-range numeric write should be ignored, got %v", err)
	}
}

func TestSetElement_OutOfRangeConversionFailures(t *testing.T) {
	ctx := object.NewContext()

	// The write conversion is shared with the storing path, so its failure
	// modes are identical whether or not the index is in range.
	tests := []struct {
		name string
		kind Kind
		val  object.Value
	}{
		{"bigint into clamped", Uint8Clamped, object.NewBigInt(1)},
		{"bigint into float", Float64, object.NewBigInt(1)},
		{"number into bigint", BigInt64, object.Number(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newView(DefaultPrototype(ctx, tt.kind), tt.kind)
			if err := v.attachFresh(ctx, 1); err != nil {
				t.Fatalf("attachFresh failed: %v", err)
			}
			err := v.SetElement(ctx, 5, tt.val)
			if !errors.IsKind(err, errors.KindTypeError) {
				t.Fatalf("expected type error, got %v", err)
			}
		})
	}
}

func TestElementAccess_DetachedMidUse(t *testing.T) {
	ctx := object.NewContext()

	buf, err := arraybuffer.Allocate(ctx, 4)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	v := newView(DefaultPrototype(ctx, Uint8), Uint8)
	if err := v.attachOver(buf, buf.Object(), 0, 4); err != nil {
		t.Fatalf("attachOver failed: %v", err)
	}
	if err := v.SetElement(ctx, 0, object.Number(1)); err != nil {
		t.Fatalf("SetElement failed: %v", err)
	}

	buf.Detach()

	if _, err := v.GetElement(ctx, 0); !errors.IsKind(err, errors.KindTypeError) {
		t.Fatalf("read through detached buffer: expected type error, got %v", err)
	}
	if err := v.SetElement(ctx, 0, object.Number(2)); !errors.IsKind(err, errors.KindTypeError) {
		t.Fatalf("write through detached buffer: expected type error, got %v", err)
	}
}

func TestView_ProducedSurface(t *testing.T) {
	ctx := object.NewContext()

	v := newView(DefaultPrototype(ctx, Int32), Int32)
	if err := v.attachFresh(ctx, 2); err != nil {
		t.Fatalf("attachFresh failed: %v", err)
	}

	obj := v.Object()
	checks := map[string]object.Value{
		"length":     object.Number(2),
		"byteLength": object.Number(8),
		"byteOffset": object.Number(0),
	}
	for name, want := range checks {
		got, err := obj.Get(ctx, name)
		if err != nil || got != want {
			t.Errorf("%s = %v, %v; want %v", name, got, err, want)
		}
	}

	bufVal, err := obj.Get(ctx, "buffer")
	if err != nil {
		t.Fatalf("buffer getter failed: %v", err)
	}
	if object.AsObject(bufVal) == nil || object.AsObject(bufVal).Class() != "ArrayBuffer" {
		t.Fatalf("buffer = %v", bufVal)
	}

	// Indexed access goes through the exotic capability.
	if err := obj.SetIndex(ctx, 1, object.Number(7)); err != nil {
		t.Fatalf("SetIndex failed: %v", err)
	}
	got, err := obj.Get(ctx, "1")
	if err != nil || got != object.Number(7) {
		t.Fatalf("indexed read = %v, %v", got, err)
	}
}

func TestViewOf(t *testing.T) {
	ctx := object.NewContext()

	v := newView(DefaultPrototype(ctx, Uint8), Uint8)
	if ViewOf(v.Object()) != v {
		t.Fatal("ViewOf should recover the view")
	}
	if ViewOf(object.New(nil)) != nil {
		t.Fatal("ViewOf on ordinary object should be nil")
	}
	if ViewOf(nil) != nil {
		t.Fatal("ViewOf(nil) should be nil")
	}
}
