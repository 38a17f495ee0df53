package arraybuffer

import (
	"testing"

	"github.com/wippyai/js-runtime/errors"
	"github.com/wippyai/js-runtime/object"
)

func TestAllocate(t *testing.T) {
	ctx := object.NewContext()

	buf, err := Allocate(ctx, 16)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if buf.ByteLength() != 16 {
		t.Fatalf("ByteLength = %d, want 16", buf.ByteLength())
	}
	for i, c := range buf.Bytes() {
		if c != 0 {
			t.Fatalf("byte %d not zero: %d", i, c)
		}
	}
	if buf.Detached() {
		t.Fatal("fresh buffer must not be detached")
	}
	if buf.Object().Class() != "ArrayBuffer" {
		t.Fatalf("Class = %q", buf.Object().Class())
	}
	if buf.Object().Proto() != ctx.Realm.Prototype(PrototypeName) {
		t.Fatal("buffer object should use the ArrayBuffer intrinsic prototype")
	}
}

func TestAllocate_Invalid(t *testing.T) {
	ctx := object.NewContext()

	_, err := Allocate(ctx, -1)
	if !errors.IsKind(err, errors.KindAllocation) {
		t.Fatalf("expected allocation error, got %v", err)
	}
}

func TestByteLengthGetter(t *testing.T) {
	ctx := object.NewContext()

	buf, err := Allocate(ctx, 8)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	v, err := buf.Object().Get(ctx, "byteLength")
	if err != nil || v != object.Number(8) {
		t.Fatalf("byteLength = %v, %v", v, err)
	}

	buf.Detach()
	_, err = buf.Object().Get(ctx, "byteLength")
	if !errors.IsKind(err, errors.KindTypeError) {
		t.Fatalf("byteLength on detached buffer: expected type error, got %v", err)
	}
}

func TestDetach(t *testing.T) {
	ctx := object.NewContext()

	buf, err := Allocate(ctx, 8)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	buf.Detach()
	if !buf.Detached() {
		t.Fatal("Detached should report true")
	}
	if buf.ByteLength() != 0 {
		t.Fatalf("detached ByteLength = %d, want 0", buf.ByteLength())
	}
	if buf.Bytes() != nil {
		t.Fatal("detached Bytes should be nil")
	}
	if buf.Block() != nil {
		t.Fatal("detached Block should be nil")
	}

	// Idempotent.
	buf.Detach()
	if !buf.Detached() {
		t.Fatal("second Detach must keep the buffer detached")
	}
}

func TestFromObject(t *testing.T) {
	ctx := object.NewContext()

	buf, err := Allocate(ctx, 4)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if FromObject(buf.Object()) != buf {
		t.Fatal("FromObject should recover the buffer")
	}
	if FromObject(object.New(nil)) != nil {
		t.Fatal("FromObject on ordinary object should be nil")
	}
	if FromObject(nil) != nil {
		t.Fatal("FromObject(nil) should be nil")
	}
}
