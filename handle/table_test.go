package handle

import (
	"testing"

	"github.com/wippyai/js-runtime/object"
	"github.com/wippyai/js-runtime/typedarray"
)

func TestTable_InsertGet(t *testing.T) {
	tbl := NewTable()

	obj := object.New(nil)
	h, err := tbl.Insert(obj)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if h == 0 {
		t.Fatal("handle 0 is reserved")
	}

	got, ok := tbl.Get(h)
	if !ok || got != obj {
		t.Fatalf("Get = %v, %v", got, ok)
	}

	if _, ok := tbl.Get(0); ok {
		t.Fatal("handle 0 must never resolve")
	}
	if _, ok := tbl.Get(h + 100); ok {
		t.Fatal("unknown handle must not resolve")
	}
}

func TestTable_GetClass(t *testing.T) {
	ctx := object.NewContext()
	tbl := NewTable()

	view, err := typedarray.Construct(ctx, typedarray.Int32,
		typedarray.IntrinsicConstructor(ctx, typedarray.Int32),
		[]object.Value{object.Number(2)})
	if err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	h, err := tbl.Insert(view)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if _, ok := tbl.GetClass(h, "Int32Array"); !ok {
		t.Fatal("GetClass with matching class should resolve")
	}
	if _, ok := tbl.GetClass(h, "Float64Array"); ok {
		t.Fatal("GetClass with wrong class must not resolve")
	}
}

func TestTable_Remove(t *testing.T) {
	tbl := NewTable()

	obj := object.New(nil)
	h, _ := tbl.Insert(obj)

	got, ok := tbl.Remove(h)
	if !ok || got != obj {
		t.Fatalf("Remove = %v, %v", got, ok)
	}
	if _, ok := tbl.Get(h); ok {
		t.Fatal("removed handle must not resolve")
	}
	if _, ok := tbl.Remove(h); ok {
		t.Fatal("double remove must report not-live")
	}
}

func TestTable_FreeListReuse(t *testing.T) {
	tbl := NewTable()

	h1, _ := tbl.Insert(object.New(nil))
	h2, _ := tbl.Insert(object.New(nil))
	tbl.Remove(h1)

	h3, _ := tbl.Insert(object.New(nil))
	if h3 != h1 {
		t.Fatalf("expected recycled handle %d, got %d", h1, h3)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}
	_ = h2
}

func TestTable_Each(t *testing.T) {
	tbl := NewTable()

	objs := make(map[Handle]*object.Object)
	for i := 0; i < 3; i++ {
		obj := object.New(nil)
		h, _ := tbl.Insert(obj)
		objs[h] = obj
	}
	h2 := Handle(2)
	tbl.Remove(h2)

	seen := 0
	tbl.Each(func(h Handle, obj *object.Object) bool {
		if h == h2 {
			t.Error("Each visited a removed handle")
		}
		if objs[h] != obj {
			t.Errorf("handle %d resolved to wrong object", h)
		}
		seen++
		return true
	})
	if seen != 2 {
		t.Fatalf("Each visited %d handles, want 2", seen)
	}

	// Early stop.
	seen = 0
	tbl.Each(func(Handle, *object.Object) bool {
		seen++
		return false
	})
	if seen != 1 {
		t.Fatalf("Each after stop visited %d handles, want 1", seen)
	}
}

func TestTable_Close(t *testing.T) {
	tbl := NewTable()

	h, _ := tbl.Insert(object.New(nil))
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, ok := tbl.Get(h); ok {
		t.Fatal("handles must not survive Close")
	}
	if _, err := tbl.Insert(object.New(nil)); err != ErrClosed {
		t.Fatalf("Insert after Close = %v, want ErrClosed", err)
	}
	if err := tbl.Close(); err != nil {
		t.Fatalf("second Close = %v", err)
	}
}
