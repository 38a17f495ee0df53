package handle

import (
	"errors"
	"sync"

	"github.com/wippyai/js-runtime/object"
)

// ErrClosed is returned when inserting into a closed table.
var ErrClosed = errors.New("handle table closed")

// Handle is an opaque reference to an engine object held by the host.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Table maps handles to engine objects. Dropped slots are recycled.
type Table struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	obj   *object.Object
	valid bool
}

// NewTable creates an empty handle table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Insert stores an object and returns its handle.
func (t *Table) Insert(obj *object.Object) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrClosed
	}

	e := entry{obj: obj, valid: true}
	if len(t.freeList) > 0 {
		h := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[h-1] = e
		return h, nil
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries)), nil
}

// Get retrieves an object by handle.
func (t *Table) Get(h Handle) (*object.Object, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := h - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}
	e := t.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.obj, true
}

// GetClass retrieves an object by handle only if its class matches.
func (t *Table) GetClass(h Handle, class string) (*object.Object, bool) {
	obj, ok := t.Get(h)
	if !ok || obj.Class() != class {
		return nil, false
	}
	return obj, true
}

// Remove drops a handle and returns (object, true) if it was live.
func (t *Table) Remove(h Handle) (*object.Object, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := h - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}
	e := &t.entries[idx]
	if !e.valid {
		return nil, false
	}

	obj := e.obj
	e.valid = false
	e.obj = nil
	t.freeList = append(t.freeList, h)
	return obj, true
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all live handles in allocation order.
func (t *Table) Each(fn func(Handle, *object.Object) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(Handle(i+1), e.obj) {
				break
			}
		}
	}
}

// Close drops every handle and stops accepting inserts.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	t.entries = nil
	t.freeList = nil
	return nil
}
