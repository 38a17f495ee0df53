// Package handle provides the object handle table an embedding host uses to
// reference engine objects.
//
// Handles are opaque integers; handle 0 is reserved and always invalid.
// Dropped handles are recycled through a free list. The engine itself is
// single-threaded, but a host may hold the table from its own goroutines,
// so the table is internally synchronized.
//
//	table := handle.NewTable()
//	h := table.Insert(obj)
//	obj, ok := table.Get(h)
//	table.Remove(h)
package handle
