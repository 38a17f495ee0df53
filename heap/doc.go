// Package heap provides the data block primitive backing array buffers.
//
// A DataBlock is a distinct, mutable sequence of bytes created with a fixed
// size and every byte set to zero. Its size never changes for its lifetime.
// Scalar accessors use little-endian byte order and bounds-check every access;
// callers are expected to have validated offsets against the block size before
// issuing reads or writes in hot paths.
package heap
