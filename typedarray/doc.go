// Package typedarray implements the integer-indexed exotic object and the
// multi-path construction algorithm behind the eleven typed-array
// constructors.
//
// A View is created unattached (kind and content type fixed, every size
// field zero) and transitions exactly once to attached, either over a fresh
// buffer sized from a requested length or over a slice of a caller-supplied
// buffer. The construction algorithm is one parameterized routine; the
// per-kind entry points only bind the kind.
//
// Failure ordering inside construction is a contract: which check fires
// first is observable to script, so the steps here follow the dispatch
// order exactly and never reorder validation for convenience.
package typedarray
