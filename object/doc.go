// Package object provides the minimal object model the typed-array core
// consumes: values, objects with prototype chains and accessor properties,
// the iterator protocol, and the numeric coercions used for lengths and
// offsets.
//
// Exotic behavior (indexed access that bypasses the ordinary property table)
// is modeled as a capability: an Object may carry an Impl, and property
// access dispatches to it polymorphically. Typed-array views and array
// buffers install themselves as the Impl of their engine object.
//
// Every operation that can observe or run script-visible behavior takes an
// explicit *Context; there is no ambient global state. Execution is
// single-threaded and cooperative: a property getter may re-enter the
// runtime (construct further objects, detach buffers), strictly
// sequentially.
package object
