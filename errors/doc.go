// Package errors provides structured error types for the js-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). KindTypeError and KindRangeError correspond to the TypeError and
// RangeError classes the embedding host surfaces to script code; KindAllocation
// marks a failed data block allocation.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAttach, errors.KindRangeError).
//		Path("Int16Array", "byteOffset").
//		Detail("offset 3 is not a multiple of element size 2").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DetachedBuffer(errors.PhaseGet)
//	err := errors.Misaligned(errors.PhaseAttach, 3, 2)
//
// All errors implement the standard error interface and support errors.Is/As.
// Propagation is first-failure-wins throughout the runtime: no layer catches
// or masks an error from a collaborator.
package errors
