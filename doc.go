// Package jsruntime provides the typed-array object model and allocation
// subsystem of a JavaScript runtime.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	jsruntime/          Root package with the BufferLike facade interface
//	├── heap/           Fixed-size zero-initialized data blocks
//	├── object/         Minimal object model: values, prototypes, iteration, coercions
//	├── arraybuffer/    Array buffer objects over data blocks, with detachment
//	├── typedarray/     Element kinds, integer-indexed views, allocation, construction
//	├── handle/         Object handle table for embedding hosts
//	└── errors/         Structured error types mapping to TypeError/RangeError
//
// # Quick Start
//
// Construct a view the way a script-level `new Int32Array(...)` would:
//
//	ctx := object.NewContext()
//	target := typedarray.IntrinsicConstructor(ctx, typedarray.Int32)
//	obj, err := typedarray.ConstructInt32Array(ctx, target, []object.Value{object.Number(4)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	view := typedarray.ViewOf(obj)
//	fmt.Println(view.ArrayLength()) // 4
//
// # Execution Model
//
// Execution is single-threaded and cooperative. Property reads and iteration
// can re-enter user-observable code, so the copy paths re-validate the source
// buffer's detached status before every byte access instead of caching a
// snapshot. Failure propagation is strictly first-failure-wins: no layer
// catches or masks a collaborator's error.
package jsruntime
