package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseAlloc     Phase = "alloc"     // data block and view allocation
	PhaseAttach    Phase = "attach"    // binding a view to a buffer
	PhaseConstruct Phase = "construct" // constructor dispatch
	PhaseConvert   Phase = "convert"   // value coercion
	PhaseGet       Phase = "get"       // property access
)

// Kind categorizes the error. KindTypeError and KindRangeError mirror the
// language-level error classes a host maps these to.
type Kind string

const (
	KindTypeError  Kind = "type_error"
	KindRangeError Kind = "range_error"
	KindAllocation Kind = "allocation"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is an *Error of the given kind, regardless of phase.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeError creates a type error
func TypeError(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindTypeError,
		Detail: detail,
	}
}

// RangeError creates a range error
func RangeError(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindRangeError,
		Detail: detail,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(size int64) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("cannot allocate data block of %d bytes", size),
		Value:  size,
	}
}

// DetachedBuffer creates a type error for access through a detached buffer
func DetachedBuffer(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeError,
		Detail: "buffer is detached",
	}
}

// MissingNewTarget creates a type error for a constructor invoked as a plain function
func MissingNewTarget(name string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindTypeError,
		Detail: fmt.Sprintf("constructor %s requires 'new'", name),
	}
}

// ContentTypeMismatch creates a type error for a cross-content-type copy
func ContentTypeMismatch(src, dst string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindTypeError,
		Detail: fmt.Sprintf("cannot initialize %s view from %s source", dst, src),
	}
}

// OutOfBounds creates a range error for an offset/length outside a buffer
func OutOfBounds(phase Phase, offset, length, byteLength int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRangeError,
		Detail: fmt.Sprintf("offset %d with length %d is outside buffer of %d bytes", offset, length, byteLength),
	}
}

// Misaligned creates a range error for an offset not on an element boundary
func Misaligned(phase Phase, offset, elementSize int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRangeError,
		Detail: fmt.Sprintf("offset %d is not a multiple of element size %d", offset, elementSize),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
