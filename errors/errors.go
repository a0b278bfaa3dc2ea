package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfigure Phase = "configure" // target identity and profile loading
	PhaseResolve   Phase = "resolve"   // calling convention and numeric resolution
	PhaseLayout    Phase = "layout"    // dynamic buffer representation
	PhaseConvert   Phase = "convert"   // float to int fast path
	PhaseFrame     Phase = "frame"     // call-frame chain maintenance
	PhaseEmit      Phase = "emit"      // header generation
	PhaseLoad      Phase = "load"      // config file loading
	PhaseRuntime   Phase = "runtime"   // linear memory operations
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownTarget      Kind = "unknown_target"
	KindUnsupportedWidth   Kind = "unsupported_width"
	KindMissingPrimitive   Kind = "missing_primitive"
	KindInvariantViolated  Kind = "invariant_violated"
	KindOutOfBounds        Kind = "out_of_bounds"
	KindOutOfRange         Kind = "out_of_range"
	KindAllocation         Kind = "allocation"
	KindInvalidInput       Kind = "invalid_input"
	KindInvalidData        Kind = "invalid_data"
	KindNotFound           Kind = "not_found"
	KindUnbalancedFrame    Kind = "unbalanced_frame"
	KindNotInitialized     Kind = "not_initialized"
	KindUnsupportedElement Kind = "unsupported_element"
)

// Error is the structured error type used throughout rtbase
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Target string
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

	if e.Target != "" {
		b.WriteString(" (target ")
		b.WriteString(e.Target)
		b.WriteByte(')')
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

// Target sets the target identity the error refers to
func (b *Builder) Target(t string) *Builder {
	b.err.Target = t
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

// UnknownTarget creates an unrecognized target platform error
func UnknownTarget(target string) *Error {
	return &Error{
		Phase:  PhaseConfigure,
		Kind:   KindUnknownTarget,
		Target: target,
		Detail: "unrecognized target platform",
	}
}

// UnsupportedWidth creates a width assumption failure
func UnsupportedWidth(target, what string, want, got int) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindUnsupportedWidth,
		Target: target,
		Path:   []string{what},
		Detail: fmt.Sprintf("expected %d bytes, toolchain provides %d", want, got),
		Value:  got,
	}
}

// MissingPrimitive creates an error for a native primitive the target lacks
func MissingPrimitive(target, primitive string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindMissingPrimitive,
		Target: target,
		Detail: fmt.Sprintf("native primitive %q not available", primitive),
	}
}

// InvariantViolated creates an error for a broken representation invariant
func InvariantViolated(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvariantViolated,
		Path:   path,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// OutOfRange creates an error for a value outside a documented safe range
func OutOfRange(phase Phase, value any, lo, hi any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("value %v outside safe range [%v, %v]", value, lo, hi),
		Value:  value,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// NotInitialized creates a not-initialized error for a missing collaborator
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a configuration loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}
