// Package errors provides structured error types for the rtbase ABI layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the target identity, a field path, the offending value
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfigure, errors.KindUnknownTarget).
//		Target("sparc-solaris-suncc").
//		Detail("no rule matches toolchain %q", "suncc").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownTarget("sparc-solaris")
//	err := errors.OutOfBounds(errors.PhaseLayout, path, 10, 5)
//
// Most failures of this layer are build-time configuration errors: resolving a
// target, validating width assumptions or looking up a conversion primitive.
// All errors implement the standard error interface and support errors.Is/As.
package errors
