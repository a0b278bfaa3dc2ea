// Package frame maintains the chain of call-frame records that generated
// code pushes for diagnostics.
//
// A Stack owns one current-frame slot. The slot points at the innermost
// live Frame, or is nil when no instrumented call is active. Each goroutine
// (or other logical execution context) owns its own Stack, usually carried
// in a context.Context, so no locking is involved.
//
// # Scoped Entry
//
// Enter pushes a frame and returns a release func that restores the slot to
// the value it held before the push. Deferring it covers every exit path,
// including early returns and panics:
//
//	func parse(ctx context.Context, src string) (err error) {
//		defer frame.Enter(ctx, "parse", "parser.nim", 42)()
//		...
//	}
//
// When the Stack is disabled or absent, Enter does nothing and returns a
// no-op release.
//
// # Diagnostics
//
// Walk, Traceback and Fields expose the chain to whatever renders stack
// traces or structured logs.
package frame
