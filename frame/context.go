package frame

import "context"

type stackKey struct{}

// WithStack returns a context carrying s. A nil s is replaced with a new
// enabled Stack.
func WithStack(ctx context.Context, s *Stack) context.Context {
	if s == nil {
		s = NewStack()
	}
	return context.WithValue(ctx, stackKey{}, s)
}

// FromContext returns the Stack carried by ctx, or nil.
func FromContext(ctx context.Context) *Stack {
	s, _ := ctx.Value(stackKey{}).(*Stack)
	return s
}

// Enter pushes a frame onto the Stack carried by ctx. Without one it is a
// no-op.
func Enter(ctx context.Context, proc, file string, line int) func() {
	return FromContext(ctx).Enter(proc, file, line)
}
