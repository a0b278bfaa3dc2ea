package frame

import (
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/rtbase/errors"
)

// Frame is one live instrumented procedure invocation.
type Frame struct {
	// Prev is the enclosing frame. It is a back reference used only to walk
	// the chain; a Frame never owns its predecessor.
	Prev *Frame
	Proc string
	File string
	Line int
	// Len is the length of the procedure label.
	Len int
}

// String formats f as file(line) proc.
func (f *Frame) String() string {
	return fmt.Sprintf("%s(%d) %s", f.File, f.Line, f.Proc)
}

// Stack owns one current-frame slot. It is not safe for concurrent use;
// give each goroutine its own.
type Stack struct {
	cur     *Frame
	depth   int
	Enabled bool
}

// NewStack returns an enabled, empty stack.
func NewStack() *Stack {
	return &Stack{Enabled: true}
}

func (s *Stack) active() bool {
	return s != nil && s.Enabled
}

func noop() {}

// Enter pushes a frame for proc and returns its release. Release restores
// the slot to its value before this call and is safe to call more than
// once. Releasing a frame an enclosing release already unwound leaves the
// slot untouched.
func (s *Stack) Enter(proc, file string, line int) func() {
	if !s.active() {
		return noop
	}
	f := &Frame{Proc: proc, File: file, Line: line, Len: len(proc)}
	prev, depth := s.cur, s.depth
	s.Push(f)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		if s.cur != f {
			if !s.live(f) {
				// An enclosing release already unwound past f.
				Logger().Warn("frame released after unwind",
					zap.String("proc", f.Proc), zap.Int("depth", s.depth))
				return
			}
			Logger().Warn("frame released out of order",
				zap.String("proc", f.Proc), zap.Int("depth", s.depth), zap.Int("want_depth", depth+1))
		}
		s.cur, s.depth = prev, depth
	}
}

// live reports whether f is on the chain from the innermost frame.
func (s *Stack) live(f *Frame) bool {
	for c := s.cur; c != nil; c = c.Prev {
		if c == f {
			return true
		}
	}
	return false
}

// Here is Enter with the caller's function, file and line.
func (s *Stack) Here() func() {
	if !s.active() {
		return noop
	}
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return s.Enter("???", "???", 0)
	}
	proc := "???"
	if fn := runtime.FuncForPC(pc); fn != nil {
		proc = fn.Name()
		if i := strings.LastIndexByte(proc, '/'); i >= 0 {
			proc = proc[i+1:]
		}
	}
	return s.Enter(proc, file, line)
}

// Push links f as the innermost frame. Generated code pairs it with Pop.
func (s *Stack) Push(f *Frame) {
	if !s.active() {
		return
	}
	f.Prev = s.cur
	s.cur = f
	s.depth++
}

// Pop unlinks f, which must be the innermost frame.
func (s *Stack) Pop(f *Frame) error {
	if !s.active() {
		return nil
	}
	if s.cur == nil || s.cur != f {
		return errors.New(errors.PhaseFrame, errors.KindUnbalancedFrame).
			Value(f.Proc).Detail("pop of %q is not the innermost frame (depth %d)", f.Proc, s.depth).Build()
	}
	s.cur = f.Prev
	s.depth--
	return nil
}

// SetLine records the line the innermost frame has reached.
func (s *Stack) SetLine(line int) {
	if s.active() && s.cur != nil {
		s.cur.Line = line
	}
}

// Current returns the innermost frame, or nil.
func (s *Stack) Current() *Frame {
	if s == nil {
		return nil
	}
	return s.cur
}

// Depth returns the number of live frames.
func (s *Stack) Depth() int {
	if s == nil {
		return 0
	}
	return s.depth
}

// Walk calls fn for each frame from innermost to outermost until fn
// returns false.
func (s *Stack) Walk(fn func(*Frame) bool) {
	for f := s.Current(); f != nil; f = f.Prev {
		if !fn(f) {
			return
		}
	}
}

// Frames returns the chain from outermost to innermost.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, s.Depth())
	i := len(out)
	s.Walk(func(f *Frame) bool {
		i--
		if i < 0 {
			return false
		}
		out[i] = *f
		out[i].Prev = nil
		return true
	})
	return out
}

// Traceback renders the chain, most recent call last.
func (s *Stack) Traceback() string {
	var sb strings.Builder
	sb.WriteString("Traceback (most recent call last)\n")
	for _, f := range s.Frames() {
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fields describes the innermost frame for structured logging.
func (s *Stack) Fields() []zap.Field {
	f := s.Current()
	if f == nil {
		return []zap.Field{zap.Int("frame_depth", 0)}
	}
	return []zap.Field{
		zap.Int("frame_depth", s.Depth()),
		zap.String("frame_proc", f.Proc),
		zap.String("frame_file", f.File),
		zap.Int("frame_line", f.Line),
	}
}
