package frame

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	rterrors "github.com/wippyai/rtbase/errors"
)

func TestEnter_Normal(t *testing.T) {
	s := NewStack()
	func() {
		defer s.Enter("outer", "a.nim", 1)()
		if s.Depth() != 1 || s.Current().Proc != "outer" {
			t.Errorf("inside outer: depth %d, current %v", s.Depth(), s.Current())
		}
		func() {
			defer s.Enter("inner", "a.nim", 5)()
			if s.Current().Prev.Proc != "outer" {
				t.Error("inner frame not linked to outer")
			}
		}()
		if s.Current().Proc != "outer" {
			t.Errorf("after inner returned, current = %v", s.Current())
		}
	}()
	if s.Current() != nil || s.Depth() != 0 {
		t.Errorf("slot not restored: depth %d", s.Depth())
	}
}

func recurse(s *Stack, n int, fail int) error {
	defer s.Enter("recurse", "r.nim", n)()
	if n == fail {
		return errors.New("boom")
	}
	if n == 0 {
		return nil
	}
	if n%2 == 0 {
		// early return path
		return recurse(s, n-1, fail)
	}
	if err := recurse(s, n-1, fail); err != nil {
		return err
	}
	return nil
}

func TestEnter_EarlyAndErrorExits(t *testing.T) {
	tests := []struct {
		name string
		n    int
		fail int
	}{
		{"all_normal", 6, -1},
		{"error_at_bottom", 6, 0},
		{"error_midway", 6, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			_ = recurse(s, tt.n, tt.fail)
			if s.Current() != nil || s.Depth() != 0 {
				t.Errorf("unbalanced after %s: depth %d", tt.name, s.Depth())
			}
		})
	}
}

func TestEnter_Panic(t *testing.T) {
	s := NewStack()
	release := s.Enter("main", "m.nim", 1)

	func() {
		defer func() { _ = recover() }()
		defer s.Enter("risky", "m.nim", 10)()
		panic("fail")
	}()

	if s.Current() == nil || s.Current().Proc != "main" {
		t.Errorf("after panic, current = %v", s.Current())
	}
	release()
	if s.Current() != nil {
		t.Error("slot not empty after outer release")
	}
}

func TestEnter_ReleaseTwice(t *testing.T) {
	s := NewStack()
	outer := s.Enter("outer", "a.nim", 1)
	inner := s.Enter("inner", "a.nim", 2)
	inner()
	inner()
	if s.Depth() != 1 || s.Current().Proc != "outer" {
		t.Errorf("double release popped too far: depth %d", s.Depth())
	}
	outer()
	if s.Depth() != 0 {
		t.Errorf("depth = %d", s.Depth())
	}
}

func TestEnter_RestoresPriorSlotOutOfOrder(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	s := NewStack()
	outer := s.Enter("outer", "a.nim", 1)
	// A callee that pushes without popping.
	s.Push(&Frame{Proc: "leaked"})
	outer()

	if s.Current() != nil || s.Depth() != 0 {
		t.Errorf("release must restore the prior slot, depth %d", s.Depth())
	}
	if logs.FilterMessage("frame released out of order").Len() != 1 {
		t.Error("expected out-of-order warning")
	}
}

func TestEnter_ReleaseAfterEnclosingUnwind(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	s := NewStack()
	base := s.Enter("base", "a.nim", 1)
	outer := s.Enter("outer", "a.nim", 2)
	inner := s.Enter("inner", "a.nim", 3)

	outer()
	if s.Depth() != 1 || s.Current().Proc != "base" {
		t.Fatalf("after outer release: depth %d current %v", s.Depth(), s.Current())
	}

	inner()
	if s.Depth() != 1 || s.Current().Proc != "base" {
		t.Errorf("stale release revived a dead frame: depth %d current %v", s.Depth(), s.Current())
	}
	if logs.FilterMessage("frame released after unwind").Len() != 1 {
		t.Error("expected warning for release after unwind")
	}

	base()
	if s.Depth() != 0 || s.Current() != nil {
		t.Errorf("stack not empty: depth %d", s.Depth())
	}
}

func TestDisabled(t *testing.T) {
	s := &Stack{}
	release := s.Enter("p", "f.nim", 1)
	if s.Depth() != 0 || s.Current() != nil {
		t.Error("disabled stack recorded a frame")
	}
	release()

	var nilStack *Stack
	nilStack.Enter("p", "f.nim", 1)()
	nilStack.SetLine(3)
	if nilStack.Depth() != 0 || nilStack.Current() != nil {
		t.Error("nil stack should be empty")
	}
	if err := nilStack.Pop(&Frame{}); err != nil {
		t.Errorf("nil stack Pop: %v", err)
	}
}

func TestPushPop(t *testing.T) {
	s := NewStack()
	a := &Frame{Proc: "a"}
	b := &Frame{Proc: "b"}
	s.Push(a)
	s.Push(b)
	if b.Prev != a {
		t.Error("Push did not link Prev")
	}

	err := s.Pop(a)
	var rerr *rterrors.Error
	if !errors.As(err, &rerr) || rerr.Kind != rterrors.KindUnbalancedFrame {
		t.Errorf("Pop of non-innermost frame: got %v", err)
	}
	if err := s.Pop(b); err != nil {
		t.Fatal(err)
	}
	if err := s.Pop(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Pop(a); err == nil {
		t.Error("Pop on empty stack should fail")
	}
}

func TestSetLine(t *testing.T) {
	s := NewStack()
	s.SetLine(9)
	defer s.Enter("p", "f.nim", 1)()
	s.SetLine(7)
	if s.Current().Line != 7 {
		t.Errorf("Line = %d, want 7", s.Current().Line)
	}
}

func TestTraceback(t *testing.T) {
	s := NewStack()
	defer s.Enter("main", "main.nim", 3)()
	defer s.Enter("parse", "parser.nim", 42)()

	want := "Traceback (most recent call last)\nmain.nim(3) main\nparser.nim(42) parse\n"
	if got := s.Traceback(); got != want {
		t.Errorf("Traceback() =\n%s\nwant\n%s", got, want)
	}

	var procs []string
	s.Walk(func(f *Frame) bool {
		procs = append(procs, f.Proc)
		return false
	})
	if len(procs) != 1 || procs[0] != "parse" {
		t.Errorf("Walk should stop early, got %v", procs)
	}

	frames := s.Frames()
	if len(frames) != 2 || frames[0].Prev != nil || frames[1].Len != len("parse") {
		t.Errorf("Frames() = %+v", frames)
	}
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	s := NewStack()
	log.Info("empty", s.Fields()...)
	defer s.Enter("work", "w.nim", 8)()
	log.Info("busy", s.Fields()...)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].ContextMap()["frame_depth"] != int64(0) {
		t.Errorf("empty fields = %v", entries[0].ContextMap())
	}
	ctxMap := entries[1].ContextMap()
	if ctxMap["frame_proc"] != "work" || ctxMap["frame_line"] != int64(8) {
		t.Errorf("busy fields = %v", ctxMap)
	}
}

func TestHere(t *testing.T) {
	s := NewStack()
	defer s.Here()()
	f := s.Current()
	if !strings.Contains(f.Proc, "TestHere") {
		t.Errorf("Proc = %q", f.Proc)
	}
	if !strings.HasSuffix(f.File, "frame_test.go") || f.Line == 0 {
		t.Errorf("location = %s:%d", f.File, f.Line)
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) != nil {
		t.Error("background context carries no stack")
	}
	Enter(ctx, "p", "f.nim", 1)()

	ctx = WithStack(ctx, nil)
	s := FromContext(ctx)
	if s == nil || !s.Enabled {
		t.Fatal("WithStack(nil) should install an enabled stack")
	}
	release := Enter(ctx, "p", "f.nim", 1)
	if s.Depth() != 1 {
		t.Errorf("depth = %d", s.Depth())
	}
	release()
	if s.Depth() != 0 {
		t.Errorf("depth = %d", s.Depth())
	}
}

func TestPerGoroutineStacks(t *testing.T) {
	var (
		wg       sync.WaitGroup
		leaked   atomic.Int32
		restored atomic.Int32
	)

	for i := range 8 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			ctx := WithStack(context.Background(), nil)
			for n := 0; n < 100; n++ {
				release := Enter(ctx, "worker", "w.nim", id)
				if FromContext(ctx).Depth() != 1 {
					leaked.Add(1)
				}
				release()
			}
			if FromContext(ctx).Current() == nil {
				restored.Add(1)
			}
		}(i)
	}
	wg.Wait()
	if leaked.Load() != 0 {
		t.Errorf("%d entries saw another goroutine's frames", leaked.Load())
	}
	if restored.Load() != 8 {
		t.Errorf("%d of 8 stacks restored", restored.Load())
	}
}
