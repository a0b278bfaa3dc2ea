package memory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/rtbase"
	"github.com/wippyai/rtbase/errors"
)

// Grower is memory that can add pages.
type Grower interface {
	Grow(deltaPages uint32) (previousPages uint32, ok bool)
}

// Arena is a bump allocator over a Memory. Allocation zero-fills the
// returned region; Reset reclaims everything at once.
type Arena struct {
	mem  rtbase.Memory
	mu   sync.Mutex
	next uint32
	base uint32
}

var _ rtbase.ZeroAllocator = (*Arena)(nil)

// NewArena creates an arena handing out memory from base upward. Offset 0
// is kept unused so a zero pointer never names a live allocation.
func NewArena(mem rtbase.Memory, base uint32) *Arena {
	if base == 0 {
		base = 8
	}
	return &Arena{mem: mem, next: base, base: base}
}

// AllocZeroed implements rtbase.ZeroAllocator.
func (a *Arena) AllocZeroed(size, align uint32) (uint32, error) {
	if align == 0 || align&(align-1) != 0 {
		return 0, errors.New(errors.PhaseRuntime, errors.KindInvalidInput).
			Path("arena", "align").Value(align).Detail("alignment must be a power of two").Build()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ptr := (a.next + align - 1) &^ (align - 1)
	if ptr < a.next {
		return 0, errors.AllocationFailed(errors.PhaseRuntime, size, align)
	}
	end := ptr + size
	if end < ptr {
		return 0, errors.AllocationFailed(errors.PhaseRuntime, size, align)
	}
	if err := a.ensure(end); err != nil {
		return 0, err
	}

	if size > 0 {
		// Regions below next may be reused after Reset, so zero explicitly.
		if err := a.mem.Write(ptr, make([]byte, size)); err != nil {
			return 0, errors.Wrap(errors.PhaseRuntime, errors.KindAllocation, err, "zero allocation")
		}
	}

	a.next = end
	Logger().Debug("arena alloc", zap.Uint32("ptr", ptr), zap.Uint32("size", size), zap.Uint32("align", align))
	return ptr, nil
}

// Used returns the number of bytes between base and the bump pointer.
func (a *Arena) Used() uint32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next - a.base
}

// Reset forgets every allocation.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next = a.base
}

func (a *Arena) ensure(end uint32) error {
	sizer, ok := a.mem.(rtbase.MemorySizer)
	if !ok {
		return nil
	}
	size := sizer.Size()
	if end <= size {
		return nil
	}
	g, ok := a.mem.(Grower)
	if !ok {
		return errors.AllocationFailed(errors.PhaseRuntime, end-size, 1)
	}
	need := (end - size + PageSize - 1) / PageSize
	if _, ok := g.Grow(need); !ok {
		return errors.AllocationFailed(errors.PhaseRuntime, end-size, 1)
	}
	Logger().Debug("arena grew memory", zap.Uint32("pages", need))
	return nil
}
