package memory

import (
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/internal/wasm"
)

const (
	// PageSize is the WebAssembly page size in bytes.
	PageSize = 65536
	// MaxPages is the largest 32-bit linear memory.
	MaxPages = 65536

	exportName = "memory"
)

// Linear is a standalone linear memory backed by a wazero module instance.
// It is not safe for concurrent use.
type Linear struct {
	rt  wazero.Runtime
	mem *Wrapper
}

// NewLinear creates a linear memory of the given initial page count.
func NewLinear(ctx context.Context, pages uint32) (*Linear, error) {
	if pages == 0 || pages > MaxPages {
		return nil, errors.New(errors.PhaseRuntime, errors.KindInvalidInput).
			Path("memory", "pages").Value(pages).
			Detail("page count must be in [1, %d]", MaxPages).Build()
	}

	m := memoryModule(pages)
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(errors.PhaseRuntime, errors.KindInvalidInput, err, "memory module")
	}

	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	mod, err := rt.Instantiate(ctx, m.Encode())
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseRuntime, errors.KindAllocation, err, "instantiate linear memory")
	}

	mem := mod.ExportedMemory(exportName)
	if mem == nil {
		_ = rt.Close(ctx)
		return nil, errors.NotFound(errors.PhaseRuntime, "export", exportName)
	}

	Logger().Debug("linear memory created", zap.Uint32("pages", pages))
	return &Linear{rt: rt, mem: WrapMemory(mem)}, nil
}

// Memory returns the memory accessor.
func (l *Linear) Memory() *Wrapper {
	return l.mem
}

// Close releases the underlying runtime.
func (l *Linear) Close(ctx context.Context) error {
	if l.rt == nil {
		return nil
	}
	err := l.rt.Close(ctx)
	l.rt = nil
	return err
}

// memoryModule describes a module whose only content is one exported
// memory with min pages and no maximum.
func memoryModule(pages uint32) *wasm.Module {
	return &wasm.Module{
		Memories: []wasm.MemoryType{{Limits: wasm.Limits{Min: uint64(pages)}}},
		Exports:  []wasm.Export{{Name: exportName, Kind: wasm.KindMemory}},
	}
}
