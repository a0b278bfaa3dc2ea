package memory

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/rtbase"
	"github.com/wippyai/rtbase/errors"
)

// WrapMemory wraps a wazero api.Memory to implement rtbase.Memory.
func WrapMemory(mem api.Memory) *Wrapper {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper adapts wazero api.Memory to the rtbase.Memory interface.
// Multi-byte accessors are little-endian, as in WebAssembly.
type Wrapper struct {
	Mem api.Memory
}

var (
	_ rtbase.Memory      = (*Wrapper)(nil)
	_ rtbase.MemorySizer = (*Wrapper)(nil)
)

func outOfBounds(offset uint32, length int) error {
	return errors.New(errors.PhaseRuntime, errors.KindOutOfBounds).
		Path("memory").
		Value(offset).
		Detail("offset=%d, length=%d", offset, length).
		Build()
}

// Size returns the current memory size in bytes.
func (m *Wrapper) Size() uint32 {
	return m.Mem.Size()
}

// Read reads bytes from memory. The returned slice aliases memory.
func (m *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds(offset, int(length))
	}
	return data, nil
}

// Write writes bytes to memory.
func (m *Wrapper) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return outOfBounds(offset, len(data))
	}
	return nil
}

// Grow adds delta pages, returning the previous size in pages.
func (m *Wrapper) Grow(delta uint32) (uint32, bool) {
	return m.Mem.Grow(delta)
}
