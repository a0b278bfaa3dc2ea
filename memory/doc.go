// Package memory provides the linear memory dynamic buffers are laid out in
// and the zero-initializing allocator that constructs them.
//
// # Linear Memory
//
// NewLinear instantiates a memory-only WebAssembly module with wazero and
// exposes its exported memory through rtbase.Memory:
//
//	lin, err := memory.NewLinear(ctx, 1)
//	defer lin.Close(ctx)
//	mem := lin.Memory()
//
// # Memory Wrapper
//
// WrapMemory adapts any wazero api.Memory, so buffers can also be read from a
// running module's memory.
//
// # Arena
//
// Arena is a bump allocator implementing rtbase.ZeroAllocator. It is the
// allocator collaborator buffer construction relies on; it never decides
// growth policy for the buffers themselves.
//
//	arena := memory.NewArena(lin.Memory(), 16)
//	ptr, err := arena.AllocZeroed(64, 8)
package memory
