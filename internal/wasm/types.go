package wasm

// Module is the subset of a WebAssembly module rtbase encodes.
type Module struct {
	Memories []MemoryType
	Exports  []Export
}

// MemoryType describes a linear memory.
type MemoryType struct {
	Limits Limits
}

// Limits describes size constraints in pages.
type Limits struct {
	Max      *uint64
	Min      uint64
	Shared   bool
	Memory64 bool
}

// Export represents an exported definition.
type Export struct {
	Name string
	Kind byte
	Idx  uint32
}
