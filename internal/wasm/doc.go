// Package wasm encodes the minimal WebAssembly binary modules rtbase
// instantiates to obtain linear memory.
//
// Only the sections a memory host needs are modelled: memories and
// exports. Encode emits sections in binary-format order.
//
//	m := &wasm.Module{
//	    Memories: []wasm.MemoryType{{Limits: wasm.Limits{Min: 1}}},
//	    Exports:  []wasm.Export{{Name: "memory", Kind: wasm.KindMemory}},
//	}
//	if err := m.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	bin := m.Encode()
package wasm
