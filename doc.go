// Package rtbase provides the portable ABI and representation layer shared by
// code generated from a compiled language and the runtime it links against.
//
// The layer fixes three things once per target configuration and never at
// runtime: the numeric type set, the calling-convention and linkage spellings
// generated declarations use, and the binary layout of dynamically sized
// values. It also carries a bias-trick float to int32 conversion and the
// call-frame record used by diagnostics.
//
// # Architecture Overview
//
//	rtbase/              Root package with Memory and Allocator contracts
//	├── target/          Platform identity: OS, arch, toolchain, byte order
//	├── numeric/         Fixed-width type set and per-target C spellings
//	├── callconv/        Calling convention and linkage resolution
//	├── fastconv/        Float to int32 conversion without the FPU round switch
//	├── buffer/          Text and sequence buffer header and data layout
//	├── memory/          wazero linear memory and zeroing arena allocator
//	├── frame/           Call-frame records and per-context current frame
//	├── header/          C compatibility header generator
//	├── config/          YAML profile with environment overrides
//	├── errors/          Structured error types
//	├── internal/wasm/   Memory-only WebAssembly module encoder
//	└── cmd/rtbase/      CLI: resolve, header, convert, layout, explore
//
// # Quick Start
//
// Resolve a target and emit the header generated code includes:
//
//	p, err := target.Parse("x86_64-windows-msvc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tbl, err := callconv.DefaultResolver().ResolveAll(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tbl.Func(callconv.Stdcall).Render("int", "WinMain"))
//	// int __stdcall WinMain
//
//	if err := header.Write(os.Stdout, p, header.Options{}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Buffers
//
// Text and sequence buffers share one header, so helpers that only touch
// length and capacity work on either:
//
//	s := buffer.Literal("hello")
//	buffer.Clear(s) // length 0, capacity 5
//
// # Thread Safety
//
// Resolved tables and numeric sets are immutable and safe for concurrent use.
// A frame.Stack belongs to one goroutine. Buffers carry no synchronization;
// concurrent mutation is the caller's responsibility.
package rtbase
