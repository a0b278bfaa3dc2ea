// Command rtbase resolves target ABI details and generates the C
// compatibility header.
//
// Usage:
//
//	rtbase targets
//	rtbase resolve --target x86_64-windows-msvc
//	rtbase header --target i386-linux-gcc --frames -o rtbase.h
//	rtbase convert 2.5 -3.5 100.25
//	rtbase layout --target wasm32-wasi u64 string
//	rtbase literal --target powerpc64-linux hello
//	rtbase explore
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
