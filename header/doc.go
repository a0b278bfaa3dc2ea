// Package header emits the C compatibility header for one target.
//
// The header is the build-time form of every resolution rtbase performs:
// numeric typedefs, calling-convention and linkage macros, the inline
// spelling, the float-to-int32 routine chosen for the target, the dynamic
// buffer header struct and the call-frame record. Generated translation
// units include it instead of branching on compiler identity themselves.
//
//	p := target.MustParse("x86_64-windows-msvc")
//	err := header.Write(os.Stdout, p, header.Options{Frames: true})
//
// Resolution errors (unknown target, width mismatch, missing rounding
// primitive when one is required) are returned before anything is written.
package header
