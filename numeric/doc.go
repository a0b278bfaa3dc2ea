// Package numeric defines the fixed-width numeric type set generated code
// relies on.
//
// Go callers get exact-width aliases (Int8 … Uint64, Float32, Float64, Float)
// and a machine word pair (Word, UWord) that follows the pointer width. For
// the C side, Resolve produces a Set naming the spelling of each type on one
// target platform:
//
//	set, err := numeric.Resolve(p)
//	t := set.Type(numeric.KindInt64) // NS64 -> "__int64" under MSVC
//
// The word pair is never interchangeable with a fixed-width kind, even when
// the sizes coincide on the current target. Validate fails the build when a
// toolchain's spelling does not provide the declared width.
package numeric
