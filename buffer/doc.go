// Package buffer implements the dynamic buffer representation shared by
// text and sequences: a header of {length, capacity} followed by a data
// region addressed separately from it.
//
// # Invariant
//
// Every constructor and mutator preserves 0 <= Len <= Cap, and the data
// region always holds Cap elements. The region is zero-initialized when a
// buffer is created. Literals are built full, with Len == Cap.
//
// # Go Values
//
// Text and Seq keep the header and region in Go memory. They have pointer
// semantics: assigning a *Text shares it, Clone copies it.
//
//	s := buffer.Literal("hello")
//	t := s.Clone()
//	buffer.Clear(t) // s is unchanged
//
// # Linear Memory
//
// Layout reads and writes the same representation in a WebAssembly-style
// linear memory for a given target: header fields are target words in the
// target byte order, and data starts at the first suitably aligned offset
// after the header. Text regions carry one trailing NUL byte.
//
//	l := buffer.NewLayout(p)
//	ptr, err := l.WriteLiteral(mem, arena, "hello")
//	h, err := l.ReadHeader(mem, ptr)
//
// Growth policy is left to callers; appending past capacity is an error.
package buffer
