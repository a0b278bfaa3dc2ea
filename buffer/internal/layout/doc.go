// Package layout computes the size and alignment of sequence element slots
// for a target platform.
//
// Element types are described with WIT types. Scalars occupy their natural
// width; records and tuples follow C struct layout; variants, options and
// results are a discriminant followed by the largest payload. Text and
// sequence values stored inside an element are a single pointer of the
// target's width, since their header and data live in a separate buffer.
//
// # Usage
//
//	c := layout.NewCalculator(8, 8)
//	info, err := c.Calculate(witType)
//	// info.Size, info.Align, info.FieldOffs
//
// This package is internal to buffer.
package layout
