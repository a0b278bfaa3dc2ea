package layout

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/rtbase/errors"
)

// Info is the layout of one element type.
type Info struct {
	FieldOffs map[string]uint32
	Size      uint32
	Align     uint32
}

// Calculator computes layouts for one target. Results for named types are
// cached, so a Calculator is not safe for concurrent use.
type Calculator struct {
	cache    map[*wit.TypeDef]Info
	ptrSize  uint32
	maxAlign uint32
}

// NewCalculator returns a calculator for a target with the given pointer
// width. maxAlign caps scalar alignment; it is 4 on ABIs that align 8-byte
// scalars to 4 inside aggregates.
func NewCalculator(ptrSize, maxAlign uint32) *Calculator {
	if maxAlign == 0 {
		maxAlign = 8
	}
	return &Calculator{
		cache:    make(map[*wit.TypeDef]Info),
		ptrSize:  ptrSize,
		maxAlign: maxAlign,
	}
}

// AlignTo rounds offset up to a multiple of align.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// DiscriminantSize is the width of a tag selecting among numCases cases.
func DiscriminantSize(numCases int) uint32 {
	if numCases <= 256 {
		return 1
	} else if numCases <= 65536 {
		return 2
	}
	return 4
}

func (c *Calculator) scalar(size uint32) Info {
	align := size
	if align > c.maxAlign {
		align = c.maxAlign
	}
	return Info{Size: size, Align: align}
}

func (c *Calculator) pointer() Info {
	return Info{Size: c.ptrSize, Align: c.ptrSize}
}

// Calculate returns the layout of t.
func (c *Calculator) Calculate(t wit.Type) (Info, error) {
	switch typ := t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return c.scalar(1), nil
	case wit.U16, wit.S16:
		return c.scalar(2), nil
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return c.scalar(4), nil
	case wit.U64, wit.S64, wit.F64:
		return c.scalar(8), nil
	case wit.String:
		return c.pointer(), nil
	case *wit.TypeDef:
		return c.calculateTypeDef(typ)
	case nil:
		return Info{Size: 0, Align: 1}, nil
	default:
		return Info{}, unsupported(fmt.Sprintf("%T", t))
	}
}

func unsupported(what string) error {
	return errors.New(errors.PhaseLayout, errors.KindUnsupportedElement).
		Path("element").Value(what).
		Detail("%s has no element representation", what).Build()
}

func (c *Calculator) calculateTypeDef(t *wit.TypeDef) (Info, error) {
	if cached, ok := c.cache[t]; ok {
		return cached, nil
	}

	var (
		info Info
		err  error
	)

	switch kind := t.Kind.(type) {
	case *wit.Record:
		info, err = c.calculateRecord(kind)
	case *wit.Variant:
		info, err = c.calculateVariant(kind)
	case *wit.Enum:
		size := DiscriminantSize(len(kind.Cases))
		info = Info{Size: size, Align: size}
	case *wit.List:
		info = c.pointer()
	case *wit.Option:
		info, err = c.calculateTagged(kind.Type, nil)
	case *wit.Result:
		info, err = c.calculateTagged(kind.OK, kind.Err)
	case *wit.Tuple:
		info, err = c.calculateTuple(kind)
	case *wit.Flags:
		info = c.calculateFlags(kind)
	case *wit.Own, *wit.Borrow:
		return Info{}, unsupported("resource handle")
	case wit.Type:
		info, err = c.Calculate(kind)
	default:
		return Info{}, unsupported(fmt.Sprintf("%T", t.Kind))
	}
	if err != nil {
		return Info{}, err
	}

	c.cache[t] = info
	return info, nil
}

func (c *Calculator) calculateRecord(r *wit.Record) (Info, error) {
	if len(r.Fields) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	fieldOffs := make(map[string]uint32, len(r.Fields))
	maxAlign := uint32(1)
	offset := uint32(0)

	for _, field := range r.Fields {
		fieldLayout, err := c.Calculate(field.Type)
		if err != nil {
			return Info{}, err
		}

		offset = AlignTo(offset, fieldLayout.Align)
		fieldOffs[field.Name] = offset

		if fieldLayout.Align > maxAlign {
			maxAlign = fieldLayout.Align
		}
		offset += fieldLayout.Size
	}

	return Info{
		Size:      AlignTo(offset, maxAlign),
		Align:     maxAlign,
		FieldOffs: fieldOffs,
	}, nil
}

func (c *Calculator) calculateVariant(v *wit.Variant) (Info, error) {
	if len(v.Cases) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	discSize := DiscriminantSize(len(v.Cases))
	maxAlign := discSize
	maxSize := uint32(0)

	for _, cs := range v.Cases {
		if cs.Type == nil {
			continue
		}
		caseLayout, err := c.Calculate(cs.Type)
		if err != nil {
			return Info{}, err
		}
		if caseLayout.Align > maxAlign {
			maxAlign = caseLayout.Align
		}
		if caseLayout.Size > maxSize {
			maxSize = caseLayout.Size
		}
	}

	payloadOffset := AlignTo(discSize, maxAlign)
	return Info{
		Size:  AlignTo(payloadOffset+maxSize, maxAlign),
		Align: maxAlign,
	}, nil
}

// calculateTagged lays out a one-byte tag followed by the larger of two
// optional payloads.
func (c *Calculator) calculateTagged(a, b wit.Type) (Info, error) {
	maxAlign := uint32(1)
	maxSize := uint32(0)
	for _, t := range []wit.Type{a, b} {
		if t == nil {
			continue
		}
		info, err := c.Calculate(t)
		if err != nil {
			return Info{}, err
		}
		if info.Align > maxAlign {
			maxAlign = info.Align
		}
		if info.Size > maxSize {
			maxSize = info.Size
		}
	}

	payloadOffset := AlignTo(1, maxAlign)
	return Info{
		Size:  AlignTo(payloadOffset+maxSize, maxAlign),
		Align: maxAlign,
	}, nil
}

func (c *Calculator) calculateTuple(t *wit.Tuple) (Info, error) {
	if len(t.Types) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	maxAlign := uint32(1)
	offset := uint32(0)

	for _, typ := range t.Types {
		elemLayout, err := c.Calculate(typ)
		if err != nil {
			return Info{}, err
		}
		offset = AlignTo(offset, elemLayout.Align)
		if elemLayout.Align > maxAlign {
			maxAlign = elemLayout.Align
		}
		offset += elemLayout.Size
	}

	return Info{
		Size:  AlignTo(offset, maxAlign),
		Align: maxAlign,
	}, nil
}

func (c *Calculator) calculateFlags(f *wit.Flags) Info {
	numFlags := len(f.Flags)

	switch {
	case numFlags == 0:
		return Info{Size: 0, Align: 1}
	case numFlags <= 8:
		return c.scalar(1)
	case numFlags <= 16:
		return c.scalar(2)
	case numFlags <= 32:
		return c.scalar(4)
	case numFlags <= 64:
		return c.scalar(8)
	}

	// Wider sets are arrays of 32-bit words.
	numU32s := (numFlags + 31) / 32
	return Info{Size: uint32(numU32s * 4), Align: 4}
}
