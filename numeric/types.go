package numeric

// Exact-width aliases used by lowered arithmetic.
type (
	Int8    = int8
	Int16   = int16
	Int32   = int32
	Int64   = int64
	Uint8   = uint8
	Uint16  = uint16
	Uint32  = uint32
	Uint64  = uint64
	Float32 = float32
	Float64 = float64
	// Float is the preferred native float, always 64 bits.
	Float = float64
	Bool  = bool
)

// Word and UWord are pointer-sized. They are distinct types, not aliases,
// so mixing them with a fixed-width integer requires an explicit conversion.
type (
	Word  int
	UWord uint
)

// Kind enumerates the members of the numeric type set.
type Kind int

const (
	KindInt8 Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindFloat
	KindWord
	KindUWord
	KindBool
	numKinds
)

var kindNames = [numKinds]string{
	"NS8", "NS16", "NS32", "NS64",
	"NU8", "NU16", "NU32", "NU64",
	"NF32", "NF64", "NF",
	"NS", "NU",
	"NIM_BOOL",
}

// String returns the C typedef name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "invalid"
	}
	return kindNames[k]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// IsWord reports whether k is the pointer-sized pair.
func (k Kind) IsWord() bool {
	return k == KindWord || k == KindUWord
}

// IsFloat reports whether k is a floating point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64 || k == KindFloat
}

// Signed reports whether k is a signed integer or float kind.
func (k Kind) Signed() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindWord:
		return true
	}
	return k.IsFloat()
}

// FixedWidth returns the declared width in bytes, or 0 for the word pair.
func (k Kind) FixedWidth() int {
	switch k {
	case KindInt8, KindUint8, KindBool:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64, KindFloat:
		return 8
	}
	return 0
}
