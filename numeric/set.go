package numeric

import (
	"fmt"
	"math"

	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/target"
)

// Type is one member of a resolved set.
type Type struct {
	Kind   Kind
	Name   string // typedef name emitted into the header
	C      string // underlying C spelling on the target toolchain
	Size   int
	Align  int
	Signed bool
}

// Set is the numeric type set resolved for one platform. It is immutable.
type Set struct {
	Platform target.Platform
	// Stdint reports whether the toolchain ships <stdint.h>.
	Stdint bool
	// LiteralSuffix is appended to 64-bit integer constants.
	LiteralSuffix string
	types         [numKinds]Type
}

// Spelling families for the fixed-width integers.
var (
	stdintSpelling = [...]string{
		KindInt8: "int8_t", KindInt16: "int16_t", KindInt32: "int32_t", KindInt64: "int64_t",
		KindUint8: "uint8_t", KindUint16: "uint16_t", KindUint32: "uint32_t", KindUint64: "uint64_t",
	}
	msInt64Spelling = [...]string{
		KindInt8: "signed char", KindInt16: "signed short int", KindInt32: "signed int", KindInt64: "__int64",
		KindUint8: "unsigned char", KindUint16: "unsigned short int", KindUint32: "unsigned int", KindUint64: "unsigned __int64",
	}
	longLongSpelling = [...]string{
		KindInt8: "signed char", KindInt16: "signed short int", KindInt32: "signed int", KindInt64: "long long int",
		KindUint8: "unsigned char", KindUint16: "unsigned short int", KindUint32: "unsigned int", KindUint64: "unsigned long long int",
	}
)

// hasStdint lists toolchains that provide <stdint.h> (C99 or GNU-compatible).
func hasStdint(tc target.Toolchain) bool {
	switch tc {
	case target.ToolchainGCC, target.ToolchainClang, target.ToolchainLCC,
		target.ToolchainPellesC, target.ToolchainDMC, target.ToolchainTCC:
		return true
	}
	return false
}

// hasMSInt64 lists toolchains spelling 64-bit integers as __int64.
func hasMSInt64(tc target.Toolchain) bool {
	switch tc {
	case target.ToolchainMSVC, target.ToolchainBorland, target.ToolchainDMC, target.ToolchainWatcom:
		return true
	}
	return false
}

// literalSuffix returns the suffix 64-bit constants need; compilers outside
// the GNU-compatible family reject LL.
func literalSuffix(tc target.Toolchain) string {
	switch tc {
	case target.ToolchainGCC, target.ToolchainClang, target.ToolchainLCC,
		target.ToolchainPellesC, target.ToolchainDMC:
		return "LL"
	}
	return ""
}

// Resolve builds and validates the numeric set for p.
func Resolve(p target.Platform) (*Set, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &Set{
		Platform:      p,
		Stdint:        hasStdint(p.Toolchain),
		LiteralSuffix: literalSuffix(p.Toolchain),
	}

	ints := longLongSpelling[:]
	switch {
	case s.Stdint:
		ints = stdintSpelling[:]
	case hasMSInt64(p.Toolchain):
		ints = msInt64Spelling[:]
	}
	for k := KindInt8; k <= KindUint64; k++ {
		s.set(k, ints[k], k.FixedWidth())
	}

	s.set(KindFloat32, "float", 4)
	s.set(KindFloat64, "double", 8)
	s.set(KindFloat, "double", 8)
	s.set(KindBool, "unsigned char", 1)

	// long tracks the pointer except under LLP64, where it stays 32 bits.
	if p.DataModel() == target.LLP64 {
		s.set(KindWord, "signed long long int", p.PtrSize)
		s.set(KindUWord, "unsigned long long int", p.PtrSize)
	} else {
		s.set(KindWord, "signed long int", p.PtrSize)
		s.set(KindUWord, "unsigned long int", p.PtrSize)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Set) set(k Kind, c string, size int) {
	align := size
	// The i386 System V ABI aligns 8-byte scalars to 4 inside aggregates.
	if size == 8 && s.Platform.Arch == target.ArchI386 && !s.Platform.IsWindows() {
		align = 4
	}
	s.types[k] = Type{
		Kind:   k,
		Name:   k.String(),
		C:      c,
		Size:   size,
		Align:  align,
		Signed: k.Signed(),
	}
}

// Type returns the resolved type for k.
func (s *Set) Type(k Kind) Type {
	return s.types[k]
}

// Types returns every resolved type in Kind order.
func (s *Set) Types() []Type {
	out := make([]Type, numKinds)
	copy(out, s.types[:])
	return out
}

// Interchangeable reports whether generated code may use a and b without
// an explicit conversion. The word pair is only interchangeable with itself.
func (s *Set) Interchangeable(a, b Kind) bool {
	if a == b {
		return true
	}
	if a.IsWord() || b.IsWord() {
		return false
	}
	// NF is defined as NF64.
	return (a == KindFloat && b == KindFloat64) || (a == KindFloat64 && b == KindFloat)
}

// Validate checks every spelling provides the width its kind promises.
func (s *Set) Validate() error {
	name := s.Platform.String()
	for _, t := range s.types {
		got := cWidth(t.C, s.Platform)
		want := t.Kind.FixedWidth()
		if t.Kind.IsWord() {
			want = s.Platform.PtrSize
		}
		if got != want || t.Size != want {
			return errors.UnsupportedWidth(name, t.Name, want, got)
		}
	}
	return nil
}

// cWidth returns sizeof(spelling) on p, or 0 for an unknown spelling.
func cWidth(spelling string, p target.Platform) int {
	switch spelling {
	case "int8_t", "uint8_t", "signed char", "unsigned char":
		return 1
	case "int16_t", "uint16_t", "signed short int", "unsigned short int":
		return 2
	case "int32_t", "uint32_t", "signed int", "unsigned int", "float":
		return 4
	case "int64_t", "uint64_t", "__int64", "unsigned __int64",
		"long long int", "unsigned long long int",
		"signed long long int", "double":
		return 8
	case "signed long int", "unsigned long int":
		return p.LongSize()
	}
	return 0
}

// Int64Literal spells v as a 64-bit constant expression.
func (s *Set) Int64Literal(v int64) string {
	if v == math.MinInt64 {
		// The positive magnitude of MinInt64 does not fit the type.
		return fmt.Sprintf("(%s - 1)", s.Int64Literal(v+1))
	}
	return fmt.Sprintf("%d%s", v, s.LiteralSuffix)
}

// Uint64Literal spells v as an unsigned 64-bit constant.
func (s *Set) Uint64Literal(v uint64) string {
	return fmt.Sprintf("%dU%s", v, s.LiteralSuffix)
}
