package callconv

import "strings"

// Convention is a logical calling convention named by generated code.
type Convention int

const (
	// Default is the language's own convention (nimcall).
	Default Convention = iota
	Cdecl
	Stdcall
	Syscall
	Fastcall
	Safecall
	Closure
	NoConv
	numConventions
)

var conventionNames = [numConventions]string{
	"default", "cdecl", "stdcall", "syscall", "fastcall", "safecall", "closure", "noconv",
}

var conventionMacros = [numConventions]string{
	"N_NIMCALL", "N_CDECL", "N_STDCALL", "N_SYSCALL", "N_FASTCALL", "N_SAFECALL", "N_CLOSURE", "N_NOCONV",
}

func (c Convention) String() string {
	if c < 0 || c >= numConventions {
		return "invalid"
	}
	return conventionNames[c]
}

// Macro returns the header macro generated declarations use for c.
func (c Convention) Macro() string {
	if c < 0 || c >= numConventions {
		return ""
	}
	return conventionMacros[c]
}

// Valid reports whether c is a defined convention.
func (c Convention) Valid() bool {
	return c >= 0 && c < numConventions
}

// Conventions returns every convention in declaration order.
func Conventions() []Convention {
	out := make([]Convention, numConventions)
	for i := range out {
		out[i] = Convention(i)
	}
	return out
}

// ParseConvention resolves a convention by name (case-insensitive).
// "nimcall" is accepted for Default.
func ParseConvention(name string) (Convention, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "nimcall" {
		return Default, true
	}
	for i, s := range conventionNames {
		if s == n {
			return Convention(i), true
		}
	}
	return 0, false
}

// Linkage is the visibility direction of a declared symbol.
type Linkage int

const (
	Export Linkage = iota
	Import
)

func (l Linkage) String() string {
	if l == Import {
		return "import"
	}
	return "export"
}

// Macro returns the header macro for l.
func (l Linkage) Macro() string {
	if l == Import {
		return "N_LIB_IMPORT"
	}
	return "N_LIB_EXPORT"
}

// Spelling is a declaration template. %R stands for the return type and %N
// for the declared name.
type Spelling string

// Render substitutes the return type and name. Pointer spellings carry the
// parentheses and star themselves.
func (s Spelling) Render(ret, name string) string {
	r := strings.NewReplacer("%R", ret, "%N", name)
	return r.Replace(string(s))
}

// Macro renders s as the body of a two-argument C macro.
func (s Spelling) Macro() string {
	return s.Render("rettype", "name")
}

// Round names how generated code rounds a double to an integer.
type Round int

const (
	roundUnset Round = iota
	// RoundLrint calls the C99 lrint/lrintf pair.
	RoundLrint
	// RoundFistp uses inline x87 fld/fistp.
	RoundFistp
	// RoundBias uses the bias-trick conversion from package fastconv.
	RoundBias
)

func (r Round) String() string {
	switch r {
	case RoundLrint:
		return "lrint"
	case RoundFistp:
		return "fistp"
	case RoundBias:
		return "bias"
	}
	return "unset"
}

// Native reports whether r is a hardware or libc primitive.
func (r Round) Native() bool {
	return r == RoundLrint || r == RoundFistp
}
