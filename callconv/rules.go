package callconv

import "github.com/wippyai/rtbase/target"

// Predicate selects the platforms a rule applies to.
type Predicate func(target.Platform) bool

// Always matches every platform.
func Always(target.Platform) bool { return true }

// OnOS matches platforms running one of oses.
func OnOS(oses ...target.OS) Predicate {
	return func(p target.Platform) bool {
		for _, os := range oses {
			if p.OS == os {
				return true
			}
		}
		return false
	}
}

// OnToolchain matches platforms built with one of tcs.
func OnToolchain(tcs ...target.Toolchain) Predicate {
	return func(p target.Platform) bool {
		for _, tc := range tcs {
			if p.Toolchain == tc {
				return true
			}
		}
		return false
	}
}

// OnArch matches platforms of one of arches.
func OnArch(arches ...target.Arch) Predicate {
	return func(p target.Platform) bool {
		for _, a := range arches {
			if p.Arch == a {
				return true
			}
		}
		return false
	}
}

// All matches when every predicate matches.
func All(preds ...Predicate) Predicate {
	return func(p target.Platform) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Not inverts pred.
func Not(pred Predicate) Predicate {
	return func(p target.Platform) bool { return !pred(p) }
}

// Pair is the declaration and function-pointer spelling of one convention.
type Pair struct {
	Func Spelling
	Ptr  Spelling
}

// Rule is one row of the resolution table. A rule only answers for the
// fields it defines; a nil map or zero value leaves the decision to a later
// rule.
type Rule struct {
	Name        string
	Match       Predicate
	Conventions map[Convention]Pair
	// Linkage holds the spelling per direction. Presence matters: an empty
	// string is a valid "nothing extra" answer.
	Linkage map[Linkage]string
	Inline  Spelling
	Round   Round
}

func plain() Pair {
	return Pair{Func: "%R %N", Ptr: "%R (*%N)"}
}

func keyword(kw string) Pair {
	return Pair{Func: Spelling("%R " + kw + " %N"), Ptr: Spelling("%R (" + kw + " *%N)")}
}

// Portable is the fallback rule: no convention modifier, extern when
// importing, nothing when exporting, and the bias-trick rounding.
func Portable() Rule {
	convs := make(map[Convention]Pair, numConventions)
	for _, c := range Conventions() {
		convs[c] = plain()
	}
	return Rule{
		Name:        "portable",
		Match:       Always,
		Conventions: convs,
		Linkage:     map[Linkage]string{Export: "", Import: "extern"},
		Inline:      "%R __inline %N",
		Round:       RoundBias,
	}
}

// DefaultRules returns the built-in table, highest priority first. The
// portable fallback is appended by NewResolver.
func DefaultRules() []Rule {
	x87 := OnArch(target.ArchI386)
	return []Rule{
		{
			Name:  "windows",
			Match: OnOS(target.OSWindows),
			Conventions: map[Convention]Pair{
				Cdecl:    keyword("__cdecl"),
				Stdcall:  keyword("__stdcall"),
				Syscall:  keyword("__syscall"),
				Fastcall: keyword("__fastcall"),
				Safecall: keyword("__safecall"),
			},
			Linkage: map[Linkage]string{
				Export: "__declspec(dllexport)",
				Import: "__declspec(dllimport)",
			},
		},
		{
			// These compilers have a usable fastcall, so the language default uses it.
			Name:  "fastcall-default",
			Match: OnToolchain(target.ToolchainBorland, target.ToolchainWatcom, target.ToolchainPellesC, target.ToolchainMSVC),
			Conventions: map[Convention]Pair{
				Default: keyword("__fastcall"),
			},
		},
		{
			Name:   "gnu-inline",
			Match:  OnToolchain(target.ToolchainGCC, target.ToolchainClang, target.ToolchainLCC, target.ToolchainPellesC, target.ToolchainDMC, target.ToolchainTCC),
			Inline: "inline %R %N",
		},
		{
			// Borland rejects __fastcall before the return type and __inline after it.
			Name:   "ms-inline",
			Match:  OnToolchain(target.ToolchainBorland, target.ToolchainMSVC, target.ToolchainWatcom),
			Inline: "__inline %R %N",
		},
		{
			Name:  "c99-lrint",
			Match: OnToolchain(target.ToolchainLCC, target.ToolchainPellesC),
			Round: RoundLrint,
		},
		{
			Name:  "mingw-lrint",
			Match: All(OnOS(target.OSWindows), OnToolchain(target.ToolchainGCC, target.ToolchainClang)),
			Round: RoundLrint,
		},
		{
			Name:  "x87-fistp",
			Match: All(OnOS(target.OSWindows), x87, Not(OnToolchain(target.ToolchainBorland))),
			Round: RoundFistp,
		},
		{
			// The 64-bit MSVC runtime ships lrint and has no inline assembler.
			Name:  "msvc64-lrint",
			Match: All(OnToolchain(target.ToolchainMSVC), Not(x87)),
			Round: RoundLrint,
		},
	}
}
