package header

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/wippyai/rtbase/buffer"
	"github.com/wippyai/rtbase/callconv"
	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/fastconv"
	"github.com/wippyai/rtbase/numeric"
	"github.com/wippyai/rtbase/target"
)

// DefaultGuard is the include guard used when Options.Guard is empty.
const DefaultGuard = "RTBASE_H"

// Options controls what Write emits.
type Options struct {
	// Resolver overrides callconv.DefaultResolver().
	Resolver *callconv.Resolver
	// Guard is the include guard macro.
	Guard string
	// RequireNativeRound fails generation on targets that would fall back
	// to the bias trick.
	RequireNativeRound bool
	// Frames emits the call-frame record and the current-frame slot.
	Frames bool
	// ThreadLocalFrames declares the slot thread-local where the toolchain
	// can spell it.
	ThreadLocalFrames bool
}

type macro struct {
	Name string
	Body string
}

type typedef struct {
	C    string
	Name string
}

type data struct {
	Platform      string
	Guard         string
	Stdint        bool
	NeedMath      bool
	Typedefs      []typedef
	Int64Suffix   string
	Conventions   []macro
	Export        string
	Import        string
	Inline        string
	Round         string
	Bias          string
	MantissaWord  int
	SeqDeclSize   string
	HeaderSize    uint32
	Frames        bool
	ThreadVar     string
}

var tmpl = template.Must(template.New("header").Parse(headerTemplate))

// Write resolves p and writes its header to w.
func Write(w io.Writer, p target.Platform, opts Options) error {
	d, err := resolve(p, opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return errors.Wrap(errors.PhaseEmit, errors.KindInvalidData, err, "render header")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.PhaseEmit, errors.KindInvalidData, err, "write header")
	}

	Logger().Debug("header written",
		zap.String("target", p.String()),
		zap.String("round", d.Round),
		zap.Int("bytes", buf.Len()))
	return nil
}

// Render returns the header for p as a string.
func Render(p target.Platform, opts Options) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, p, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func resolve(p target.Platform, opts Options) (*data, error) {
	r := opts.Resolver
	if r == nil {
		r = callconv.DefaultResolver()
	}

	set, err := numeric.Resolve(p)
	if err != nil {
		return nil, err
	}
	tbl, err := r.ResolveAll(p)
	if err != nil {
		return nil, err
	}
	if opts.RequireNativeRound {
		if err := r.RequireNativeRound(p); err != nil {
			return nil, err
		}
	}
	lay, err := buffer.NewLayout(p)
	if err != nil {
		return nil, err
	}

	d := &data{
		Platform:     p.String(),
		Guard:        opts.Guard,
		Stdint:       set.Stdint,
		NeedMath:     tbl.Round == callconv.RoundLrint,
		Int64Suffix:  set.LiteralSuffix,
		Export:       tbl.Export,
		Import:       tbl.Import,
		Inline:       tbl.Inline.Macro(),
		Round:        tbl.Round.String(),
		Bias:         fastconv.BiasLiteral,
		MantissaWord: fastconv.MantissaWord(p.Order),
		SeqDeclSize:  seqDeclSize(p.Toolchain),
		HeaderSize:   lay.HeaderSize(),
		Frames:       opts.Frames,
	}
	if d.Guard == "" {
		d.Guard = DefaultGuard
	}
	if opts.Frames && opts.ThreadLocalFrames {
		d.ThreadVar = threadVar(p.Toolchain)
	}

	for _, t := range set.Types() {
		d.Typedefs = append(d.Typedefs, typedef{C: t.C, Name: t.Name})
	}
	for _, c := range callconv.Conventions() {
		d.Conventions = append(d.Conventions,
			macro{Name: c.Macro(), Body: tbl.Func(c).Macro()},
			macro{Name: c.Macro() + "_PTR", Body: tbl.Ptr(c).Macro()})
	}

	Logger().Debug("header resolved",
		zap.String("target", d.Platform),
		zap.Bool("stdint", d.Stdint),
		zap.Bool("single_convention", tbl.SingleConvention()))
	return d, nil
}

// seqDeclSize is the declared length of trailing data arrays. GNU C
// accepts a flexible member; other compilers need a large fixed bound.
func seqDeclSize(tc target.Toolchain) string {
	switch tc {
	case target.ToolchainGCC, target.ToolchainClang:
		return ""
	}
	return "1000000"
}

// threadVar spells thread-local storage, or "" when the toolchain has none.
func threadVar(tc target.Toolchain) string {
	switch tc {
	case target.ToolchainGCC, target.ToolchainClang:
		return "__thread"
	case target.ToolchainMSVC, target.ToolchainBorland, target.ToolchainWatcom,
		target.ToolchainLCC, target.ToolchainPellesC, target.ToolchainDMC:
		return "__declspec(thread)"
	}
	return ""
}
