package callconv

import (
	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/target"
)

// Triple is the full declaration-site answer for one convention and one
// linkage direction.
type Triple struct {
	Convention Convention
	Func       Spelling
	Ptr        Spelling
	Linkage    string
	// Rule names the table row that supplied Func and Ptr.
	Rule string
}

// Resolver maps logical conventions to target syntax. It is immutable after
// construction and safe for concurrent use.
type Resolver struct {
	rules []Rule
}

var defaultResolver = NewResolver(DefaultRules()...)

// DefaultResolver returns the resolver built from DefaultRules.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// NewResolver builds a resolver from rules in priority order. The portable
// fallback is always appended so every lookup terminates.
func NewResolver(rules ...Rule) *Resolver {
	rs := make([]Rule, 0, len(rules)+1)
	for _, r := range rules {
		if r.Match == nil {
			r.Match = Always
		}
		rs = append(rs, r)
	}
	rs = append(rs, Portable())
	return &Resolver{rules: rs}
}

// Rules returns the table in priority order, fallback included.
func (r *Resolver) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Resolve returns the spellings of c for direction l on p.
func (r *Resolver) Resolve(c Convention, l Linkage, p target.Platform) (Triple, error) {
	if err := p.Validate(); err != nil {
		return Triple{}, err
	}
	if !c.Valid() {
		return Triple{}, errors.New(errors.PhaseResolve, errors.KindInvalidInput).
			Target(p.String()).Value(int(c)).Detail("unknown calling convention %d", int(c)).Build()
	}
	pair, rule := r.pair(c, p)
	return Triple{
		Convention: c,
		Func:       pair.Func,
		Ptr:        pair.Ptr,
		Linkage:    r.linkage(l, p),
		Rule:       rule,
	}, nil
}

// Linkage returns the visibility spelling of l on p.
func (r *Resolver) Linkage(l Linkage, p target.Platform) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	return r.linkage(l, p), nil
}

// Inline returns the inline function spelling on p.
func (r *Resolver) Inline(p target.Platform) (Spelling, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	for _, rule := range r.rules {
		if rule.Inline != "" && rule.Match(p) {
			return rule.Inline, nil
		}
	}
	return Portable().Inline, nil
}

// Round returns how generated code rounds floats to integers on p.
func (r *Resolver) Round(p target.Platform) (Round, error) {
	if err := p.Validate(); err != nil {
		return roundUnset, err
	}
	return r.round(p), nil
}

// RequireNativeRound fails when p has no native rounding primitive. Builds
// that must not fall back to the bias trick call it during configuration.
func (r *Resolver) RequireNativeRound(p target.Platform) error {
	rnd, err := r.Round(p)
	if err != nil {
		return err
	}
	if !rnd.Native() {
		return errors.MissingPrimitive(p.String(), "lrint")
	}
	return nil
}

func (r *Resolver) pair(c Convention, p target.Platform) (Pair, string) {
	for _, rule := range r.rules {
		if pair, ok := rule.Conventions[c]; ok && rule.Match(p) {
			return pair, rule.Name
		}
	}
	return plain(), "portable"
}

func (r *Resolver) linkage(l Linkage, p target.Platform) string {
	for _, rule := range r.rules {
		if s, ok := rule.Linkage[l]; ok && rule.Match(p) {
			return s
		}
	}
	if l == Import {
		return "extern"
	}
	return ""
}

func (r *Resolver) round(p target.Platform) Round {
	for _, rule := range r.rules {
		if rule.Round != roundUnset && rule.Match(p) {
			return rule.Round
		}
	}
	return RoundBias
}
