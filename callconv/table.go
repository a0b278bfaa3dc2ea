package callconv

import "github.com/wippyai/rtbase/target"

// Table is every answer the resolver gives for one platform.
type Table struct {
	Platform target.Platform
	Pairs    [numConventions]Pair
	Rules    [numConventions]string
	Export   string
	Import   string
	Inline   Spelling
	Round    Round
}

// ResolveAll resolves the complete table for p.
func (r *Resolver) ResolveAll(p target.Platform) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	t := &Table{
		Platform: p,
		Export:   r.linkage(Export, p),
		Import:   r.linkage(Import, p),
		Round:    r.round(p),
	}
	for _, c := range Conventions() {
		t.Pairs[c], t.Rules[c] = r.pair(c, p)
	}
	inline, err := r.Inline(p)
	if err != nil {
		return nil, err
	}
	t.Inline = inline
	return t, nil
}

// Func returns the declaration spelling of c.
func (t *Table) Func(c Convention) Spelling {
	return t.Pairs[c].Func
}

// Ptr returns the function-pointer spelling of c.
func (t *Table) Ptr(c Convention) Spelling {
	return t.Pairs[c].Ptr
}

// Linkage returns the spelling of l.
func (t *Table) Linkage(l Linkage) string {
	if l == Import {
		return t.Import
	}
	return t.Export
}

// Triple assembles the answer for c and l.
func (t *Table) Triple(c Convention, l Linkage) Triple {
	return Triple{
		Convention: c,
		Func:       t.Pairs[c].Func,
		Ptr:        t.Pairs[c].Ptr,
		Linkage:    t.Linkage(l),
		Rule:       t.Rules[c],
	}
}

// SingleConvention reports whether every convention resolves to the same
// spelling, as on platforms with one hardware calling convention.
func (t *Table) SingleConvention() bool {
	for _, p := range t.Pairs[1:] {
		if p != t.Pairs[0] {
			return false
		}
	}
	return true
}
