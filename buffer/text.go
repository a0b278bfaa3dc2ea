package buffer

import (
	"github.com/wippyai/rtbase/errors"
)

// Text is a dynamic buffer of single-byte characters.
type Text struct {
	Header
	data []byte
}

var _ Dynamic = (*Text)(nil)

// NewText returns an empty text with a zeroed region of capacity bytes.
func NewText(capacity int) (*Text, error) {
	h, err := newHeader(capacity)
	if err != nil {
		return nil, err
	}
	return &Text{Header: h, data: make([]byte, capacity)}, nil
}

// Literal returns a text holding s with Len == Cap == len(s).
func Literal(s string) *Text {
	return &Text{
		Header: Header{Len: len(s), Cap: len(s)},
		data:   []byte(s),
	}
}

// Hdr implements Dynamic.
func (t *Text) Hdr() *Header {
	return &t.Header
}

// RegionLen implements Dynamic.
func (t *Text) RegionLen() int {
	return len(t.data)
}

// Bytes returns the live characters. The slice aliases the region.
func (t *Text) Bytes() []byte {
	return t.data[:live(t.Len, len(t.data))]
}

// Region returns the whole data region, Cap bytes long.
func (t *Text) Region() []byte {
	return t.data
}

// String returns a copy of the live characters.
func (t *Text) String() string {
	return string(t.Bytes())
}

// Append copies p after the live characters. It fails without modifying t
// if p does not fit in the remaining capacity.
func (t *Text) Append(p []byte) error {
	if err := Check(t); err != nil {
		return err
	}
	if len(p) > t.Cap-t.Len {
		return errors.OutOfBounds(errors.PhaseLayout, []string{"text", "append"}, t.Len+len(p), t.Cap+1)
	}
	t.Len += copy(t.data[t.Len:], p)
	return nil
}

// AppendString is Append for a string.
func (t *Text) AppendString(s string) error {
	return t.Append([]byte(s))
}

// Clone returns an independent copy with the same header.
func (t *Text) Clone() *Text {
	c := &Text{Header: t.Header, data: make([]byte, len(t.data))}
	copy(c.data, t.Bytes())
	return c
}

// Equal reports whether t and o hold the same characters.
func (t *Text) Equal(o *Text) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Len == o.Len && EqualMem(t.data, o.data, t.Len)
}
