package buffer

import (
	"github.com/wippyai/rtbase/errors"
)

// Seq is a dynamic buffer of T.
type Seq[T any] struct {
	Header
	data []T
}

// NewSeq returns an empty sequence with a zeroed region of capacity
// elements.
func NewSeq[T any](capacity int) (*Seq[T], error) {
	h, err := newHeader(capacity)
	if err != nil {
		return nil, err
	}
	return &Seq[T]{Header: h, data: make([]T, capacity)}, nil
}

// SeqOf returns a full sequence holding a copy of items.
func SeqOf[T any](items ...T) *Seq[T] {
	data := make([]T, len(items))
	copy(data, items)
	return &Seq[T]{Header: Header{Len: len(items), Cap: len(items)}, data: data}
}

// Hdr implements Dynamic.
func (s *Seq[T]) Hdr() *Header {
	return &s.Header
}

// RegionLen implements Dynamic.
func (s *Seq[T]) RegionLen() int {
	return len(s.data)
}

// Items returns the live elements. The slice aliases the region.
func (s *Seq[T]) Items() []T {
	return s.data[:live(s.Len, len(s.data))]
}

// At returns element i.
func (s *Seq[T]) At(i int) (T, error) {
	if n := live(s.Len, len(s.data)); i < 0 || i >= n {
		var zero T
		return zero, errors.OutOfBounds(errors.PhaseLayout, []string{"seq"}, i, n)
	}
	return s.data[i], nil
}

// Set replaces element i.
func (s *Seq[T]) Set(i int, v T) error {
	if n := live(s.Len, len(s.data)); i < 0 || i >= n {
		return errors.OutOfBounds(errors.PhaseLayout, []string{"seq"}, i, n)
	}
	s.data[i] = v
	return nil
}

// Append adds items after the live elements. It fails without modifying s
// if they do not fit.
func (s *Seq[T]) Append(items ...T) error {
	if err := Check(s); err != nil {
		return err
	}
	if len(items) > s.Cap-s.Len {
		return errors.OutOfBounds(errors.PhaseLayout, []string{"seq", "append"}, s.Len+len(items), s.Cap+1)
	}
	s.Len += copy(s.data[s.Len:], items)
	return nil
}

// Clone returns an independent copy with the same header.
func (s *Seq[T]) Clone() *Seq[T] {
	c := &Seq[T]{Header: s.Header, data: make([]T, len(s.data))}
	copy(c.data, s.Items())
	return c
}

// Reset zeroes the whole region and clears the length.
func (s *Seq[T]) Reset() {
	clear(s.data)
	s.Len = 0
}
