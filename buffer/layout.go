package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/wippyai/rtbase"
	"github.com/wippyai/rtbase/buffer/internal/layout"
	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/target"
)

// Layout is the linear-memory representation of dynamic buffers on one
// target.
type Layout struct {
	order    binary.ByteOrder
	Platform target.Platform
	word     uint32
}

// NewLayout returns the layout for p.
func NewLayout(p target.Platform) (*Layout, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.PtrSize != 4 && p.PtrSize != 8 {
		return nil, errors.UnsupportedWidth(p.String(), "word", 8, p.PtrSize)
	}
	return &Layout{order: p.Order.Binary(), Platform: p, word: uint32(p.PtrSize)}, nil
}

// WordSize is the width of each header field.
func (l *Layout) WordSize() uint32 {
	return l.word
}

// HeaderSize is the size of the {length, capacity} prefix.
func (l *Layout) HeaderSize() uint32 {
	return 2 * l.word
}

// DataOffset is the offset of the data region from the buffer start.
func (l *Layout) DataOffset(s Slot) uint32 {
	return layout.AlignTo(l.HeaderSize(), max(s.Align, 1))
}

func (l *Layout) regionSize(capacity int, s Slot) (uint32, error) {
	if capacity < 0 {
		return 0, errors.New(errors.PhaseLayout, errors.KindInvalidInput).
			Path("capacity").Value(capacity).Detail("negative capacity %d", capacity).Build()
	}
	n := uint64(capacity) * uint64(s.Size)
	if n > math.MaxUint32 {
		return 0, errors.AllocationFailed(errors.PhaseLayout, math.MaxUint32, s.Align)
	}
	return uint32(n), nil
}

func (l *Layout) alloc(mem rtbase.Memory, za rtbase.ZeroAllocator, capacity int, s Slot, extra uint32) (uint32, error) {
	if za == nil {
		return 0, errors.NotInitialized(errors.PhaseLayout, "allocator")
	}
	region, err := l.regionSize(capacity, s)
	if err != nil {
		return 0, err
	}
	total := uint64(l.DataOffset(s)) + uint64(region) + uint64(extra)
	if total > math.MaxUint32 {
		return 0, errors.AllocationFailed(errors.PhaseLayout, math.MaxUint32, s.Align)
	}
	align := max(l.word, s.Align)
	ptr, err := za.AllocZeroed(uint32(total), align)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseLayout, errors.KindAllocation, err, "allocate buffer")
	}
	if err := l.WriteHeader(mem, ptr, Header{Cap: capacity}); err != nil {
		return 0, err
	}
	return ptr, nil
}

// Alloc constructs an empty buffer of capacity elements through the
// allocator collaborator. The region is zeroed by the allocator.
func (l *Layout) Alloc(mem rtbase.Memory, za rtbase.ZeroAllocator, capacity int, s Slot) (uint32, error) {
	return l.alloc(mem, za, capacity, s, 0)
}

// AllocText constructs an empty text of capacity characters followed by a
// NUL terminator.
func (l *Layout) AllocText(mem rtbase.Memory, za rtbase.ZeroAllocator, capacity int) (uint32, error) {
	return l.alloc(mem, za, capacity, TextSlot, 1)
}

// WriteLiteral constructs a full text holding s.
func (l *Layout) WriteLiteral(mem rtbase.Memory, za rtbase.ZeroAllocator, s string) (uint32, error) {
	ptr, err := l.AllocText(mem, za, len(s))
	if err != nil {
		return 0, err
	}
	if err := l.WriteHeader(mem, ptr, Header{Len: len(s), Cap: len(s)}); err != nil {
		return 0, err
	}
	if err := mem.Write(ptr+l.DataOffset(TextSlot), []byte(s)); err != nil {
		return 0, err
	}
	return ptr, nil
}

// WriteText constructs a copy of t.
func (l *Layout) WriteText(mem rtbase.Memory, za rtbase.ZeroAllocator, t *Text) (uint32, error) {
	ptr, err := l.AllocText(mem, za, t.Cap)
	if err != nil {
		return 0, err
	}
	if err := l.WriteHeader(mem, ptr, t.Header); err != nil {
		return 0, err
	}
	if err := mem.Write(ptr+l.DataOffset(TextSlot), t.Bytes()); err != nil {
		return 0, err
	}
	return ptr, nil
}

// ReadHeader decodes and validates the header at ptr.
func (l *Layout) ReadHeader(mem rtbase.Memory, ptr uint32) (Header, error) {
	raw, err := mem.Read(ptr, l.HeaderSize())
	if err != nil {
		return Header{}, err
	}
	n, err := l.decodeWord(raw[:l.word])
	if err != nil {
		return Header{}, err
	}
	c, err := l.decodeWord(raw[l.word:])
	if err != nil {
		return Header{}, err
	}
	h := Header{Len: n, Cap: c}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// WriteHeader validates h and encodes it at ptr.
func (l *Layout) WriteHeader(mem rtbase.Memory, ptr uint32, h Header) error {
	if err := h.Validate(); err != nil {
		return err
	}
	raw := make([]byte, l.HeaderSize())
	if err := l.encodeWord(raw[:l.word], h.Len); err != nil {
		return err
	}
	if err := l.encodeWord(raw[l.word:], h.Cap); err != nil {
		return err
	}
	return mem.Write(ptr, raw)
}

// ReadText copies the text at ptr out of memory.
func (l *Layout) ReadText(mem rtbase.Memory, ptr uint32) (*Text, error) {
	h, err := l.ReadHeader(mem, ptr)
	if err != nil {
		return nil, err
	}
	raw, err := mem.Read(ptr+l.DataOffset(TextSlot), uint32(h.Cap))
	if err != nil {
		return nil, err
	}
	data := make([]byte, h.Cap)
	copy(data, raw)
	return &Text{Header: h, data: data}, nil
}

// ZeroData zeroes the whole region of the buffer at ptr.
func (l *Layout) ZeroData(mem rtbase.Memory, ptr uint32, s Slot) error {
	h, err := l.ReadHeader(mem, ptr)
	if err != nil {
		return err
	}
	n, err := l.regionSize(h.Cap, s)
	if err != nil {
		return err
	}
	return mem.Write(ptr+l.DataOffset(s), make([]byte, n))
}

// EqualData compares the first n elements of the buffers at a and b. n == 0
// is always equal; n beyond either capacity is never equal.
func (l *Layout) EqualData(mem rtbase.Memory, a, b uint32, s Slot, n int) (bool, error) {
	if n == 0 {
		return true, nil
	}
	ha, err := l.ReadHeader(mem, a)
	if err != nil {
		return false, err
	}
	hb, err := l.ReadHeader(mem, b)
	if err != nil {
		return false, err
	}
	if n < 0 || n > ha.Cap || n > hb.Cap {
		return false, nil
	}
	size, err := l.regionSize(n, s)
	if err != nil {
		return false, err
	}
	ra, err := mem.Read(a+l.DataOffset(s), size)
	if err != nil {
		return false, err
	}
	rb, err := mem.Read(b+l.DataOffset(s), size)
	if err != nil {
		return false, err
	}
	return EqualMem(ra, rb, int(size)), nil
}

func (l *Layout) decodeWord(b []byte) (int, error) {
	if l.word == 4 {
		return int(int32(l.order.Uint32(b))), nil
	}
	v := int64(l.order.Uint64(b))
	if !fitsInt(v, strconv.IntSize) {
		return 0, errors.OutOfRange(errors.PhaseLayout, v, math.MinInt, math.MaxInt)
	}
	return int(v), nil
}

// fitsInt reports whether v is representable in a signed integer of bits.
func fitsInt(v int64, bits int) bool {
	if bits >= 64 {
		return true
	}
	lim := int64(1) << (bits - 1)
	return v >= -lim && v < lim
}

func (l *Layout) encodeWord(b []byte, v int) error {
	if l.word == 4 {
		if v > math.MaxInt32 {
			return errors.OutOfRange(errors.PhaseLayout, v, 0, math.MaxInt32)
		}
		l.order.PutUint32(b, uint32(int32(v)))
		return nil
	}
	l.order.PutUint64(b, uint64(int64(v)))
	return nil
}

// String describes the layout, e.g. "x86_64-linux-gcc: header 16 bytes, little".
func (l *Layout) String() string {
	return fmt.Sprintf("%s: header %d bytes, %s", l.Platform, l.HeaderSize(), l.Platform.Order)
}
