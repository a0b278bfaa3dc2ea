package buffer

import (
	"fmt"

	"github.com/wippyai/rtbase/errors"
)

// Header is the {length, capacity} prefix of every dynamic buffer.
type Header struct {
	Len int
	Cap int
}

// Validate checks 0 <= Len <= Cap.
func (h Header) Validate() error {
	switch {
	case h.Cap < 0:
		return errors.InvariantViolated(errors.PhaseLayout, []string{"header", "cap"},
			fmt.Sprintf("negative capacity %d", h.Cap))
	case h.Len < 0:
		return errors.InvariantViolated(errors.PhaseLayout, []string{"header", "len"},
			fmt.Sprintf("negative length %d", h.Len))
	case h.Len > h.Cap:
		return errors.InvariantViolated(errors.PhaseLayout, []string{"header", "len"},
			fmt.Sprintf("length %d exceeds capacity %d", h.Len, h.Cap))
	}
	return nil
}

// Dynamic is any buffer carrying a Header over a data region.
type Dynamic interface {
	Hdr() *Header
	// RegionLen is the number of elements in the data region.
	RegionLen() int
}

// Check validates the header of d and that its capacity matches the data
// region behind it.
func Check(d Dynamic) error {
	h := d.Hdr()
	if err := h.Validate(); err != nil {
		return err
	}
	if n := d.RegionLen(); h.Cap != n {
		return errors.InvariantViolated(errors.PhaseLayout, []string{"header", "cap"},
			fmt.Sprintf("capacity %d does not match region of %d", h.Cap, n))
	}
	return nil
}

// Clear sets the length to zero, keeping capacity and region.
func Clear(d Dynamic) {
	d.Hdr().Len = 0
}

// SetLen sets the length to n, which must lie in [0, Cap]. Only the header
// changes; elements between the old and new length keep their bytes. A
// header that no longer matches its region is reported, not adjusted.
func SetLen(d Dynamic, n int) error {
	if err := Check(d); err != nil {
		return err
	}
	h := d.Hdr()
	if n < 0 || n > h.Cap {
		return errors.OutOfBounds(errors.PhaseLayout, []string{"header", "len"}, n, h.Cap+1)
	}
	h.Len = n
	return nil
}

// Remaining returns Cap - Len, or 0 when the header is inconsistent.
func Remaining(d Dynamic) int {
	if Check(d) != nil {
		return 0
	}
	h := d.Hdr()
	return h.Cap - h.Len
}

// live bounds a header length by the region it describes.
func live(n, region int) int {
	return min(max(n, 0), region)
}

func newHeader(capacity int) (Header, error) {
	if capacity < 0 {
		return Header{}, errors.New(errors.PhaseLayout, errors.KindInvalidInput).
			Path("capacity").Value(capacity).Detail("negative capacity %d", capacity).Build()
	}
	return Header{Cap: capacity}, nil
}
