package buffer

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/rtbase/buffer/internal/layout"
	"github.com/wippyai/rtbase/target"
)

// Slot is the size and alignment of one element in a data region.
type Slot struct {
	Size  uint32
	Align uint32
}

// TextSlot is the slot of a text character.
var TextSlot = Slot{Size: 1, Align: 1}

// ElemSlot computes the slot of element type t on p. Text and sequence
// values inside an element occupy one target pointer.
func ElemSlot(t wit.Type, p target.Platform) (Slot, error) {
	if err := p.Validate(); err != nil {
		return Slot{}, err
	}
	maxAlign := uint32(8)
	if p.Arch == target.ArchI386 && !p.IsWindows() {
		maxAlign = 4
	}
	info, err := layout.NewCalculator(uint32(p.PtrSize), maxAlign).Calculate(t)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Size: info.Size, Align: info.Align}, nil
}
