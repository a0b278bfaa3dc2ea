package wasm

import (
	"bytes"
	"encoding/binary"
)

// Encode encodes the module to WebAssembly binary format
func (m *Module) Encode() []byte {
	var w bytes.Buffer

	// Magic number and version
	w.Write(binary.LittleEndian.AppendUint32(nil, Magic))
	w.Write(binary.LittleEndian.AppendUint32(nil, Version))

	// Memory section
	if len(m.Memories) > 0 {
		var sec bytes.Buffer
		WriteLEB128u(&sec, uint32(len(m.Memories)))
		for _, mem := range m.Memories {
			writeLimits(&sec, mem.Limits)
		}
		writeSection(&w, SectionMemory, sec.Bytes())
	}

	// Export section
	if len(m.Exports) > 0 {
		var sec bytes.Buffer
		WriteLEB128u(&sec, uint32(len(m.Exports)))
		for _, exp := range m.Exports {
			writeName(&sec, exp.Name)
			sec.WriteByte(exp.Kind)
			WriteLEB128u(&sec, exp.Idx)
		}
		writeSection(&w, SectionExport, sec.Bytes())
	}

	return w.Bytes()
}

func writeSection(w *bytes.Buffer, id byte, data []byte) {
	w.WriteByte(id)
	WriteLEB128u(w, uint32(len(data)))
	w.Write(data)
}

func writeName(w *bytes.Buffer, name string) {
	WriteLEB128u(w, uint32(len(name)))
	w.WriteString(name)
}

func writeLimits(w *bytes.Buffer, l Limits) {
	var flags byte
	if l.Max != nil {
		flags |= LimitsHasMax
	}
	if l.Shared {
		flags |= LimitsShared
	}
	if l.Memory64 {
		flags |= LimitsMemory64
	}
	w.WriteByte(flags)

	if l.Memory64 {
		WriteLEB128u64(w, l.Min)
		if l.Max != nil {
			WriteLEB128u64(w, *l.Max)
		}
	} else {
		WriteLEB128u(w, uint32(l.Min))
		if l.Max != nil {
			WriteLEB128u(w, uint32(*l.Max))
		}
	}
}
