package wasm

import "fmt"

// Validate checks the module for structural validity.
func (m *Module) Validate() error {
	for i := range m.Memories {
		if err := validateMemoryType(&m.Memories[i], i); err != nil {
			return err
		}
	}
	return m.validateExports()
}

func (m *Module) validateExports() error {
	seen := make(map[string]bool)
	for i, exp := range m.Exports {
		if seen[exp.Name] {
			return fmt.Errorf("duplicate export name %q at index %d", exp.Name, i)
		}
		seen[exp.Name] = true
		if exp.Kind != KindMemory {
			return fmt.Errorf("export %q: kind %d is not supported", exp.Name, exp.Kind)
		}
		if exp.Idx >= uint32(len(m.Memories)) {
			return fmt.Errorf("export %q references invalid memory index %d", exp.Name, exp.Idx)
		}
	}
	return nil
}

func validateMemoryType(mem *MemoryType, idx int) error {
	maxPages := MemoryMaxPages32
	if mem.Limits.Memory64 {
		maxPages = MemoryMaxPages64
	}

	// Shared memory requires maximum limit
	if mem.Limits.Shared && mem.Limits.Max == nil {
		return fmt.Errorf("memory %d: shared memory must have maximum limit", idx)
	}
	if mem.Limits.Min > maxPages {
		return fmt.Errorf("memory %d: min pages %d exceeds maximum %d", idx, mem.Limits.Min, maxPages)
	}
	if mem.Limits.Max != nil {
		if *mem.Limits.Max > maxPages {
			return fmt.Errorf("memory %d: max pages %d exceeds maximum %d", idx, *mem.Limits.Max, maxPages)
		}
		if *mem.Limits.Max < mem.Limits.Min {
			return fmt.Errorf("memory %d: max pages %d below min %d", idx, *mem.Limits.Max, mem.Limits.Min)
		}
	}
	return nil
}
