package rtbase

// Memory represents the addressable memory a buffer lives in
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
}

// MemorySizer provides the current size of memory in bytes.
type MemorySizer interface {
	Size() uint32
}

// ZeroAllocator is the allocation primitive buffers are constructed with.
// Every byte of a returned region reads as zero.
type ZeroAllocator interface {
	AllocZeroed(size, align uint32) (uint32, error)
}
