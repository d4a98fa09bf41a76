package adat

import "io"

// MemBackend represents an in-memory package backend
// mostly for testing purposes
type MemBackend struct {
	data []byte
	idx  int
}

func NewMemBackend() *MemBackend {
	mb := new(MemBackend)
	mb.data = make([]byte, 0, 65536)
	mb.idx = 0
	return mb
}

func (mb *MemBackend) ReadAt(p []byte, off int64) (int, error) {
	off32 := int(off) // sure it won't overflow
	if off32 >= len(mb.data) {
		return 0, io.EOF
	}
	n := copy(p, mb.data[off32:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (mb *MemBackend) Write(p []byte) (int, error) {
	appendLen := mb.idx + len(p) - len(mb.data)
	if appendLen > 0 {
		mb.data = append(mb.data, make([]byte, appendLen)...)
	}
	copy(mb.data[mb.idx:mb.idx+len(p)], p)
	mb.idx += len(p)
	return len(p), nil
}

// Bytes returns the raw backend contents
func (mb *MemBackend) Bytes() []byte {
	return mb.data
}

// Len returns the size of the backend contents
func (mb *MemBackend) Len() int {
	return len(mb.data)
}
