package adat

import (
	"encoding/binary"
	"io"
)

type packageHeader struct {
	Magic     [4]byte
	TOCOffset uint32
	TOCLength uint32
	Version   uint32
}

type tocEntry struct {
	Path               [PathFieldSize]byte
	DataOffset         uint32
	DecompressedLength uint32
	CompressedLength   uint32
	Reserved           uint32
}

// Backend represents an interface of a package data source (typically a file)
type Backend interface {
	io.ReaderAt
}

const (
	// PathFieldSize holds the fixed size of the TOC path field
	PathFieldSize = 128
	// FormatVersion holds the ADAT format version this package produces and accepts
	FormatVersion = 9
)

var (
	packageMagic      = [4]byte{'A', 'D', 'A', 'T'}
	packageHeaderSize = binary.Size(packageHeader{})
	tocEntrySize      = binary.Size(tocEntry{})
	binaryLayout      = binary.LittleEndian
)

func (e *tocEntry) path() string {
	end := len(e.Path)
	for end > 0 && e.Path[end-1] == 0 {
		end--
	}
	return string(e.Path[:end])
}
