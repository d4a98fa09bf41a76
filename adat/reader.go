package adat

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Package is a read-only view of a mounted ADAT package.
// It is immutable after Open and safe for concurrent reads.
type Package struct {
	backend Backend
	header  packageHeader
	entries map[string]*tocEntry
	order   []string
}

// EntryInfo describes a single TOC record
type EntryInfo struct {
	Path           string
	Size           int
	CompressedSize int
	DataOffset     int
}

// Open initializes a Package instance from a given backend (typically an ro-opened file)
func Open(backend Backend) (*Package, error) {
	p := new(Package)
	p.backend = backend
	p.entries = make(map[string]*tocEntry)
	p.order = make([]string, 0)

	err := p.readHeader()
	if err != nil {
		log.Errorf("error reading package header: %s", err)
		return nil, err
	}

	err = p.readTOC()
	if err != nil {
		log.Errorf("error reading package TOC: %s", err)
		return nil, err
	}
	return p, nil
}

func (p *Package) readHeader() error {
	raw := make([]byte, packageHeaderSize)
	_, err := p.backend.ReadAt(raw, 0)
	if err != nil {
		return err
	}

	buf := bytes.NewBuffer(raw)
	err = binary.Read(buf, binaryLayout, &p.header)
	if err != nil {
		return err
	}

	if p.header.Magic != packageMagic {
		return fmt.Errorf("ADAT magic mismatch, found %q", p.header.Magic[:])
	}

	if p.header.Version != FormatVersion {
		return fmt.Errorf("package version mismatch: file version is %d, software version is %d",
			p.header.Version, FormatVersion)
	}

	return nil
}

func (p *Package) readTOC() error {
	tocLength := int(p.header.TOCLength)
	if tocLength == 0 {
		return fmt.Errorf("package TOC is empty")
	}
	if tocLength%tocEntrySize != 0 {
		return fmt.Errorf("TOC length %d is not a multiple of entry size %d", tocLength, tocEntrySize)
	}

	raw := make([]byte, tocLength)
	_, err := p.backend.ReadAt(raw, int64(p.header.TOCOffset))
	if err != nil {
		return err
	}

	buf := bytes.NewBuffer(raw)
	numEntries := tocLength / tocEntrySize
	for i := 0; i < numEntries; i++ {
		entry := new(tocEntry)
		err = binary.Read(buf, binaryLayout, entry)
		if err != nil {
			return err
		}

		path := entry.path()
		if _, found := p.entries[path]; found {
			return fmt.Errorf("duplicate entry path '%s' in TOC", path)
		}
		p.entries[path] = entry
		p.order = append(p.order, path)
	}

	log.Debugf("mounted package: version %d, %d entries", p.header.Version, numEntries)
	return nil
}

// ListEntries returns entry paths in TOC order
func (p *Package) ListEntries() []string {
	paths := make([]string, len(p.order))
	copy(paths, p.order)
	return paths
}

// NumEntries returns the number of entries in the package TOC
func (p *Package) NumEntries() int {
	return len(p.order)
}

// Version returns the format version from the package header
func (p *Package) Version() int {
	return int(p.header.Version)
}

// Stat returns TOC metadata of the entry stored under a given path
func (p *Package) Stat(path string) (EntryInfo, error) {
	entry, found := p.entries[path]
	if !found {
		return EntryInfo{}, fmt.Errorf("entry '%s' not found", path)
	}
	return EntryInfo{
		Path:           path,
		Size:           int(entry.DecompressedLength),
		CompressedSize: int(entry.CompressedLength),
		DataOffset:     int(entry.DataOffset),
	}, nil
}

// ReadEntry reads and decompresses the entry stored under a given path
func (p *Package) ReadEntry(path string) ([]byte, error) {
	entry, found := p.entries[path]
	if !found {
		return nil, fmt.Errorf("entry '%s' not found", path)
	}

	log.Debugf("reading entry %s: %d compressed bytes at %d", path, entry.CompressedLength, entry.DataOffset)
	compressed := make([]byte, entry.CompressedLength)
	_, err := p.backend.ReadAt(compressed, int64(entry.DataOffset))
	if err != nil {
		return nil, err
	}

	data, err := inflate(bytes.NewBuffer(compressed))
	if err != nil {
		return nil, fmt.Errorf("error decompressing entry '%s': %s", path, err)
	}

	if len(data) != int(entry.DecompressedLength) {
		return nil, fmt.Errorf("entry '%s' decompressed to %d bytes, TOC declares %d",
			path, len(data), entry.DecompressedLength)
	}

	return data, nil
}

// ReadTextEntry reads the entry stored under a given path as a string
func (p *Package) ReadTextEntry(path string) (string, error) {
	data, err := p.ReadEntry(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
