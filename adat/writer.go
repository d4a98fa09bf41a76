package adat

import (
	"encoding/binary"
	"fmt"
	"io"

	logging "github.com/op/go-logging"
)

var (
	log = logging.MustGetLogger("adat")
)

// Writer accumulates entries and serializes them
// into a single ADAT package
type Writer struct {
	entries []*pendingEntry
}

type pendingEntry struct {
	path       string
	plainSize  int
	compressed []byte
}

// NewWriter creates an empty package writer
func NewWriter() *Writer {
	w := new(Writer)
	w.entries = make([]*pendingEntry, 0)
	return w
}

// Add compresses data and schedules it to be stored under a given path.
// Entries are stored in the order they were added.
func (w *Writer) Add(path string, data []byte) error {
	if _, err := packPath(path); err != nil {
		return err
	}

	for _, e := range w.entries {
		if e.path == path {
			return fmt.Errorf("duplicate entry path '%s'", path)
		}
	}

	buf, err := deflate(data)
	if err != nil {
		return fmt.Errorf("error compressing entry '%s': %s", path, err)
	}
	log.Debugf("added entry %s: %d bytes plain, %d bytes compressed", path, len(data), buf.Len())

	w.entries = append(w.entries, &pendingEntry{
		path:       path,
		plainSize:  len(data),
		compressed: buf.Bytes(),
	})
	return nil
}

// NumEntries returns the number of entries scheduled so far
func (w *Writer) NumEntries() int {
	return len(w.entries)
}

// WriteTo serializes the package into out: header first, then the TOC,
// then every compressed payload back to back. Returns the total number
// of bytes written.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if len(w.entries) == 0 {
		return 0, fmt.Errorf("package must contain at least one entry")
	}

	tocLength := len(w.entries) * tocEntrySize
	header := packageHeader{
		Magic:     packageMagic,
		TOCOffset: uint32(packageHeaderSize),
		TOCLength: uint32(tocLength),
		Version:   FormatVersion,
	}

	var written int64

	err := binary.Write(out, binaryLayout, &header)
	if err != nil {
		return written, fmt.Errorf("error writing package header: %s", err)
	}
	written += int64(packageHeaderSize)

	dataOffset := packageHeaderSize + tocLength
	for _, e := range w.entries {
		field, err := packPath(e.path)
		if err != nil {
			return written, err
		}
		record := tocEntry{
			Path:               field,
			DataOffset:         uint32(dataOffset),
			DecompressedLength: uint32(e.plainSize),
			CompressedLength:   uint32(len(e.compressed)),
			Reserved:           0,
		}
		err = binary.Write(out, binaryLayout, &record)
		if err != nil {
			return written, fmt.Errorf("error writing TOC entry '%s': %s", e.path, err)
		}
		written += int64(tocEntrySize)
		dataOffset += len(e.compressed)
	}

	for _, e := range w.entries {
		n, err := out.Write(e.compressed)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("error writing payload of '%s': %s", e.path, err)
		}
	}

	log.Debugf("package serialized: %d entries, %d bytes total", len(w.entries), written)
	return written, nil
}
