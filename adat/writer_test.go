package adat

import (
	"bytes"
	"strings"
	"testing"
)

var (
	shortData = []byte(` Seeker is the interface that wraps the basic Seek method.
Seek sets the offset for the next Read or Write to offset, interpreted according to whence: SeekStart means relative to the start of the file, SeekCurrent means relative to the current offset, and SeekEnd means relative to the end. Seek returns the new offset relative to the start of the file and an error, if any.
Seeking to an offset before the start of the file is an error. Seeking to any positive offset is legal, but the behavior of subsequent I/O operations on the underlying object is implementation-dependent. `)
	longData = []byte(` Reader is the interface that wraps the basic Read method.
Read reads up to len(p) bytes into p. It returns the number of bytes read (0 <= n <= len(p)) and any error encountered. Even if Read returns n < len(p), it may use all of p as scratch space during the call. If some data is available but not len(p) bytes, Read conventionally returns what is available instead of waiting for more.
When Read encounters an error or end-of-file condition after successfully reading n > 0 bytes, it returns the number of bytes read. It may return the (non-nil) error from the same call or return the error (and n == 0) from a subsequent call.
Callers should always process the n > 0 bytes returned before considering the error err. Doing so correctly handles I/O errors that happen after reading some bytes and also both of the allowed EOF behaviors.
Implementations must not retain p. `)
)

func buildPackage(t *testing.T, entries map[string][]byte, order []string) *MemBackend {
	pw := NewWriter()
	for _, path := range order {
		err := pw.Add(path, entries[path])
		if err != nil {
			t.Fatal(err)
		}
	}
	mb := NewMemBackend()
	_, err := pw.WriteTo(mb)
	if err != nil {
		t.Fatal(err)
	}
	return mb
}

func TestMultiEntryLayout(t *testing.T) {
	entries := map[string][]byte{
		"docs/seeker.txt": shortData,
		"docs/reader.txt": longData,
		"hello.txt":       []byte("hello"),
	}
	order := []string{"docs/seeker.txt", "docs/reader.txt", "hello.txt"}

	mb := buildPackage(t, entries, order)
	raw := mb.Bytes()

	tocLength := binaryLayout.Uint32(raw[8:12])
	if int(tocLength) != 3*tocEntrySize {
		t.Errorf("toc length is expected to be %d, got %d instead", 3*tocEntrySize, tocLength)
	}

	expectedOffset := packageHeaderSize + 3*tocEntrySize
	totalCompressed := 0
	for i := range order {
		base := packageHeaderSize + i*tocEntrySize
		path := string(bytes.TrimRight(raw[base:base+PathFieldSize], "\x00"))
		if path != order[i] {
			t.Errorf("entry %d path is expected to be %s, got %s instead", i, order[i], path)
		}

		dataOffset := int(binaryLayout.Uint32(raw[base+PathFieldSize : base+PathFieldSize+4]))
		if dataOffset != expectedOffset {
			t.Errorf("entry %d data offset is expected to be %d, got %d instead",
				i, expectedOffset, dataOffset)
		}

		decompressedLength := int(binaryLayout.Uint32(raw[base+PathFieldSize+4 : base+PathFieldSize+8]))
		if decompressedLength != len(entries[order[i]]) {
			t.Errorf("entry %d decompressed length is expected to be %d, got %d instead",
				i, len(entries[order[i]]), decompressedLength)
		}

		compressedLength := int(binaryLayout.Uint32(raw[base+PathFieldSize+8 : base+PathFieldSize+12]))
		expectedOffset += compressedLength
		totalCompressed += compressedLength
	}

	expectedSize := packageHeaderSize + 3*tocEntrySize + totalCompressed
	if mb.Len() != expectedSize {
		t.Errorf("package size is expected to be %d, got %d instead", expectedSize, mb.Len())
	}
}

func TestMultiEntryRoundTrip(t *testing.T) {
	entries := map[string][]byte{
		"docs/seeker.txt": shortData,
		"docs/reader.txt": longData,
	}
	order := []string{"docs/seeker.txt", "docs/reader.txt"}

	mb := buildPackage(t, entries, order)
	pkg, err := Open(mb)
	if err != nil {
		t.Fatal(err)
	}

	paths := pkg.ListEntries()
	if len(paths) != 2 {
		t.Fatalf("package is expected to hold 2 entries, got %d instead", len(paths))
	}
	for i, path := range order {
		if paths[i] != path {
			t.Errorf("entry %d is expected to be %s, got %s instead", i, path, paths[i])
		}

		data, err := pkg.ReadEntry(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != string(entries[path]) {
			t.Errorf("stored and recovered data don't match for %s", path)
		}

		info, err := pkg.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size != len(entries[path]) {
			t.Errorf("stat size of %s is expected to be %d, got %d instead",
				path, len(entries[path]), info.Size)
		}
	}

	// reading a path not present in the TOC
	_, err = pkg.ReadEntry("no/such/entry")
	if err == nil {
		t.Error("reading a missing entry should cause an error")
	}
}

func TestWriterValidation(t *testing.T) {
	pw := NewWriter()

	mb := NewMemBackend()
	_, err := pw.WriteTo(mb)
	if err == nil {
		t.Error("serializing an empty package should cause an error")
	}

	err = pw.Add(strings.Repeat("x", PathFieldSize+1), []byte("data"))
	if err == nil {
		t.Error("adding an oversized path should cause an error")
	}

	longest := strings.Repeat("y", PathFieldSize)
	err = pw.Add(longest, []byte("data"))
	if err != nil {
		t.Errorf("a path of exactly %d bytes should fit: %s", PathFieldSize, err)
	}

	err = pw.Add("a.txt", []byte("first"))
	if err != nil {
		t.Error(err)
	}
	err = pw.Add("a.txt", []byte("second"))
	if err == nil {
		t.Error("adding a duplicate path should cause an error")
	}

	mb = NewMemBackend()
	_, err = pw.WriteTo(mb)
	if err != nil {
		t.Fatal(err)
	}
	pkg, err := Open(mb)
	if err != nil {
		t.Fatal(err)
	}
	data, err := pkg.ReadEntry(longest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "data" {
		t.Error("stored and recovered data don't match")
	}
}

func TestReaderValidation(t *testing.T) {
	mb := buildPackage(t, map[string][]byte{"a.txt": shortData}, []string{"a.txt"})

	// corrupted magic
	corrupt := NewMemBackend()
	corrupt.Write(mb.Bytes())
	corrupt.data[0] = 'X'
	_, err := Open(corrupt)
	if err == nil {
		t.Error("opening a package with corrupted magic should cause an error")
	}

	// unsupported version
	corrupt = NewMemBackend()
	corrupt.Write(mb.Bytes())
	binaryLayout.PutUint32(corrupt.data[12:16], 7)
	_, err = Open(corrupt)
	if err == nil {
		t.Error("opening a package with a wrong version should cause an error")
	}

	// empty TOC
	corrupt = NewMemBackend()
	corrupt.Write(mb.Bytes())
	binaryLayout.PutUint32(corrupt.data[8:12], 0)
	_, err = Open(corrupt)
	if err == nil {
		t.Error("opening a package with an empty TOC should cause an error")
	}

	// TOC length not aligned to the entry size
	corrupt = NewMemBackend()
	corrupt.Write(mb.Bytes())
	binaryLayout.PutUint32(corrupt.data[8:12], 100)
	_, err = Open(corrupt)
	if err == nil {
		t.Error("opening a package with a misaligned TOC length should cause an error")
	}

	// declared decompressed length doesn't match the actual payload
	corrupt = NewMemBackend()
	corrupt.Write(mb.Bytes())
	base := packageHeaderSize + PathFieldSize
	binaryLayout.PutUint32(corrupt.data[base+4:base+8], uint32(len(shortData)+1))
	pkg, err := Open(corrupt)
	if err != nil {
		t.Fatal(err)
	}
	_, err = pkg.ReadEntry("a.txt")
	if err == nil {
		t.Error("reading an entry with a wrong declared length should cause an error")
	}
}

func TestIncompressibleRoundTrip(t *testing.T) {
	// deterministic pseudo-random bytes that zlib can barely shrink
	data := make([]byte, 4096)
	state := uint32(0x2545f491)
	for i := range data {
		state = state*1664525 + 1013904223
		data[i] = byte(state >> 24)
	}

	mb := buildPackage(t, map[string][]byte{"blob.bin": data}, []string{"blob.bin"})
	pkg, err := Open(mb)
	if err != nil {
		t.Fatal(err)
	}
	out, err := pkg.ReadEntry("blob.bin")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Error("stored and recovered binary data don't match")
	}
}
