package adat

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io/ioutil"
)

func deflate(data []byte) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}

func inflate(data *bytes.Buffer) ([]byte, error) {
	zr, err := zlib.NewReader(data)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	out, err := ioutil.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// packPath packs a path string into the fixed-size NUL-padded TOC field
func packPath(path string) ([PathFieldSize]byte, error) {
	var field [PathFieldSize]byte
	if len(path) > PathFieldSize {
		return field, fmt.Errorf("path '%s' does not fit into the %d-byte TOC path field", path, PathFieldSize)
	}
	copy(field[:], path)
	return field, nil
}
