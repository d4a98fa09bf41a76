package adat

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const (
	// DefaultFixtureFileName holds the file name the fixture generator writes by default
	DefaultFixtureFileName = "TEST.dat"
	// FixtureEntryPath holds the path of the single entry in the fixture package
	FixtureEntryPath = "some/path/foo.txt"

	fixtureLine      = "hello world from a test file!"
	fixtureLineCount = 5
)

// FixturePayload returns the canonical plaintext stored in the test fixture:
// a leading newline followed by numbered greeting lines
func FixturePayload() []byte {
	var buf bytes.Buffer
	buf.WriteByte('\n')
	for i := 1; i <= fixtureLineCount; i++ {
		fmt.Fprintf(&buf, "%d %s\n", i, fixtureLine)
	}
	return buf.Bytes()
}

// WriteFixture serializes the canonical single-entry test package into w
func WriteFixture(w io.Writer) error {
	pw := NewWriter()
	err := pw.Add(FixtureEntryPath, FixturePayload())
	if err != nil {
		return err
	}
	_, err = pw.WriteTo(w)
	return err
}

// GenerateFixture creates or overwrites a file with the canonical test
// package. The output is byte-identical across runs.
func GenerateFixture(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating fixture file: %s", err)
	}

	err = WriteFixture(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
