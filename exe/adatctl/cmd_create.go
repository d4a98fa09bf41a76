package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/sombr/adatpack/adat"
)

func runCreate(f *os.File, inputs []string) {
	defer f.Close()

	pw := adat.NewWriter()
	for _, input := range inputs {
		data, err := ioutil.ReadFile(input)
		if err != nil {
			log.Fatalf("error reading input file %s: %s", input, err)
		}
		err = pw.Add(input, data)
		if err != nil {
			log.Fatalf("error adding entry %s: %s", input, err)
		}
	}

	written, err := pw.WriteTo(f)
	if err != nil {
		log.Fatalf("error writing package: %s", err)
	}

	fmt.Printf("Package created.\nFile size: %d bytes\nEntries:   %d\n", written, pw.NumEntries())
}
