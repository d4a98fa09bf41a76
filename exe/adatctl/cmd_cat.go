package main

import (
	"log"
	"os"

	"github.com/sombr/adatpack/adat"
)

func runCat(f *os.File, path string) {
	defer f.Close()

	pkg, err := adat.Open(f)
	if err != nil {
		log.Fatalf("error mounting package: %s", err)
	}

	data, err := pkg.ReadEntry(path)
	if err != nil {
		log.Fatalf("error reading entry %s: %s", path, err)
	}

	_, err = os.Stdout.Write(data)
	if err != nil {
		log.Fatalf("error writing to stdout: %s", err)
	}
}
