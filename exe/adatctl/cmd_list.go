package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sombr/adatpack/adat"
)

func runList(f *os.File) {
	defer f.Close()

	pkg, err := adat.Open(f)
	if err != nil {
		log.Fatalf("error mounting package: %s", err)
	}

	fmt.Printf("Format version: %d\nEntries:        %d\n\n", pkg.Version(), pkg.NumEntries())
	for _, path := range pkg.ListEntries() {
		info, err := pkg.Stat(path)
		if err != nil {
			log.Fatalf("error reading TOC record of %s: %s", path, err)
		}
		fmt.Printf("%10d  %10d  %s\n", info.Size, info.CompressedSize, info.Path)
	}
}
