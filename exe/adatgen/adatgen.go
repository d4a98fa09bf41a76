package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sombr/adatpack/adat"
)

func main() {
	var outFilename string

	flag.StringVar(&outFilename, "f", adat.DefaultFixtureFileName, "output filename")
	flag.Parse()

	err := adat.GenerateFixture(outFilename)
	if err != nil {
		log.Fatalf("error writing fixture file: %s", err)
	}

	f, err := os.Open(outFilename)
	if err != nil {
		log.Fatalf("error opening fixture file: %s", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		log.Fatalf("error getting file stat: %s", err)
	}

	pkg, err := adat.Open(f)
	if err != nil {
		log.Fatalf("error mounting fixture file: %s", err)
	}

	info, err := pkg.Stat(adat.FixtureEntryPath)
	if err != nil {
		log.Fatalf("error reading fixture TOC: %s", err)
	}

	fmt.Printf("Fixture created.\nFile:      %s\nFile size: %d bytes\nPayload:   %d bytes plain, %d bytes compressed\n",
		outFilename, fi.Size(), info.Size, info.CompressedSize)
}
