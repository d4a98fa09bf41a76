package main

import (
	"fmt"
	"log"

	"github.com/sombr/adatpack/adat"
)

func runFixture(filename string) {
	err := adat.GenerateFixture(filename)
	if err != nil {
		log.Fatalf("error writing fixture file: %s", err)
	}
	fmt.Printf("Fixture written to %s\n", filename)
}
