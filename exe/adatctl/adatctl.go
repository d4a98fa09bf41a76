package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"

	"github.com/sombr/adatpack/adat"
)

func main() {
	parser := argparse.NewParser("adatctl", "a tool for manipulating ADAT package files")

	createCmd := parser.NewCommand("create", "packs files into a new ADAT package")
	createFile := createCmd.File("f", "file", os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644,
		&argparse.Options{Required: true, Help: "package filename to create"})
	createInputs := createCmd.StringList("i", "input",
		&argparse.Options{Required: true, Help: "file to pack, may be given multiple times"})

	fixtureCmd := parser.NewCommand("fixture", "writes the canonical test fixture package")
	fixtureFile := fixtureCmd.String("f", "file",
		&argparse.Options{Default: adat.DefaultFixtureFileName, Help: "fixture filename"})

	listCmd := parser.NewCommand("list", "lists entries of an ADAT package")
	listFile := listCmd.File("f", "file", os.O_RDONLY, 0,
		&argparse.Options{Required: true, Help: "package filename"})

	catCmd := parser.NewCommand("cat", "prints a decompressed entry to stdout")
	catFile := catCmd.File("f", "file", os.O_RDONLY, 0,
		&argparse.Options{Required: true, Help: "package filename"})
	catPath := catCmd.String("p", "path",
		&argparse.Options{Required: true, Help: "entry path inside the package"})

	err := parser.Parse(os.Args)

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	switch {
	case createCmd.Happened():
		runCreate(createFile, *createInputs)
	case fixtureCmd.Happened():
		runFixture(*fixtureFile)
	case listCmd.Happened():
		runList(listFile)
	case catCmd.Happened():
		runCat(catFile, *catPath)
	}
}
