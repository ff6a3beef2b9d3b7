package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/strictenc/sten"
	"github.com/strictenc/sten/schemadoc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "id":
		idCmd(os.Args[2:])
	case "cmp":
		cmpCmd(os.Args[2:])
	case "verify":
		verifyCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `sten CLI

Usage:
  sten id -f schema.yaml [typename]
  sten cmp -a old.yaml -b new.yaml
  sten verify -f schema.yaml -type T data.bin

Schema documents may be YAML or JSON, chosen by file extension.`)
}

func idCmd(args []string) {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "schema document")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	sc := loadSchema(file)
	names := sc.Types()
	if fs.NArg() > 0 {
		names = fs.Args()
	}
	for _, name := range names {
		id, err := sc.IdentifyName(name)
		if err != nil {
			fatalf("identify %s: %v", name, err)
		}
		fmt.Printf("%s\t%s\n", name, id)
	}
}

func cmpCmd(args []string) {
	fs := flag.NewFlagSet("cmp", flag.ExitOnError)
	var aFile, bFile string
	fs.StringVar(&aFile, "a", "", "left schema document")
	fs.StringVar(&bFile, "b", "", "right schema document")
	_ = fs.Parse(args)
	if aFile == "" || bFile == "" {
		fs.Usage()
		os.Exit(2)
	}
	sa := loadSchema(aFile)
	sb := loadSchema(bFile)
	rel, err := sten.CompareSchemas(sa, sb)
	if err != nil {
		fatalf("compare: %v", err)
	}
	fmt.Println(rel)
	if rel == sten.Incompatible {
		os.Exit(1)
	}
}

func verifyCmd(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var file, typeName string
	fs.StringVar(&file, "f", "", "schema document")
	fs.StringVar(&typeName, "type", "", "type name to verify against")
	_ = fs.Parse(args)
	if file == "" || typeName == "" || fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	sc := loadSchema(file)
	data, err := os.Open(fs.Arg(0))
	if err != nil {
		fatalf("open: %v", err)
	}
	defer data.Close()
	if err := sc.Verify(sten.Name(typeName), data); err != nil {
		fatalf("verify: %v", err)
	}
	fmt.Println("ok")
}

func loadSchema(file string) *sten.Schema {
	data, err := os.ReadFile(file)
	if err != nil {
		fatalf("read: %v", err)
	}
	var sc *sten.Schema
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		sc, err = schemadoc.ImportJSON(data)
	default:
		sc, err = schemadoc.ImportYAML(data)
	}
	if err != nil {
		fatalf("load %s: %v", file, err)
	}
	return sc
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "sten: "+format+"\n", args...)
	os.Exit(1)
}
