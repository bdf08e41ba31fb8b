// Command vecdemo walks through the classic numerical-library worked
// examples using the go-vec kernels: scaled vector accumulation, dot
// products, a dense linear solve, elementwise math, float→int conversion,
// and polyline distance.
//
// Usage:
//
//	vecdemo              # run every section in order
//	vecdemo -section dot # run a single section
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/numkit/go-vec/vec"
)

var sectionFlag = flag.String("section", "", "run a single section by name (default: all)")

func main() {
	flag.Parse()

	if *sectionFlag != "" && !sectionKnown(*sectionFlag) {
		fmt.Fprintf(os.Stderr, "unknown section %q; available: %s\n", *sectionFlag, sectionNames())
		os.Exit(1)
	}

	p := message.NewPrinter(language.English)
	p.Printf("=== go-vec walkthrough ===\n")
	p.Printf("dispatch: %s, width: %d bytes\n", vec.CurrentName(), vec.CurrentWidth())

	num := 0
	for _, s := range sections {
		if *sectionFlag != "" && s.name != *sectionFlag {
			continue
		}
		num++
		p.Printf("\n%d. %s\n", num, s.title)
		s.run(p, os.Stdout)
	}
}

func sectionKnown(name string) bool {
	for _, s := range sections {
		if s.name == name {
			return true
		}
	}
	return false
}

func sectionNames() string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.name
	}
	return strings.Join(names, ", ")
}
