// Package main generates docs/TESTS.md from the test functions of the
// module and their "Scenario:/Expected:" doc comments.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	var (
		rootDir    string
		outputFile string
		pkgFilter  string
	)

	flag.StringVar(&rootDir, "root", ".", "root directory to scan for test files")
	flag.StringVar(&outputFile, "out", "docs/TESTS.md", "output markdown file")
	flag.StringVar(&pkgFilter, "pkg", "", "only include packages whose path contains this string")
	flag.Parse()

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error resolving root directory: %v\n", err)
		os.Exit(1)
	}

	packages, err := ParseTestFiles(absRoot, pkgFilter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing test files: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output directory: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := RenderMarkdown(f, packages); err != nil {
		fmt.Fprintf(os.Stderr, "error rendering markdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s with %d packages\n", outputFile, len(packages))
}
