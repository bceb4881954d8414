// Command html2fs converts HTML files (or stdin) into F#
// Giraffe-ViewEngine-style DSL source text.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlbertoDePena/html-to-fsharp-dsl/dom"
	"github.com/AlbertoDePena/html-to-fsharp-dsl/dom/domdbg"
	"github.com/AlbertoDePena/html-to-fsharp-dsl/fsdsl"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: html2fs [flags] [files...]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Converts each *.html/*.htm file to a *.fs file next to it.")
		_, _ = fmt.Fprintln(os.Stderr, "With no files, reads HTML from stdin and writes to stdout.")
		flag.PrintDefaults()
	}
	selectFlag := flag.String("select", "", "CSS selector; convert only matching subtrees")
	debugFlag := flag.Bool("debug", false, "dump the parsed DOM tree to stderr before converting")
	outFlag := flag.String("o", "", "output path (single input or stdin only)")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal(err)
		}
		out, err := convert(string(input), *selectFlag, *debugFlag)
		if err != nil {
			fatal(err)
		}
		if err := writeOutput(*outFlag, out); err != nil {
			fatal(err)
		}
		return
	}

	if *outFlag != "" && len(paths) > 1 {
		fatal(fmt.Errorf("html2fs: cannot use -o with more than one input file"))
	}

	for _, pth := range paths {
		if err := convertFile(pth, *outFlag, *selectFlag, *debugFlag); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func convertFile(pth, outPath, selector string, debug bool) error {
	ext := strings.ToLower(filepath.Ext(pth))
	if ext != ".html" && ext != ".htm" {
		return fmt.Errorf("html2fs: not an HTML file: %s", pth)
	}
	b, err := os.ReadFile(pth)
	if err != nil {
		return err
	}
	out, err := convert(string(b), selector, debug)
	if err != nil {
		return fmt.Errorf("%s: %w", pth, err)
	}
	if outPath == "" {
		outPath = strings.TrimSuffix(pth, filepath.Ext(pth)) + ".fs"
	}
	return os.WriteFile(outPath, []byte(out+"\n"), 0o644)
}

func convert(input, selector string, debug bool) (string, error) {
	if debug {
		dumpTree(input)
	}
	if selector != "" {
		return fsdsl.ConvertMatching(input, selector)
	}
	return fsdsl.Convert(input)
}

func dumpTree(input string) {
	roots, err := dom.ParseFragment(input)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "html2fs: debug dump failed: %v\n", err)
		return
	}
	for _, r := range roots {
		if err := domdbg.Dump(os.Stderr, r); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "html2fs: debug dump failed: %v\n", err)
			return
		}
	}
}

func writeOutput(outPath, out string) error {
	if outPath == "" {
		_, err := fmt.Fprintln(os.Stdout, out)
		return err
	}
	return os.WriteFile(outPath, []byte(out+"\n"), 0o644)
}
