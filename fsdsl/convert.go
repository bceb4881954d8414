package fsdsl

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Convert parses input as an HTML fragment and returns the equivalent
// DSL source text, one top-level expression per root-level node, joined
// by newlines. Whitespace-only input converts to the empty string.
//
// Parsing uses a body-fragment context, so a snippet like
//
//	<img src="x.png">
//
// converts to exactly `_img [ _src_ "x.png" ]`, without the html/head/body
// shell a full-document parse would synthesize.
func Convert(input string) (string, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	roots, err := html.ParseFragment(strings.NewReader(input), ctx)
	if err != nil {
		return "", fmt.Errorf("fsdsl: cannot parse input: %w", err)
	}
	tracer().Debugf("converting fragment with %d root node(s)", len(roots))
	var parts []string
	for _, n := range roots {
		if e := emitNode(n, 0); e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// ConvertNode emits DSL source for an already-parsed tree. A document
// node emits each of its children at depth 0, joined by newlines; any
// other node emits itself at depth 0. Nodes contributing nothing
// (whitespace-only text, comments, …) yield the empty string.
//
// ConvertNode is pure: it never fails, holds no state across calls, and
// is safe to call concurrently on independent trees.
func ConvertNode(n *html.Node) string {
	if n == nil {
		return ""
	}
	return emitNode(n, 0)
}

// ConvertMatching parses input as a full HTML document and converts only
// the subtrees matching the given CSS selector, in document order,
// joined by newlines. An invalid selector or unparseable input yields an
// error.
func ConvertMatching(input, selector string) (string, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return "", fmt.Errorf("fsdsl: invalid selector %q: %w", selector, err)
	}
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("fsdsl: cannot parse input: %w", err)
	}
	matches := cascadia.QueryAll(doc, sel)
	tracer().Debugf("selector %q matched %d node(s)", selector, len(matches))
	var parts []string
	for _, m := range matches {
		if e := emitNode(m, 0); e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, "\n"), nil
}
