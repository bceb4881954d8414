/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/AlbertoDePena/html-to-fsharp-dsl/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump writes an ASCII diagram of the DOM tree under n to w. Elements
// become branches labeled with their start tag, text nodes become
// leaves with a shortened payload. Comments, doctypes and whitespace-only
// text are left out, mirroring what the converter will retain.
func Dump(w io.Writer, n *dom.Node) error {
	if n == nil {
		return nil
	}
	p := tp.New()
	addNode(p, n)
	_, err := fmt.Fprint(w, p.String())
	return err
}

// Log is a helper for testing. It dumps the DOM tree under n to the
// test log, so a failing test shows the tree it operated on.
func Log(n *dom.Node, t *testing.T) {
	var b strings.Builder
	if err := Dump(&b, n); err != nil {
		t.Error(err)
		return
	}
	t.Logf("DOM tree =\n%s", b.String())
}

func addNode(p tp.Tree, n *dom.Node) {
	switch n.NodeType() {
	case html.DocumentNode:
		for _, c := range n.ChildNodes() {
			addNode(p, c)
		}
	case html.ElementNode:
		branch := p.AddBranch(startTag(n))
		for _, c := range n.ChildNodes() {
			addNode(branch, c)
		}
	case html.TextNode:
		if strings.TrimSpace(n.NodeValue()) == "" {
			return
		}
		p.AddNode(shortText(n.NodeValue()))
	}
}

// startTag renders an element label like `<meta http-equiv="refresh">`.
func startTag(n *dom.Node) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.NodeName())
	for _, a := range n.Attributes() {
		fmt.Fprintf(&b, " %s=%q", a.Key(), a.Value())
	}
	b.WriteString(">")
	return b.String()
}

// shortText shortens a text payload for the diagram and makes the
// whitespace visible.
func shortText(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 20 {
		s = s[:20] + "…"
	}
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	s = strings.ReplaceAll(s, " ", "␣")
	return `"` + s + `"`
}
