package fsdsl

import (
	"strings"

	"golang.org/x/net/html"
)

// indentUnit is the number of spaces per nesting level.
const indentUnit = 4

// voidElements lists the element kinds that cannot have contents, per
// section 13.1.2 of the HTML spec. Their constructor calls take no child
// list.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

func indent(depth int) string {
	return strings.Repeat(" ", depth*indentUnit)
}

// attrList renders the attribute position of a constructor call: "[]"
// when empty, otherwise an inline list with entries joined by "; ".
func attrList(attrs []html.Attribute) string {
	exprs := mapAttributes(attrs)
	if len(exprs) == 0 {
		return "[]"
	}
	return "[ " + strings.Join(exprs, "; ") + " ]"
}

// childList renders pre-emitted child expressions as a bracketed block,
// one child per line, indented one level deeper than the parent. Empty
// lists stay inline as "[]".
func childList(children []string, depth int) string {
	if len(children) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, c := range children {
		b.WriteString(indent(depth + 1))
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString(indent(depth))
	b.WriteString("]")
	return b.String()
}

// emitNode returns the DSL expression for n and its subtree, or the
// empty string if the node contributes nothing to output. depth is the
// nesting level of n, threaded as a value so that sibling subtrees never
// observe each other's depth.
func emitNode(n *html.Node, depth int) string {
	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return ""
		}
		return `_text "` + EscapeString(text) + `"`
	case html.ElementNode:
		if n.Data == "script" {
			return emitScript(n, depth)
		}
		attrs := attrList(n.Attr)
		if voidElements[n.Data] {
			// void elements structurally cannot have children; any the
			// parser kept are discarded
			tracer().Debugf("emitting void element <%s>", n.Data)
			return "_" + n.Data + " " + attrs
		}
		var children []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if e := emitNode(c, depth+1); e != "" {
				children = append(children, e)
			}
		}
		return "_" + n.Data + " " + attrs + " " + childList(children, depth)
	case html.DocumentNode:
		var parts []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if e := emitNode(c, depth); e != "" {
				parts = append(parts, e)
			}
		}
		return strings.Join(parts, "\n")
	}
	// comments, doctypes, raw and error nodes are inert
	return ""
}

// emitScript renders a script element. Script bodies are text-only: any
// non-text child is dropped, whitespace-only text is dropped, and the
// remaining text keeps its newlines and backslashes, with double quotes
// swapped for apostrophes.
func emitScript(n *html.Node, depth int) string {
	attrs := attrList(n.Attr)
	var body []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			continue
		}
		text := strings.TrimSpace(c.Data)
		if text == "" {
			continue
		}
		body = append(body, `_text "`+escapeScriptText(text)+`"`)
	}
	return "_script " + attrs + " " + childList(body, depth)
}
