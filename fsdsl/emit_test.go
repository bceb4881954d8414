package fsdsl

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestEmitTextNode(t *testing.T) {
	n := &html.Node{Type: html.TextNode, Data: "  Hi there \n"}
	if got := emitNode(n, 0); got != `_text "Hi there"` {
		t.Errorf("expected trimmed text emission, got %q", got)
	}
}

func TestEmitWhitespaceTextIsDropped(t *testing.T) {
	n := &html.Node{Type: html.TextNode, Data: " \n\t "}
	if got := emitNode(n, 0); got != "" {
		t.Errorf("expected whitespace-only text to emit nothing, got %q", got)
	}
}

func TestEmitVoidElementDiscardsChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsdsl.convert")
	defer teardown()
	//
	img := &html.Node{Type: html.ElementNode, Data: "img"}
	img.AppendChild(&html.Node{Type: html.TextNode, Data: "stray"})
	img.AppendChild(&html.Node{Type: html.ElementNode, Data: "p"})
	got := emitNode(img, 0)
	if got != "_img []" {
		t.Logf("emission = %q", got)
		t.Error("expected void element to carry no child list, does")
	}
}

func TestEmitEveryVoidElement(t *testing.T) {
	for tag := range voidElements {
		n := &html.Node{Type: html.ElementNode, Data: tag}
		n.AppendChild(&html.Node{Type: html.TextNode, Data: "x"})
		got := emitNode(n, 0)
		if got != "_"+tag+" []" {
			t.Errorf("expected _%s [], got %q", tag, got)
		}
	}
}

func TestEmitElementWithOnlyWhitespaceChildren(t *testing.T) {
	div := &html.Node{Type: html.ElementNode, Data: "div"}
	div.AppendChild(&html.Node{Type: html.TextNode, Data: "   "})
	div.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
	if got := emitNode(div, 0); got != "_div [] []" {
		t.Errorf("expected empty child list when all children are dropped, got %q", got)
	}
}

func TestEmitCommentIsInert(t *testing.T) {
	n := &html.Node{Type: html.CommentNode, Data: "a note"}
	if got := emitNode(n, 0); got != "" {
		t.Errorf("expected comment to emit nothing, got %q", got)
	}
	n = &html.Node{Type: html.DoctypeNode, Data: "html"}
	if got := emitNode(n, 0); got != "" {
		t.Errorf("expected doctype to emit nothing, got %q", got)
	}
}

func TestEmitScriptDropsNonTextChildren(t *testing.T) {
	script := &html.Node{Type: html.ElementNode, Data: "script"}
	script.AppendChild(&html.Node{Type: html.ElementNode, Data: "b"})
	script.AppendChild(&html.Node{Type: html.TextNode, Data: `var x = "y";`})
	got := emitNode(script, 0)
	want := "_script [] [\n" +
		"    _text \"var x = 'y';\"\n" +
		"]"
	if got != want {
		t.Logf("emission =\n%s", got)
		t.Error("expected script body to keep only its text child, doesn't")
	}
}

func TestEmitScriptWhitespaceBody(t *testing.T) {
	script := &html.Node{Type: html.ElementNode, Data: "script"}
	script.AppendChild(&html.Node{Type: html.TextNode, Data: "  \n  "})
	if got := emitNode(script, 0); got != "_script [] []" {
		t.Errorf("expected whitespace-only script body to emit [], got %q", got)
	}
}

func TestIndentDepth(t *testing.T) {
	if indent(0) != "" {
		t.Error("expected no indentation at depth 0, got some")
	}
	if indent(2) != strings.Repeat(" ", 8) {
		t.Errorf("expected 8 spaces at depth 2, got %q", indent(2))
	}
}

func TestChildListIndentation(t *testing.T) {
	got := childList([]string{`_text "a"`, `_text "b"`}, 1)
	want := "[\n" +
		"        _text \"a\"\n" +
		"        _text \"b\"\n" +
		"    ]"
	if got != want {
		t.Logf("child list =\n%s", got)
		t.Error("expected children indented one level below the parent, aren't")
	}
}

func TestSiblingDepthIsolation(t *testing.T) {
	// two sibling subtrees of different depth must not influence each other
	deep := &html.Node{Type: html.ElementNode, Data: "div"}
	inner := &html.Node{Type: html.ElementNode, Data: "span"}
	inner.AppendChild(&html.Node{Type: html.TextNode, Data: "x"})
	deep.AppendChild(inner)

	root := &html.Node{Type: html.ElementNode, Data: "section"}
	root.AppendChild(deep)
	flat := &html.Node{Type: html.ElementNode, Data: "p"}
	flat.AppendChild(&html.Node{Type: html.TextNode, Data: "y"})
	root.AppendChild(flat)

	got := emitNode(root, 0)
	want := "_section [] [\n" +
		"    _div [] [\n" +
		"        _span [] [\n" +
		"            _text \"x\"\n" +
		"        ]\n" +
		"    ]\n" +
		"    _p [] [\n" +
		"        _text \"y\"\n" +
		"    ]\n" +
		"]"
	if got != want {
		t.Logf("emission =\n%s", got)
		t.Error("expected the second sibling to start back at its own depth, doesn't")
	}
}
