package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node wraps a parsed HTML node with W3C-style accessors.
type Node struct {
	n *html.Node
}

// Attr represents a single attribute of an element node.
type Attr struct {
	a html.Attribute
}

// Namespace returns the attribute's namespace, usually empty.
func (a Attr) Namespace() string { return a.a.Namespace }

// Key returns the attribute's name.
func (a Attr) Key() string { return a.a.Key }

// Value returns the attribute's value.
func (a Attr) Value() string { return a.a.Val }

// FromHTMLNode wraps a node from golang.org/x/net/html. A nil argument
// yields a nil wrapper.
func FromHTMLNode(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

// Parse reads and parses a full HTML document, returning a wrapper for
// the document node.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse document: %w", err)
	}
	tracer().Debugf("parsed document, root = %s", FromHTMLNode(doc).NodeName())
	return FromHTMLNode(doc), nil
}

// ParseFragment parses input in a body context and returns a wrapper
// per root-level node, in source order.
func ParseFragment(input string) ([]*Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	roots, err := html.ParseFragment(strings.NewReader(input), ctx)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse fragment: %w", err)
	}
	out := make([]*Node, 0, len(roots))
	for _, r := range roots {
		out = append(out, FromHTMLNode(r))
	}
	return out, nil
}

// HTMLNode returns the underlying parser node.
func (n *Node) HTMLNode() *html.Node { return n.n }

// NodeType returns the type of the underlying HTML node (ElementNode,
// TextNode, etc.).
func (n *Node) NodeType() html.NodeType { return n.n.Type }

// NodeName returns the node's name: the tag name for elements, "#text"
// for text nodes, "#document" for the document root, "#comment" for
// comments, and the empty string otherwise.
func (n *Node) NodeName() string {
	switch n.n.Type {
	case html.ElementNode:
		return n.n.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	}
	return ""
}

// NodeValue returns the payload of text and comment nodes, and the
// empty string for every other kind.
func (n *Node) NodeValue() string {
	switch n.n.Type {
	case html.TextNode, html.CommentNode:
		return n.n.Data
	}
	return ""
}

// HasAttributes checks for the existence of attributes.
func (n *Node) HasAttributes() bool {
	return len(n.n.Attr) > 0
}

// Attributes returns the node's attributes in source order.
func (n *Node) Attributes() []Attr {
	if len(n.n.Attr) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(n.n.Attr))
	for _, a := range n.n.Attr {
		out = append(out, Attr{a: a})
	}
	return out
}

// HasChildNodes checks for the existence of sub-nodes.
func (n *Node) HasChildNodes() bool {
	return n.n.FirstChild != nil
}

// ChildNodes returns all children of this node, in order.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, FromHTMLNode(c))
	}
	return out
}

// FirstChild returns the node's first child, or nil.
func (n *Node) FirstChild() *Node {
	return FromHTMLNode(n.n.FirstChild)
}

// NextSibling returns the node's next sibling, or nil if it is the last.
func (n *Node) NextSibling() *Node {
	return FromHTMLNode(n.n.NextSibling)
}

// ParentNode returns the parent node, if any.
func (n *Node) ParentNode() *Node {
	return FromHTMLNode(n.n.Parent)
}

// TextContent collects the text of this node and all of its
// descendants, in document order.
func (n *Node) TextContent() string {
	var b strings.Builder
	collectText(n.n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil node>"
	}
	return n.NodeName()
}
