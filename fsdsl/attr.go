package fsdsl

import (
	"strings"

	"golang.org/x/net/html"
)

// booleanAttributes lists the HTML attributes whose mere presence carries
// meaning. They are emitted as a bare DSL identifier, whatever value the
// source markup gave them.
var booleanAttributes = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"ismap":           true,
	"itemscope":       true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"nomodule":        true,
	"novalidate":      true,
	"open":            true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// camelCase deletes each hyphen of a kebab-case name and upper-cases the
// letter following it: "http-equiv" becomes "httpEquiv". Names without
// hyphens pass through unchanged.
func camelCase(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	parts := strings.Split(name, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// attrIdent wraps an attribute name as the DSL attribute-function
// identifier, camel-casing kebab-case names on the way.
func attrIdent(name string) string {
	return "_" + camelCase(name) + "_"
}

// isEventHandler matches inline event-handler attribute names: "on"
// followed by one or more lowercase letters (onclick, onmouseover, …).
func isEventHandler(name string) bool {
	if len(name) < 3 || !strings.HasPrefix(name, "on") {
		return false
	}
	for _, r := range name[2:] {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// mapAttributes turns the parser's attribute list into DSL attribute
// expressions, one per source attribute, preserving source order.
// Classification (boolean vs. handler vs. generic) looks at the original
// name; only the emitted identifier is camel-cased.
func mapAttributes(attrs []html.Attribute) []string {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		switch {
		case booleanAttributes[a.Key]:
			out = append(out, attrIdent(a.Key))
		case isEventHandler(a.Key):
			// same shape as the generic case; kept as its own branch so
			// handler-specific lowering has a place to go
			out = append(out, attrIdent(a.Key)+` "`+EscapeString(a.Val)+`"`)
		default:
			out = append(out, attrIdent(a.Key)+` "`+EscapeString(a.Val)+`"`)
		}
	}
	return out
}
