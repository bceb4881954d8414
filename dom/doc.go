/*
Package dom provides a thin, read-only W3C-flavored wrapper around the
node trees produced by golang.org/x/net/html.

See also https://www.w3schools.com/XML/dom_intro.asp

The converter core walks the parser's nodes directly; this package
exists for tooling that wants stable, named accessors instead: the
debug dumper in package domdbg, the CLI's -debug mode, and tests.
Wrappers are non-owning views: they never mutate the underlying tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsdsl.dom'.
func tracer() tracing.Trace {
	return tracing.Select("fsdsl.dom")
}
