/*
Package fsdsl converts parsed HTML trees into source text for an F#
Giraffe-ViewEngine-style markup DSL.

The DSL mirrors HTML structure with function-call-shaped expressions:
every element becomes a constructor call taking an attribute list and a
child list,

    _div [ _class_ "a" ] [
        _p [] [
            _text "Hi"
        ]
    ]

Void elements (img, br, …) take no child list, boolean attributes
(disabled, checked, …) take no value argument, and script bodies keep
their text readable by swapping double quotes for apostrophes instead of
backslash-escaping.

Conversion is a pure function of the input tree: no state survives a
call, and separate calls may run concurrently. The nesting depth used
for indentation is threaded through the recursion as a parameter, never
shared between sibling subtrees.

The HTML parsing itself is delegated to golang.org/x/net/html; this
package only depends on the shape of the node tree that parser produces.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package fsdsl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fsdsl.convert'.
func tracer() tracing.Trace {
	return tracing.Select("fsdsl.convert")
}
