/*
Package inline reads inline-styled text from its serialized forms.

Two dialects are supported, HTML and Markdown (see package format). Both
readers are allow-list based: only the markup of the format registry is
interpreted, anything else is either dropped (foreign HTML elements and
attributes) or kept as text (stray Markdown markers). Readers never fail;
malformed markup degrades to its text content.

	f := inline.FromMarkdown("Hello **World**")
	f.Raw()       // "Hello World"
	f.StyleRuns() // plain "Hello ", bold "World"

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fmtoggle'
func tracer() tracing.Trace {
	return tracing.Select("fmtoggle")
}
