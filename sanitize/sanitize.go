/*
Package sanitize filters inline markup against the allow-list of the format
registry.

Sanitizing parses a fragment with package inline, which drops every element,
attribute or marker outside the registry while keeping text content, and then
writes it back in the same dialect. The result is well-formed and normalized:
no unmatched tags, no empty elements, and no format immediately nested
inside itself (see styled.Fragment.Normalize).

	sanitize.HTML(`<b onclick="x()">hi</b><script>alert(1)</script>`)
	// "<b>hi</b>alert(1)"

Sanitizing is idempotent.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package sanitize

import (
	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
	"github.com/npillmayer/fmtoggle/styled/formatter"
	"github.com/npillmayer/fmtoggle/styled/inline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fmtoggle'
func tracer() tracing.Trace {
	return tracing.Select("fmtoggle")
}

// HTML sanitizes an HTML fragment.
func HTML(text string) string {
	return Fragment(text, format.HTML)
}

// Markdown sanitizes a Markdown fragment. The HTML elements of the allow-list
// are accepted in Markdown as well; output uses them for overline only.
func Markdown(text string) string {
	return Fragment(text, format.Markdown)
}

// Fragment sanitizes text in dialect d.
func Fragment(text string, d format.Dialect) string {
	if text == "" {
		return ""
	}
	out := formatter.String(Parse(text, d), d)
	if out != text {
		tracer().Debugf("sanitize: %q → %q", text, out)
	}
	return out
}

// Parse reads text in dialect d into a normalized styled fragment, keeping
// only allow-listed markup.
func Parse(text string, d format.Dialect) *styled.Fragment {
	return inline.Parse(text, d)
}

// StripAllMarkup removes all markup from text in dialect d, leaving the text
// content only. Entities are resolved.
func StripAllMarkup(text string, d format.Dialect) string {
	if text == "" {
		return ""
	}
	return Parse(text, d).Raw()
}
