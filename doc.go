/*
Package fmtoggle toggles inline text formats on fragments of HTML or
Markdown text.

Seven formats are supported: bold, italic, underline, strikethrough, overline,
subscript and superscript (see package format). Applying a set of formats to
a fragment toggles each of them: a format wrapping the whole fragment is
removed, any other format is wrapped around it. Markup outside the closed set
of the format registry is stripped, keeping its text content.

	fmtoggle.ApplyFormatting("hello", format.SetOf(format.Bold), format.HTML)
	// "<b>hello</b>"
	fmtoggle.ApplyFormatting("<b>hello</b>", format.SetOf(format.Bold), format.HTML)
	// "hello"
	fmtoggle.ToDisplayForm("**bold**", format.Markdown)
	// "<strong>bold</strong>"

All operations are total functions over strings: malformed input degrades to
its text content and is never rejected. Package-level functions use a default
engine; clients wanting to restrict the set of formats or the display form
create an Engine from a Config.

Editors with a selection model will want to use package splice, which
applies formatting to a selected range of a text buffer.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package fmtoggle

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ConfigError is an error type for engine configuration.
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

// ErrInvalidDisplay is flagged for display styles other than semantic and
// presentational.
const ErrInvalidDisplay = ConfigError("invalid display style")

// ErrInvalidMaxLength is flagged for negative length limits.
const ErrInvalidMaxLength = ConfigError("invalid maximum length")
