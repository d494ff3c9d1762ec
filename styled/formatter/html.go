package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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

import (
	"io"
	"strings"

	"github.com/npillmayer/fmtoggle/format"
)

// TagTable maps formats to HTML element names, used to remap the serialized
// form of a fragment for display. Overline elements get the overline style
// attribute, whatever their element name.
type TagTable map[format.Kind]string

// SemanticTags is a tag table for display with semantic elements.
var SemanticTags = TagTable{
	format.Bold:          "strong",
	format.Italic:        "em",
	format.Underline:     "u",
	format.Strikethrough: "del",
	format.Overline:      "span",
	format.Subscript:     "sub",
	format.Superscript:   "sup",
}

// PresentationalTags is a tag table for display with presentational elements.
// It equals the tags of the format registry.
var PresentationalTags = TagTable{
	format.Bold:          "b",
	format.Italic:        "i",
	format.Underline:     "u",
	format.Strikethrough: "s",
	format.Overline:      "span",
	format.Subscript:     "sub",
	format.Superscript:   "sup",
}

func (tt TagTable) tags(k format.Kind) (string, string) {
	name, ok := tt[k]
	if !ok || name == "" {
		return k.HTMLTags()
	}
	if k == format.Overline {
		return "<" + name + ` style="` + format.OverlineStyle + `">`, "</" + name + ">"
	}
	return "<" + name + ">", "</" + name + ">"
}

// HTML is a format for HTML output of inline styles.
type HTML struct {
	table TagTable
}

// NewHTML creates an HTML formatter. table may be nil, in which case the
// registry's tags are used.
func NewHTML(table TagTable) *HTML {
	return &HTML{table: table}
}

// Open writes the opening tag for k.
// (Part of interface Format)
func (h *HTML) Open(k format.Kind, w io.Writer) {
	open, _ := h.table.tags(k)
	io.WriteString(w, open)
}

// Close writes the closing tag for k.
// (Part of interface Format)
func (h *HTML) Close(k format.Kind, w io.Writer) {
	_, close := h.table.tags(k)
	io.WriteString(w, close)
}

// Text writes s with the HTML special characters escaped.
// (Part of interface Format)
func (h *HTML) Text(s string, w io.Writer) {
	io.WriteString(w, htmlEscaper.Replace(s))
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
