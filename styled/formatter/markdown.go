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
	"unicode/utf8"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled/inline"
)

// Markdown is a format for Markdown output of inline styles.
//
// Formats with a native marker are written as symmetric markers. Overline has
// none and is written as an HTML span, which the Markdown reader accepts as well.
// An element nested inside an element of the same format is written as HTML,
// too, as a marker there would close the outer element.
// Between two adjacent markers which could be read as a single one (e.g., '*'
// followed by '**'), a zero width space is inserted (see inline.Separator).
type Markdown struct {
	last byte       // last character of the marker just written, 0 after text
	open []openElem // elements currently open
}

type openElem struct {
	kind   format.Kind
	marker string // empty if written as HTML
}

// NewMarkdown creates a Markdown formatter.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Open writes the opening marker for k.
// (Part of interface Format)
func (md *Markdown) Open(k format.Kind, w io.Writer) {
	m, ok := k.MarkdownMarker()
	if ok && md.isOpen(k) {
		m = ""
	}
	md.open = append(md.open, openElem{kind: k, marker: m})
	if m != "" {
		md.marker(m, w)
		return
	}
	open, _ := k.HTMLTags()
	io.WriteString(w, open)
	md.last = 0
}

// Close writes the closing marker for k.
// (Part of interface Format)
func (md *Markdown) Close(k format.Kind, w io.Writer) {
	m := ""
	if n := len(md.open); n > 0 {
		m = md.open[n-1].marker
		md.open = md.open[:n-1]
	}
	if m != "" {
		md.marker(m, w)
		return
	}
	_, close := k.HTMLTags()
	io.WriteString(w, close)
	md.last = 0
}

func (md *Markdown) isOpen(k format.Kind) bool {
	for _, e := range md.open {
		if e.kind == k {
			return true
		}
	}
	return false
}

func (md *Markdown) marker(m string, w io.Writer) {
	if md.last != 0 && md.last == m[0] {
		io.WriteString(w, inline.Separator)
	}
	io.WriteString(w, m)
	md.last = m[len(m)-1]
}

// Text writes s, escaping characters which would otherwise be read as markup.
// (Part of interface Format)
func (md *Markdown) Text(s string, w io.Writer) {
	if s == "" {
		return
	}
	io.WriteString(w, EscapeMarkdown(s))
	md.last = 0
}

// EscapeMarkdown escapes a text run for Markdown output.
//
// Marker characters are backslash-escaped, except for an underscore standing
// alone within the run (as in "snake_case"), which cannot form a marker.
// Backslashes are escaped if they precede an escapable character or end the
// run. A zero width space starting the run is escaped, as the reader would
// take it for a separator between two markers. '<' and '&' are written as
// entities.
func EscapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		next, _ := utf8.DecodeRuneInString(s[i+size:])
		switch r {
		case '*', '~', '^', '‾':
			b.WriteByte('\\')
		case '_':
			if i == 0 || i+size == len(s) || s[i-1] == '_' || next == '_' {
				b.WriteByte('\\')
			}
		case '\\':
			if i+size == len(s) || inline.IsEscapable(next) {
				b.WriteByte('\\')
			}
		case '\u200b':
			if i == 0 {
				b.WriteByte('\\')
			}
		case '<':
			b.WriteString("&lt;")
			i += size
			continue
		case '&':
			b.WriteString("&amp;")
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}
