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
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
)

// Format is an interface for formatting drivers of markup dialects, given an
// io.Writer. The driver walks a fragment depth-first, calling Open and Close
// for every element and Text for every text node.
type Format interface {
	Open(format.Kind, io.Writer)
	Close(format.Kind, io.Writer)
	Text(string, io.Writer)
}

// Output writes a styled fragment using a given formatter.
//
// Neither of the arguments may be nil.
func Output(f *styled.Fragment, out io.Writer, fmtr Format) error {
	if f == nil || out == nil || fmtr == nil {
		return errors.New("illegal argument: nil")
	}
	walk(f.Nodes(), out, fmtr)
	return nil
}

func walk(nodes []*styled.Node, out io.Writer, fmtr Format) {
	for _, n := range nodes {
		if n.IsText() {
			fmtr.Text(n.Text, out)
			continue
		}
		fmtr.Open(n.Format, out)
		walk(n.Children, out, fmtr)
		fmtr.Close(n.Format, out)
	}
}

// HTMLString serializes a fragment to HTML. If table is nil, the tags of the
// format registry are used.
func HTMLString(f *styled.Fragment, table TagTable) string {
	var b strings.Builder
	if err := Output(f, &b, NewHTML(table)); err != nil {
		T().Errorf("formatter: %v", err)
	}
	return b.String()
}

// MarkdownString serializes a fragment to Markdown.
func MarkdownString(f *styled.Fragment) string {
	var b strings.Builder
	if err := Output(f, &b, NewMarkdown()); err != nil {
		T().Errorf("formatter: %v", err)
	}
	return b.String()
}

// String serializes a fragment in dialect d, using the format registry's tags
// for HTML.
func String(f *styled.Fragment, d format.Dialect) string {
	if d == format.Markdown {
		return MarkdownString(f)
	}
	return HTMLString(f, nil)
}
