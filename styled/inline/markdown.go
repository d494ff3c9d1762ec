package inline

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
)

// Separator is a zero width space. Writers put it between two adjacent
// Markdown markers starting with the same character, as in
//
//	*​**bold inside italic**​*
//
// so that the markers cannot be mistaken for a single, longer one.
// The scanner drops a separator found between two markers. A zero width
// space belonging to the text is escaped by a backslash.
const Separator = "\u200b"

// FromMarkdown creates a styled fragment from a Markdown fragment.
//
// Recognized are the symmetric markers of the format registry, ‾ for
// overline, and the allow-listed HTML elements of FromHTML (Markdown output
// uses them for overline). Everything else is text. Markers are scanned from
// left to right, longest marker first; a marker closes the innermost open
// marker of its kind or, if there is none, opens a new run. Markers left
// open stay in place as literal text. A backslash escapes marker characters.
//
// The fragment is returned in normalized form (see styled.Fragment.Normalize).
func FromMarkdown(text string) *styled.Fragment {
	b := styled.NewBuilder()
	tokenize(text, b, func(s string) {
		scanMarkers(s, b)
	})
	return b.Fragment()
}

// PlainFromMarkdown returns the text content of a Markdown fragment, with
// all markers and markup removed.
func PlainFromMarkdown(text string) string {
	return FromMarkdown(text).Raw()
}

// Parse creates a styled fragment from text in dialect d.
func Parse(text string, d format.Dialect) *styled.Fragment {
	if d == format.Markdown {
		return FromMarkdown(text)
	}
	return FromHTML(text)
}

func scanMarkers(s string, b *styled.Builder) {
	var lit strings.Builder
	flush := func() {
		b.AppendText(lit.String())
		lit.Reset()
	}
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			r, size := utf8.DecodeRuneInString(s[i+1:])
			if IsEscapable(r) {
				lit.WriteString(s[i+1 : i+1+size])
				i += 1 + size
				continue
			}
		}
		if m := markerAt(s, i); m != "" {
			flush()
			if !b.Close(m) {
				k, _ := format.KindOfMarker(m)
				b.Open(k, m, m)
			}
			i += len(m)
			if strings.HasPrefix(s[i:], Separator) && markerAt(s, i+len(Separator)) != "" {
				i += len(Separator)
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		lit.WriteString(s[i : i+size])
		i += size
	}
	flush()
}

// markerAt returns the longest marker starting at position i of s, or "".
func markerAt(s string, i int) string {
	for _, m := range format.Markers {
		if strings.HasPrefix(s[i:], m) {
			return m
		}
	}
	return ""
}

// IsEscapable is true for characters which have to be escaped by a
// backslash to appear literally in Markdown text.
func IsEscapable(r rune) bool {
	switch r {
	case '\\', '*', '_', '~', '^', '‾', '\u200b':
		return true
	}
	return false
}
