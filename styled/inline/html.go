package inline

import (
	"io"
	"strings"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML creates a styled fragment from an HTML fragment.
//
// Only the inline elements of the format registry survive:
//
//	<b> <i> <u> <s> <sub> <sup> <span style="text-decoration: overline">
//
// Any other element, attribute or attribute value is dropped, while the text
// content of the dropped elements is kept. This is true for elements like
// <script> as well: their content ends up as (harmless) text. Tags which are
// never closed, and closing tags without an opening tag, are dropped.
//
// The fragment is returned in normalized form (see styled.Fragment.Normalize).
func FromHTML(text string) *styled.Fragment {
	b := styled.NewBuilder()
	tokenize(text, b, func(s string) {
		b.AppendText(s)
	})
	return b.Fragment()
}

// PlainFromHTML returns the text content of an HTML fragment, with all markup removed.
func PlainFromHTML(text string) string {
	return FromHTML(text).Raw()
}

// tokenize feeds the tokens of an HTML fragment into a builder. Text tokens
// are handed to onText, which may look for further markup inside them.
func tokenize(input string, b *styled.Builder, onText func(string)) {
	z := html.NewTokenizer(strings.NewReader(input))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				tracer().Errorf("inline: tokenizer stopped: %v", err)
			}
			return
		case html.TextToken:
			onText(string(z.Text()))
		case html.StartTagToken:
			startTag(z, b)
		case html.EndTagToken:
			name, _ := z.TagName()
			if tag := atom.Lookup(name); format.IsAllowedTag(tag) {
				if !b.Close(tag.String()) {
					tracer().Debugf("inline: dropping unmatched </%s>", tag)
				}
			}
		default:
			// self-closing tags, comments and doctypes carry no text
		}
	}
}

func startTag(z *html.Tokenizer, b *styled.Builder) {
	name, hasAttr := z.TagName()
	tag := atom.Lookup(name)
	if !format.IsAllowedTag(tag) {
		tracer().Debugf("inline: dropping <%s>", name)
		return
	}
	style := ""
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if tag == atom.Span && string(key) == "style" {
			style = string(val)
		}
	}
	// k is 0 for a span without overline style: it is paired, but unwrapped
	k, _ := format.KindOfTag(tag, style)
	b.Open(k, tag.String(), "")
}
