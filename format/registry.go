package format

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// OverlineStyle is the value of the style attribute carried by the overline
// wrapper. It is the only style value the sanitizer lets through.
const OverlineStyle = "text-decoration: overline"

type registryEntry struct {
	tag    atom.Atom
	style  string // value for the style attribute, if any
	marker string // symmetric Markdown marker; empty if there is none
	label  string
	icon   string
}

var registry = map[Kind]registryEntry{
	Bold:          {tag: atom.B, marker: "**", label: "Bold", icon: "B"},
	Italic:        {tag: atom.I, marker: "*", label: "Italic", icon: "I"},
	Underline:     {tag: atom.U, marker: "__", label: "Underline", icon: "U"},
	Strikethrough: {tag: atom.S, marker: "~~", label: "Strikethrough", icon: "S"},
	Overline:      {tag: atom.Span, style: OverlineStyle, label: "Overline", icon: "O"},
	Subscript:     {tag: atom.Sub, marker: "~", label: "Subscript", icon: "₍ᵢ₎"},
	Superscript:   {tag: atom.Sup, marker: "^", label: "Superscript", icon: "⁽ⁱ⁾"},
}

// Tag returns the HTML element used for k, together with the value of its
// style attribute (empty for all kinds except Overline).
func (k Kind) Tag() (atom.Atom, string) {
	e := registry[k]
	return e.tag, e.style
}

// HTMLTags returns the opening and closing HTML tags for k.
// Every kind has an HTML mapping.
func (k Kind) HTMLTags() (string, string) {
	e, ok := registry[k]
	if !ok {
		return "", ""
	}
	name := e.tag.String()
	if e.style != "" {
		return "<" + name + ` style="` + e.style + `">`, "</" + name + ">"
	}
	return "<" + name + ">", "</" + name + ">"
}

// MarkdownMarker returns the symmetric Markdown marker for k. Overline has no
// native marker; callers have to fall back to the HTML tags.
func (k Kind) MarkdownMarker() (string, bool) {
	e := registry[k]
	return e.marker, e.marker != ""
}

// Label is a human readable name, e.g. for tooltips.
func (k Kind) Label() string {
	return registry[k].label
}

// Icon is a short glyph for toggle buttons.
func (k Kind) Icon() string {
	return registry[k].icon
}

// KindOfTag maps an allow-listed HTML element back to its format kind.
// A span qualifies only if its style is the overline style.
func KindOfTag(tag atom.Atom, style string) (Kind, bool) {
	if tag == atom.Span {
		if IsOverlineStyle(style) {
			return Overline, true
		}
		return 0, false
	}
	for k, e := range registry {
		if e.tag == tag {
			return k, true
		}
	}
	return 0, false
}

// IsAllowedTag reports whether tag is part of the allow-list.
func IsAllowedTag(tag atom.Atom) bool {
	switch tag {
	case atom.B, atom.I, atom.U, atom.S, atom.Sub, atom.Sup, atom.Span:
		return true
	}
	return false
}

// IsOverlineStyle compares a style attribute value to OverlineStyle,
// ignoring case, white space and a trailing semicolon.
func IsOverlineStyle(style string) bool {
	return normalizeStyle(style) == normalizeStyle(OverlineStyle)
}

func normalizeStyle(style string) string {
	s := strings.ToLower(style)
	s = strings.Join(strings.Fields(s), "")
	return strings.TrimRight(s, ";")
}

// Markers lists the Markdown markers recognized on input, longest first.
// ‾ is accepted as an overline marker but never produced.
var Markers = [...]string{"**", "~~", "__", "*", "~", "^", OverlineMarker}

// OverlineMarker is accepted on Markdown input for overline.
const OverlineMarker = "‾"

// KindOfMarker maps a Markdown marker to its format kind.
func KindOfMarker(m string) (Kind, bool) {
	if m == OverlineMarker {
		return Overline, true
	}
	for k, e := range registry {
		if e.marker != "" && e.marker == m {
			return k, true
		}
	}
	return 0, false
}
