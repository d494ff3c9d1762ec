package styled

import (
	"github.com/npillmayer/fmtoggle/format"
)

// Builder is for building styled fragments from a stream of text and
// opening/closing delimiters, as produced by tokenizers of markup.
//
// Delimiters are paired by a key (e.g., "b" for <b>…</b> or "**" for a Markdown
// marker). Closing a delimiter pairs it with the innermost open delimiter of
// the same key. Delimiters opened after that one, but still open, will never
// be matched: they are discarded, leaving their content in place. The same
// happens to delimiters still open when the fragment is completed.
type Builder struct {
	frames []frame // frames[0] holds the top-level nodes
	done   bool
}

type frame struct {
	format  format.Kind // 0 for delimiters which do not carry a format
	key     string      // pairing key
	literal string      // text restored if the delimiter stays unmatched
	nodes   []*Node
}

// NewBuilder creates a new and empty builder for styled fragments.
func NewBuilder() *Builder {
	return &Builder{frames: make([]frame, 1, 8)}
}

func (b *Builder) top() *frame {
	return &b.frames[len(b.frames)-1]
}

// AppendText appends a run of text at the current nesting level.
func (b *Builder) AppendText(s string) error {
	if b.done {
		return ErrFragmentCompleted
	}
	if s == "" {
		return nil
	}
	t := b.top()
	t.nodes = appendNode(t.nodes, TextNode(s))
	return nil
}

// Open opens a delimiter with pairing key `key`. If the delimiter is closed
// later, its content will be wrapped in an element of format k (k may be 0 for
// delimiters which are to be paired but carry no format).
// If it never gets closed, `literal` will be put in its place as text.
func (b *Builder) Open(k format.Kind, key, literal string) error {
	if b.done {
		return ErrFragmentCompleted
	}
	b.frames = append(b.frames, frame{format: k, key: key, literal: literal})
	return nil
}

// IsOpen reports whether a delimiter with key `key` is currently open.
func (b *Builder) IsOpen(key string) bool {
	return b.find(key) > 0
}

func (b *Builder) find(key string) int {
	for i := len(b.frames) - 1; i > 0; i-- {
		if b.frames[i].key == key {
			return i
		}
	}
	return -1
}

// Close closes the innermost open delimiter with key `key`. It returns false
// if there is no such delimiter; the caller then has to decide what to do
// with the closing delimiter.
func (b *Builder) Close(key string) bool {
	if b.done {
		return false
	}
	at := b.find(key)
	if at < 0 {
		return false
	}
	for len(b.frames)-1 > at {
		b.discard()
	}
	f := b.frames[at]
	b.frames = b.frames[:at]
	parent := b.top()
	if f.format == 0 {
		for _, n := range f.nodes {
			parent.nodes = appendNode(parent.nodes, n)
		}
		return true
	}
	if len(f.nodes) > 0 {
		parent.nodes = append(parent.nodes, Element(f.format, f.nodes...))
	}
	return true
}

// discard pops the innermost frame as unmatched.
func (b *Builder) discard() {
	f := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	tracer().Debugf("styled builder: unmatched delimiter %q", f.key)
	parent := b.top()
	if f.literal != "" {
		parent.nodes = appendNode(parent.nodes, TextNode(f.literal))
	}
	for _, n := range f.nodes {
		parent.nodes = appendNode(parent.nodes, n)
	}
}

// Fragment completes the fragment and returns it in normalized form.
// It is illegal to continue adding content after `Fragment` has been called,
// but `Fragment` may be called multiple times.
func (b *Builder) Fragment() *Fragment {
	b.done = true
	for len(b.frames) > 1 {
		b.discard()
	}
	return NewFragment(b.frames[0].nodes...).Normalize()
}
