package styled

import (
	"iter"
	"strings"

	"github.com/npillmayer/fmtoggle/format"
)

// --- Nodes -----------------------------------------------------------------

// Node is either a text leaf (Format == 0) or a format element wrapping
// child nodes. Nodes reachable from a Fragment must not be modified.
type Node struct {
	Format   format.Kind // format of an element, 0 for text
	Text     string      // content of a text leaf
	Children []*Node     // children of an element
}

// TextNode creates a text leaf.
func TextNode(s string) *Node {
	return &Node{Text: s}
}

// Element creates a format element.
func Element(k format.Kind, children ...*Node) *Node {
	return &Node{Format: k, Children: children}
}

// IsText is true for text leaves.
func (n *Node) IsText() bool {
	return n.Format == 0
}

func (n *Node) raw(b *strings.Builder) {
	if n.IsText() {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.raw(b)
	}
}

// --- Styled Fragment -------------------------------------------------------

// Fragment is a styled piece of text.
//
// A fragment created by
//
//	&Fragment{}
//
// is valid and behaves like the empty string.
type Fragment struct {
	nodes []*Node
}

// NewFragment creates a fragment from a sequence of nodes. The result is not
// normalized.
func NewFragment(nodes ...*Node) *Fragment {
	return &Fragment{nodes: nodes}
}

// FragmentFromString creates an unstyled fragment.
func FragmentFromString(s string) *Fragment {
	if s == "" {
		return &Fragment{}
	}
	return &Fragment{nodes: []*Node{TextNode(s)}}
}

// Nodes returns the top-level nodes of f. Clients must not modify them.
func (f *Fragment) Nodes() []*Node {
	if f == nil {
		return nil
	}
	return f.nodes
}

// Raw returns the text of f without any styles.
func (f *Fragment) Raw() string {
	var b strings.Builder
	for _, n := range f.Nodes() {
		n.raw(&b)
	}
	return b.String()
}

// IsVoid reports whether f has no text.
func (f *Fragment) IsVoid() bool {
	return f.Raw() == ""
}

// Spine returns the chain of elements which wrap f as a whole, outermost first.
func (f *Fragment) Spine() []*Node {
	var spine []*Node
	nodes := f.Nodes()
	for len(nodes) == 1 && !nodes[0].IsText() {
		spine = append(spine, nodes[0])
		nodes = nodes[0].Children
	}
	return spine
}

// Wrappers returns the set of formats applied to f as a whole.
func (f *Fragment) Wrappers() format.Set {
	var s format.Set
	for _, n := range f.Spine() {
		s = s.Add(n.Format)
	}
	return s
}

// IsWrapped reports whether f is formatted with k from its first to its last
// character.
func (f *Fragment) IsWrapped(k format.Kind) bool {
	return f.Wrappers().Contains(k)
}

// Wrap returns a new fragment, wrapping f in an element of format k.
// An empty fragment is returned unchanged.
func (f *Fragment) Wrap(k format.Kind) *Fragment {
	if len(f.Nodes()) == 0 {
		return f
	}
	return &Fragment{nodes: []*Node{Element(k, f.nodes...)}}
}

// Unwrap returns a new fragment with the spine element of format k removed.
// If k does not wrap f, f is returned together with false.
func (f *Fragment) Unwrap(k format.Kind) (*Fragment, bool) {
	spine := f.Spine()
	at := -1
	for i, n := range spine {
		if n.Format == k {
			at = i
			break
		}
	}
	if at < 0 {
		return f, false
	}
	// copy the spine above the removed element, bottom up
	children := spine[at].Children
	for i := at - 1; i >= 0; i-- {
		children = []*Node{Element(spine[i].Format, children...)}
	}
	return &Fragment{nodes: children}, true
}

// Normalize returns a canonical version of f:
// adjacent text leaves are merged, empty text and elements without text are
// dropped, and chains of elements wrapping the same text (each element being
// the only child of its parent) are collapsed. In such a chain every format
// occurs once, so <b><b>x</b></b> becomes <b>x</b>, and formats are nested
// in the order of format.Order, the first one innermost:
//
//	<b><i>x</i></b>  →  <i><b>x</b></i>
//
// Elements of a format nested deeper inside an element of the same format,
// as in <b>a <b>b</b> c</b>, are kept.
func (f *Fragment) Normalize() *Fragment {
	return &Fragment{nodes: normalize(f.Nodes())}
}

func normalize(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.IsText() {
			out = appendNode(out, n)
			continue
		}
		children := normalize(n.Children)
		if !n.Format.Valid() {
			for _, c := range children {
				out = appendNode(out, c)
			}
			continue
		}
		if len(children) == 0 {
			continue
		}
		out = append(out, collapseChain(n.Format, children))
	}
	return out
}

// collapseChain wraps normalized children in an element of format k, merging
// it into the chain of single elements the children start with.
func collapseChain(k format.Kind, children []*Node) *Node {
	formats := format.SetOf(k)
	inner := children
	for len(inner) == 1 && !inner[0].IsText() {
		if formats.Contains(inner[0].Format) {
			tracer().Debugf("styled: collapsing nested %v", inner[0].Format)
		}
		formats = formats.Add(inner[0].Format)
		inner = inner[0].Children
	}
	for _, f := range format.Order {
		if formats.Contains(f) {
			inner = []*Node{Element(f, inner...)}
		}
	}
	return inner[0]
}

// appendNode appends n to nodes, merging adjacent text leaves.
func appendNode(nodes []*Node, n *Node) []*Node {
	if !n.IsText() {
		return append(nodes, n)
	}
	if n.Text == "" {
		return nodes
	}
	if last := len(nodes) - 1; last >= 0 && nodes[last].IsText() {
		nodes[last] = TextNode(nodes[last].Text + n.Text)
		return nodes
	}
	return append(nodes, n)
}

// --- Style Runs ------------------------------------------------------------

// StyleChange holds a set of formats and the text position where the run
// of text carrying these formats starts.
type StyleChange struct {
	Formats  format.Set
	Position uint64 // byte position in Raw()
	Length   uint64 // length in bytes
}

// StyleRuns returns a slice of style runs for a styled fragment.
// Adjacent runs never carry identical formats.
func (f *Fragment) StyleRuns() []StyleChange {
	var runs []StyleChange
	_ = f.EachStyleRun(func(content string, formats format.Set, pos uint64) error {
		runs = append(runs, StyleChange{
			Formats:  formats,
			Position: pos,
			Length:   uint64(len(content)),
		})
		return nil
	})
	return runs
}

// EachStyleRun applies a function to each run of text with a single set of
// formats. pos is the byte position of the run within Raw().
//
// This may be thought of as a “push”-interface to access style runs for a text.
// For a “pull”-interface please refer to type `itemized.Iterator`.
func (f *Fragment) EachStyleRun(fn func(content string, formats format.Set, pos uint64) error) error {
	var (
		pos     uint64
		start   uint64
		current format.Set
		content strings.Builder
	)
	flush := func() error {
		if content.Len() == 0 {
			return nil
		}
		s := content.String()
		content.Reset()
		return fn(s, current, start)
	}
	var walk func(nodes []*Node, formats format.Set) error
	walk = func(nodes []*Node, formats format.Set) error {
		for _, n := range nodes {
			if !n.IsText() {
				if err := walk(n.Children, formats.Add(n.Format)); err != nil {
					return err
				}
				continue
			}
			if n.Text == "" {
				continue
			}
			if formats != current {
				if err := flush(); err != nil {
					return err
				}
				current, start = formats, pos
			}
			content.WriteString(n.Text)
			pos += uint64(len(n.Text))
		}
		return nil
	}
	if err := walk(f.Nodes(), 0); err != nil {
		return err
	}
	return flush()
}

// RangeStyleRun returns an iterator over the style runs of f.
func (f *Fragment) RangeStyleRun() iter.Seq2[string, format.Set] {
	return func(yield func(string, format.Set) bool) {
		_ = f.EachStyleRun(func(content string, formats format.Set, pos uint64) error {
			if !yield(content, formats) {
				return errStopIteration
			}
			return nil
		})
	}
}

const errStopIteration = StyledError("stop iteration")
