package format

import (
	"errors"
	"testing"

	"golang.org/x/net/html/atom"
)

func TestHTMLTags(t *testing.T) {
	for _, k := range Order {
		open, close := k.HTMLTags()
		if open == "" || close == "" {
			t.Errorf("%v has no HTML mapping", k)
		}
	}
	open, close := Bold.HTMLTags()
	if open != "<b>" || close != "</b>" {
		t.Errorf("bold tags = %s…%s", open, close)
	}
	open, close = Overline.HTMLTags()
	if open != `<span style="text-decoration: overline">` || close != "</span>" {
		t.Errorf("overline tags = %s…%s", open, close)
	}
}

func TestMarkdownMarkers(t *testing.T) {
	cnt := 0
	for _, k := range Order {
		if m, ok := k.MarkdownMarker(); ok {
			cnt++
			back, ok := KindOfMarker(m)
			if !ok || back != k {
				t.Errorf("marker %q does not map back to %v", m, k)
			}
		}
	}
	if cnt != 6 {
		t.Errorf("expected 6 kinds with a Markdown marker, have %d", cnt)
	}
	if _, ok := Overline.MarkdownMarker(); ok {
		t.Errorf("overline is not expected to have a native marker")
	}
	if k, ok := KindOfMarker("‾"); !ok || k != Overline {
		t.Errorf("expected ‾ to be accepted as overline marker")
	}
}

func TestKindOfTag(t *testing.T) {
	if k, ok := KindOfTag(atom.Sup, ""); !ok || k != Superscript {
		t.Errorf("expected <sup> to be superscript, is %v", k)
	}
	if k, ok := KindOfTag(atom.Span, " Text-Decoration:overline; "); !ok || k != Overline {
		t.Errorf("expected overline span to be recognized, is %v", k)
	}
	if _, ok := KindOfTag(atom.Span, "color: red"); ok {
		t.Errorf("expected span with foreign style to have no kind")
	}
	if _, ok := KindOfTag(atom.Script, ""); ok {
		t.Errorf("expected <script> to have no kind")
	}
}

func TestSet(t *testing.T) {
	s := SetOf(Italic, Bold)
	if !s.Contains(Bold) || !s.Contains(Italic) || s.Contains(Overline) {
		t.Errorf("unexpected set content %v", s)
	}
	kinds := s.Kinds()
	if len(kinds) != 2 || kinds[0] != Bold || kinds[1] != Italic {
		t.Errorf("expected kinds in toggle order, have %v", kinds)
	}
	s = s.Toggle(Bold).Toggle(Overline)
	if s.String() != "{italic,overline}" {
		t.Errorf("s = %s", s)
	}
	if !s.Minus(Italic).Minus(Overline).IsEmpty() {
		t.Errorf("expected set to be empty")
	}
}

func TestParse(t *testing.T) {
	s, err := ParseSet([]string{"Bold", " superscript", ""})
	if err != nil {
		t.Fatal(err)
	}
	if s != SetOf(Bold, Superscript) {
		t.Errorf("s = %v", s)
	}
	if _, err = ParseKind("blink"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, have %v", err)
	}
	if d, err := ParseDialect("md"); err != nil || d != Markdown {
		t.Errorf("expected md to be Markdown, is %v (%v)", d, err)
	}
	if _, err := ParseDialect("rtf"); !errors.Is(err, ErrUnknownDialect) {
		t.Errorf("expected ErrUnknownDialect, have %v", err)
	}
}

func TestLabels(t *testing.T) {
	for _, k := range Order {
		if k.Label() == "" || k.Icon() == "" {
			t.Errorf("%v lacks label or icon", k)
		}
	}
	if Kind(0).Label() != "" {
		t.Errorf("expected no label for zero kind")
	}
}
