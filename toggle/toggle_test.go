package toggle

import (
	"testing"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
	"github.com/npillmayer/fmtoggle/styled/formatter"
	"github.com/npillmayer/fmtoggle/styled/inline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func html(f *styled.Fragment) string {
	return formatter.HTMLString(f, nil)
}

func TestToggleOnOff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	for i, test := range []struct {
		in  string
		set format.Set
		out string
	}{
		{"hello", format.SetOf(format.Bold), "<b>hello</b>"},
		{"<b>hello</b>", format.SetOf(format.Bold), "hello"},
		{"hi", format.SetOf(format.Bold, format.Italic), "<i><b>hi</b></i>"},
		{"<i><b>hi</b></i>", format.SetOf(format.Bold), "<i>hi</i>"},
		{"<i><b>hi</b></i>", format.SetOf(format.Bold, format.Italic), "hi"},
		{"<b>a</b> <b>c</b>", format.SetOf(format.Bold), "<b><b>a</b> <b>c</b></b>"},
		{"<b><i>hi</i></b>", format.SetOf(format.Bold), "<i>hi</i>"},
		{"<i>hi</i>", format.SetOf(format.Bold), "<i><b>hi</b></i>"},
		{"<u>x</u>", 0, "<u>x</u>"},
		{"x", format.SetOf(format.Overline), `<span style="text-decoration: overline">x</span>`},
		{"<sub>x</sub>", format.SetOf(format.Subscript, format.Superscript), "<sup>x</sup>"},
	} {
		out := html(Apply(inline.FromHTML(test.in), test.set))
		if out != test.out {
			t.Errorf("test #%d: expected %q, have %q", i, test.out, out)
		}
	}
}

func TestEmptyFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	f := &styled.Fragment{}
	if g := Apply(f, format.All); g != f {
		t.Errorf("expected empty fragment to be returned unchanged")
	}
	if Apply(nil, format.All) != nil {
		t.Errorf("expected nil to stay nil")
	}
}

func TestTogglePairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	inputs := []string{
		"plain",
		"<b>bold</b>",
		"<i>a <u>b</u></i>",
		"a <sup>2</sup> b",
		`<span style="text-decoration: overline">x</span>`,
		"a <b>b</b> c",
		"<b>hello</b> world",
		"<b><i>x</i></b>",
		"<i>a <b>b</b></i> <b>c</b>",
	}
	for _, in := range inputs {
		f := inline.FromHTML(in)
		for _, k := range format.Order {
			twice := Apply(Apply(f, format.SetOf(k)), format.SetOf(k))
			if html(twice) != html(f) {
				t.Errorf("%v twice on %q: have %q", k, in, html(twice))
			}
		}
	}
}

func TestNoNestedDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	f := inline.FromHTML("a <b>b</b> c")
	g := Apply(f, format.SetOf(format.Bold))
	if html(g) != "<b>a <b>b</b> c</b>" {
		t.Errorf("expected inner bold to be kept, have %q", html(g))
	}
	if html(Apply(g, format.SetOf(format.Bold))) != "a <b>b</b> c" {
		t.Errorf("expected inner bold to survive toggling off")
	}
	var check func([]*styled.Node, format.Set)
	check = func(nodes []*styled.Node, chain format.Set) {
		for _, n := range nodes {
			if n.IsText() {
				continue
			}
			if chain.Contains(n.Format) {
				t.Errorf("%v immediately nested inside itself", n.Format)
			}
			if len(n.Children) == 1 {
				check(n.Children, chain.Add(n.Format))
			} else {
				check(n.Children, 0)
			}
		}
	}
	for _, in := range []string{"<i>x <i>y</i></i>", "<b>x</b>", "<i><b>x</b></i>", "<u><b>x</b></u>"} {
		check(Apply(inline.FromHTML(in), format.SetOf(format.Bold)).Nodes(), 0)
		check(Apply(inline.FromHTML(in), format.SetOf(format.Bold, format.Italic)).Nodes(), 0)
	}
}

func TestActive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	f := inline.FromMarkdown("*\u200b**hi**\u200b*")
	if !IsActive(f, format.Bold) || !IsActive(f, format.Italic) || IsActive(f, format.Underline) {
		t.Errorf("expected bold and italic to be active, have %v", Active(f))
	}
	g := inline.FromMarkdown("**a** b")
	if IsActive(g, format.Bold) {
		t.Errorf("partial bold must not count as active")
	}
	if Active(nil) != 0 {
		t.Errorf("expected no formats for nil fragment")
	}
}
