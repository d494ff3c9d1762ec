package inline

import (
	"testing"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHTMLParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	f := FromHTML(`My <b>first</b> paragraph.`)
	t.Logf("text = '%s'", f.Raw())
	if f.Raw() != "My first paragraph." {
		t.Errorf("unexpected text %q", f.Raw())
	}
	runs := f.StyleRuns()
	if len(runs) != 3 || runs[1].Formats != format.SetOf(format.Bold) {
		t.Errorf("expected bold run in the middle, have %v", runs)
	}
}

func TestHTMLAllowList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	cases := []struct {
		input    string
		raw      string
		wrappers format.Set
	}{
		{`<b>hello</b>`, "hello", format.SetOf(format.Bold)},
		{`<script>alert(1)</script>`, "alert(1)", 0},
		{`<b onclick="alert(1)">a</b>`, "a", format.SetOf(format.Bold)},
		{`<span style="color: red">x</span>`, "x", 0},
		{`<span style="text-decoration: overline">x</span>`, "x", format.SetOf(format.Overline)},
		{`<div><i><sub>x</sub></i></div>`, "x", format.SetOf(format.Italic, format.Subscript)},
		{`<b>x`, "x", 0},
		{`x</i>`, "x", 0},
		{`<b><i>x</b></i>`, "x", format.SetOf(format.Bold)},
		{`a &amp; b &lt;c&gt;`, "a & b <c>", 0},
		{`<!-- note -->plain<br/>`, "plain", 0},
		{``, "", 0},
	}
	for _, c := range cases {
		f := FromHTML(c.input)
		if f.Raw() != c.raw {
			t.Errorf("%s: expected text %q, have %q", c.input, c.raw, f.Raw())
		}
		if f.Wrappers() != c.wrappers {
			t.Errorf("%s: expected wrappers %v, have %v", c.input, c.wrappers, f.Wrappers())
		}
	}
}

func TestHTMLNestedSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	f := FromHTML(`<span style="text-decoration: overline"><span>x</span>y</span>`)
	if !f.IsWrapped(format.Overline) || f.Raw() != "xy" {
		t.Errorf("expected overline around 'xy', have %v / %q", f.Wrappers(), f.Raw())
	}
}
