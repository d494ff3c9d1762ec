package formatter

import (
	"strings"
	"testing"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
	"github.com/npillmayer/fmtoggle/styled/inline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
)

func TestHTMLOutput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	f := styled.NewFragment(
		styled.TextNode("a < b & "),
		styled.Element(format.Italic, styled.Element(format.Bold, styled.TextNode("c"))),
		styled.Element(format.Overline, styled.TextNode("x")),
	)
	html := HTMLString(f, nil)
	expected := `a &lt; b &amp; <i><b>c</b></i><span style="text-decoration: overline">x</span>`
	if html != expected {
		t.Errorf("expected\n%s\nhave\n%s", expected, html)
	}
	display := HTMLString(f, SemanticTags)
	expected = `a &lt; b &amp; <em><strong>c</strong></em><span style="text-decoration: overline">x</span>`
	if display != expected {
		t.Errorf("expected\n%s\nhave\n%s", expected, display)
	}
	if HTMLString(f, PresentationalTags) != html {
		t.Errorf("presentational tags should equal the serialized form")
	}
}

func TestSemanticRemap(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, k := range format.Order {
		f := styled.FragmentFromString("x").Wrap(k)
		s := HTMLString(f, SemanticTags)
		if !strings.HasSuffix(s, "x</"+SemanticTags[k]+">") {
			t.Errorf("%v: unexpected display form %s", k, s)
		}
	}
}

func TestMarkdownOutput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for i, test := range []struct {
		f        *styled.Fragment
		expected string
	}{
		{styled.FragmentFromString("hi").Wrap(format.Bold), "**hi**"},
		{styled.FragmentFromString("hi").Wrap(format.Bold).Wrap(format.Italic), "*\u200b**hi**\u200b*"},
		{styled.FragmentFromString("hi").Wrap(format.Subscript).Wrap(format.Strikethrough), "~~\u200b~hi~\u200b~~"},
		{styled.FragmentFromString("hi").Wrap(format.Underline).Wrap(format.Italic), "*__hi__*"},
		{styled.FragmentFromString("x").Wrap(format.Overline), `<span style="text-decoration: overline">x</span>`},
		{styled.FragmentFromString("2*3 ~ 4^2"), `2\*3 \~ 4\^2`},
		{styled.FragmentFromString("snake_case"), "snake_case"},
		{styled.FragmentFromString("__init__"), `\_\_init\_\_`},
		{styled.FragmentFromString(`C:\path\`), `C:\path\\`},
		{styled.FragmentFromString("a<b & c"), "a&lt;b &amp; c"},
		{styled.NewFragment(styled.Element(format.Bold, styled.TextNode("a "),
			styled.Element(format.Bold, styled.TextNode("b")))), "**a <b>b</b>**"},
		{styled.NewFragment(styled.Element(format.Bold, styled.TextNode("\u200b"),
			styled.Element(format.Italic, styled.TextNode("x")))), "**\\\u200b*x*\u200b**"},
	} {
		if md := MarkdownString(test.f); md != test.expected {
			t.Errorf("test #%d: expected %q, have %q", i, test.expected, md)
		}
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, text := range []string{
		"Hello **World**",
		"*a* **b** ~~c~~ ~d~ ^e^ __f__",
		`literal \* and _x_ and C:\dir\`,
		"*\u200b**both**\u200b*",
		"2 < 3 && 4 > 1",
		`<span style="text-decoration: overline">x</span> rest`,
		"**a <b>b</b> c** and *<i>d</i>*",
		"**\\\u200b*x*\u200b**",
	} {
		f := inline.FromMarkdown(text)
		md := MarkdownString(f)
		g := inline.FromMarkdown(md)
		if f.Raw() != g.Raw() || HTMLString(f, nil) != HTMLString(g, nil) {
			t.Errorf("round trip of %q failed: %q", text, md)
		}
	}
}

func TestConsoleOutput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	f := inline.FromHTML("hello <b>world</b>")
	c := NewConsole(&Config{LineWidth: 6, Context: uax11.LatinContext}, nil)
	var out strings.Builder
	if err := c.Print(f, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello \nworld\n" {
		t.Errorf("expected two lines without colors, have %q", out.String())
	}
	c = NewConsole(&Config{Colors: true}, nil)
	out.Reset()
	c.Print(f, &out)
	if !strings.Contains(out.String(), "\x1b[1mworld") {
		t.Errorf("expected bold SGR sequence, have %q", out.String())
	}
	if err := c.Print(nil, &out); err == nil {
		t.Errorf("expected error for nil fragment")
	}
}

func TestFirstFit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	text := "The quick brown fox"
	breaks := firstFit(text, 0, uax11.LatinContext)
	if len(breaks) != 1 || breaks[0] != len(text) {
		t.Errorf("expected no breaks for line width 0, have %v", breaks)
	}
	breaks = firstFit(text, 10, uax11.LatinContext)
	if breaks[len(breaks)-1] != len(text) || len(breaks) < 2 {
		t.Errorf("expected text to wrap, have %v", breaks)
	}
}
