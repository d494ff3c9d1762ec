package itemized

import (
	"testing"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIterateFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	f := styled.NewFragment(
		styled.TextNode("The "),
		styled.Element(format.Bold, styled.TextNode("quick")),
		styled.TextNode(" fox"),
	)
	iter := IterateFragment(f)
	if iter.Len() != 3 {
		t.Fatalf("expected 3 runs, have %d", iter.Len())
	}
	var texts []string
	for iter.Next() {
		text, formats, from, to := iter.Run()
		t.Logf("%v: %d…%d = %q", formats, from, to, text)
		texts = append(texts, text)
		if text == "quick" && (formats != format.SetOf(format.Bold) || from != 4 || to != 9) {
			t.Errorf("unexpected run for 'quick': %v %d…%d", formats, from, to)
		}
	}
	if len(texts) != 3 || texts[2] != " fox" {
		t.Errorf("unexpected runs %v", texts)
	}
	if text, _, _, _ := iter.Run(); text != "" {
		t.Errorf("expected no run after end of iteration")
	}
}
