package itemized

import (
	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
)

// Iterator is a “pull”-interface for the style runs of a fragment.
//
//	iter := itemized.IterateFragment(fragment)
//	for iter.Next() {
//	    text, formats, from, to := iter.Run()
//	    …
//	}
type Iterator struct {
	raw  string
	runs []styled.StyleChange
	inx  int
}

// IterateFragment creates an iterator over the style runs of a fragment.
func IterateFragment(f *styled.Fragment) *Iterator {
	return &Iterator{
		raw:  f.Raw(),
		runs: f.StyleRuns(),
	}
}

// Next advances to the next style run. It returns false if there are no more runs.
func (it *Iterator) Next() bool {
	if it.inx >= len(it.runs) {
		it.inx = len(it.runs) + 1
		return false
	}
	it.inx++
	return true
}

// Run returns the style run at the current iterator position: its text, its
// formats and the byte indices [from…to) of the run within the raw text.
func (it *Iterator) Run() (string, format.Set, uint64, uint64) {
	if it.inx == 0 || it.inx > len(it.runs) {
		return "", 0, 0, 0
	}
	s := it.runs[it.inx-1]
	from, to := s.Position, s.Position+s.Length
	return it.raw[from:to], s.Formats, from, to
}

// Len returns the number of style runs.
func (it *Iterator) Len() int {
	return len(it.runs)
}
