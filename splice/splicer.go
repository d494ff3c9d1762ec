package splice

import (
	"unicode/utf8"

	"github.com/guiguan/caster"

	"github.com/npillmayer/fmtoggle/format"
)

// Buffer is the part of a text-input widget a Splicer works on.
// Widgets report changes of their text by calling Splicer.TextChanged, either
// from within SetText or later.
type Buffer interface {
	Text() string
	SetText(string)
	SetCaret(int) // rune offset
}

// Formatter applies a set of formats to a text fragment. *fmtoggle.Engine
// implements it.
type Formatter interface {
	ApplyFormatting(text string, formats format.Set, d format.Dialect) string
}

// State is the state of a Splicer.
type State int

// States of a Splicer.
const (
	Idle State = iota
	Splicing
)

func (s State) String() string {
	if s == Splicing {
		return "splicing"
	}
	return "idle"
}

// Range is a half-open selection [Start, End) in rune offsets. Start == End
// denotes a caret without selection.
type Range struct {
	Start int
	End   int
}

// IsEmpty is true for a caret without selection.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Result reports the outcome of a call to Apply.
type Result struct {
	Text    string // buffer text after the splice
	Caret   int    // caret position after the splice, in runes
	Clamped bool   // the requested range was out of bounds and has been clamped
	Changed bool   // the buffer text has been changed
}

// Splicer applies formatting to selections of a buffer.
type Splicer struct {
	buf     Buffer
	fmtr    Formatter
	dialect format.Dialect
	state   State
	armed   format.Set
	last    string // buffer text as last seen
	caret   pendingCaret
	cast    *caster.Caster // created with the first subscription
}

type pendingCaret struct {
	pos      int
	pending  bool
	observed bool // the widget has reported the text of the splice
}

// New creates a Splicer for a buffer, formatting with fmtr in dialect d.
func New(buf Buffer, fmtr Formatter, d format.Dialect) *Splicer {
	return &Splicer{
		buf:     buf,
		fmtr:    fmtr,
		dialect: d,
		last:    buf.Text(),
	}
}

// State returns the current state of the splicer.
func (s *Splicer) State() State {
	return s.state
}

// Armed returns the formats armed for the next inserted run of characters.
func (s *Splicer) Armed() format.Set {
	return s.armed
}

// Disarm clears the armed formats, e.g. after the caret has been moved.
func (s *Splicer) Disarm() {
	if !s.armed.IsEmpty() {
		s.armed = 0
		s.publish(Event{Kind: Armed})
	}
}

// Apply toggles formats on the selection r.
//
// Out-of-range offsets are clamped into the buffer, with Result.Clamped set.
// For an empty selection, formats are toggled in the armed set and the buffer
// stays untouched (a clamped selection never arms formats). Otherwise the selected text is replaced by its formatted
// version, and the caret is set behind it, at
//
//	r.Start + length(formatted text)
//
// Apply returns ErrSpliceInProgress if it is called while a splice is running,
// e.g. from a change notification of the buffer.
func (s *Splicer) Apply(r Range, formats format.Set) (Result, error) {
	if s.state == Splicing {
		tracer().Infof("splice: refusing reentrant splice of %v", r)
		return Result{}, ErrSpliceInProgress
	}
	text := s.buf.Text()
	runes := []rune(text)
	r, clamped := clampRange(r, len(runes))
	if clamped {
		tracer().Infof("splice: selection clamped to [%d,%d)", r.Start, r.End)
	}
	if r.IsEmpty() {
		if clamped {
			return Result{Text: text, Caret: r.Start, Clamped: true}, nil
		}
		s.armed ^= formats
		tracer().Debugf("splice: armed formats %v", s.armed)
		s.publish(Event{Kind: Armed})
		return Result{Text: text, Caret: r.Start, Clamped: clamped}, nil
	}
	return s.splice(runes, r, formats, clamped), nil
}

func (s *Splicer) splice(runes []rune, r Range, formats format.Set, clamped bool) Result {
	sel := string(runes[r.Start:r.End])
	out := s.fmtr.ApplyFormatting(sel, formats, s.dialect)
	text := string(runes[:r.Start]) + out + string(runes[r.End:])
	res := Result{
		Text:    text,
		Caret:   r.Start + utf8.RuneCountInString(out),
		Clamped: clamped,
		Changed: out != sel,
	}
	tracer().Debugf("splice: [%d,%d) %q → %q", r.Start, r.End, sel, out)
	s.caret = pendingCaret{pos: res.Caret, pending: true}
	s.state = Splicing
	s.last = text
	s.buf.SetText(text)
	s.state = Idle
	s.publish(Event{Kind: Spliced, Result: res})
	if s.caret.observed {
		s.Settle()
	}
	return res
}

// TextChanged is to be called by the widget whenever its text has changed.
//
// Notifications for the text of a splice are never handled as user edits.
// Once the widget has reported the text of a splice, the pending caret
// position is applied; a user edit arriving first discards it. Other changes
// are user edits: if formats are armed and the edit inserted a run of
// characters, the run is formatted and the formats are disarmed.
func (s *Splicer) TextChanged(text string) {
	if s.state == Splicing {
		s.caret.observed = true
		return
	}
	if s.caret.pending {
		if text == s.last {
			s.caret.observed = true
			s.Settle()
			return
		}
		tracer().Debugf("splice: user edit before settle, dropping caret %d", s.caret.pos)
		s.caret = pendingCaret{}
	}
	prev := s.last
	s.last = text
	if s.armed.IsEmpty() {
		return
	}
	r, ok := insertedRun(prev, text)
	if !ok {
		return
	}
	formats := s.armed
	s.armed = 0
	s.publish(Event{Kind: Armed})
	s.splice([]rune(text), r, formats, false)
}

// Settle applies a pending caret position. Widgets which do not report their
// own changes call it after having accepted the text of a splice.
// It returns false if there was no pending caret position.
func (s *Splicer) Settle() bool {
	if !s.caret.pending {
		return false
	}
	pos := s.caret.pos
	s.caret = pendingCaret{}
	tracer().Debugf("splice: caret settles at %d", pos)
	s.buf.SetCaret(pos)
	s.publish(Event{Kind: Settled, Caret: pos})
	return true
}

// insertedRun finds the run of characters inserted into prev to produce text.
// It is false if the change is not a pure insertion.
func insertedRun(prev, text string) (Range, bool) {
	a, b := []rune(prev), []rune(text)
	if len(b) <= len(a) {
		return Range{}, false
	}
	p := 0
	for p < len(a) && a[p] == b[p] {
		p++
	}
	q := 0
	for q < len(a)-p && a[len(a)-1-q] == b[len(b)-1-q] {
		q++
	}
	if p+q != len(a) {
		return Range{}, false
	}
	return Range{Start: p, End: len(b) - q}, true
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampRange(r Range, length int) (Range, bool) {
	c := Range{Start: clampInt(r.Start, 0, length), End: clampInt(r.End, 0, length)}
	if c.Start > c.End {
		c.Start = c.End
	}
	return c, c != r
}
