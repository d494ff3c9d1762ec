package splice

import (
	"context"

	"github.com/guiguan/caster"

	"github.com/npillmayer/fmtoggle/format"
)

// EventKind tells what has happened to a splicer.
type EventKind int

// Kinds of events.
const (
	Spliced EventKind = iota // a selection has been formatted
	Armed                    // the armed formats have changed
	Settled                  // the caret has been positioned after a splice
)

func (k EventKind) String() string {
	switch k {
	case Spliced:
		return "spliced"
	case Armed:
		return "armed"
	}
	return "settled"
}

// Event is broadcast to subscribers of a splicer. UI elements like toggle
// buttons subscribe to keep their state in sync with the splicer.
type Event struct {
	Kind   EventKind
	Result Result     // for Spliced
	Armed  format.Set // formats armed after the event
	Caret  int        // for Settled
}

// Subscribe returns a channel receiving the splicer's events, each as a value
// of type Event. The subscription ends when ctx is done or the splicer
// is closed. Publishing never waits for subscribers: an event is dropped for
// a subscriber whose channel is full.
func (s *Splicer) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	if s.cast == nil {
		s.cast = caster.New(context.Background())
	}
	return s.cast.Sub(ctx, capacity)
}

// Close ends all subscriptions. It is safe to call Close on a splicer
// without subscribers.
func (s *Splicer) Close() {
	if s.cast != nil {
		s.cast.Close()
	}
}

func (s *Splicer) publish(ev Event) {
	if s.cast == nil {
		return
	}
	ev.Armed = s.armed
	if !s.cast.TryPub(ev) {
		tracer().Debugf("splice: event %v not published, splicer closed", ev.Kind)
	}
}
