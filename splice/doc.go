/*
Package splice applies inline formatting to a selected range of a text buffer.

A Splicer sits between a text-input widget and a formatting engine. It extracts
the selected range, formats it, splices the result back into the buffer and
moves the caret behind the formatted span. A Splicer is a state machine with
two states, Idle and Splicing:

	Idle ──Apply──▶ Splicing ──buffer updated──▶ Idle

While splicing, change notifications from the widget are recognized as the
echo of the splice and are never treated as user edits; a new splice is
refused with ErrSpliceInProgress. The caret is positioned only after the
widget has reported the new text (or after an explicit call to Settle), as
widgets may not accept a caret position before they have accepted the text.

Toggling formats with an empty selection arms them: they apply to the next
run of characters inserted by the user, then disarm.

Offsets are counted in runes. Splicers are not safe for concurrent use;
they are meant to be driven from a single event loop.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package splice

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fmtoggle'
func tracer() tracing.Trace {
	return tracing.Select("fmtoggle")
}

// SpliceError is an error type for the splice package.
type SpliceError string

func (e SpliceError) Error() string {
	return string(e)
}

// ErrSpliceInProgress is flagged if a splice is requested while another one
// has not yet returned.
const ErrSpliceInProgress = SpliceError("splice in progress")
