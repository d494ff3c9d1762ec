/*
Package styled makes styled text.

A styled fragment is a small tree: text leaves, wrapped by format elements
(bold, italic, …). Fragments are parsed from one of the serialization
dialects (see package inline), transformed by toggling formats and written
back by a formatter. Fragments are immutable: every operation returns a new
fragment, sharing unchanged sub-trees with its source.

The outermost chain of elements, each being the only child of its parent,
is called the fragment's spine. Every element on the spine covers the
fragment from its very first to its very last character, which makes the
spine the place to look for formats applied to a fragment as a whole.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fmtoggle'
func tracer() tracing.Trace {
	return tracing.Select("fmtoggle")
}

// StyledError is an error type for package styled.
type StyledError string

func (e StyledError) Error() string {
	return string(e)
}

// ErrFragmentCompleted signals that a builder has already completed a fragment
// and it's illegal to further add content.
const ErrFragmentCompleted = StyledError("forbidden to add content; fragment has been completed")
