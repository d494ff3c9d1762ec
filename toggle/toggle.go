/*
Package toggle switches inline formats on and off for a whole fragment.

A format is active for a fragment if the fragment is wrapped by it from its
first to its last character, i.e. if an element of that format is found on the
fragment's wrapper spine (see styled.Fragment.Spine). Toggling an active format
removes exactly that element, toggling an inactive one wraps the fragment.

Formats are processed in a fixed order (format.Order), so applying a set of
formats always produces the same nesting:

	toggle.Apply(styled.FragmentFromString("hi"), format.SetOf(format.Bold, format.Italic))
	// <i><b>hi</b></i>

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package toggle

import (
	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/styled"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fmtoggle'
func tracer() tracing.Trace {
	return tracing.Select("fmtoggle")
}

// Apply toggles every format of set on f, in the order of format.Order, and
// returns the normalized result. f is not modified. An empty fragment is
// returned as is.
func Apply(f *styled.Fragment, set format.Set) *styled.Fragment {
	if f == nil || f.IsVoid() {
		return f
	}
	for _, k := range set.Kinds() {
		f = Toggle(f, k)
	}
	return f.Normalize()
}

// Toggle toggles a single format on f.
func Toggle(f *styled.Fragment, k format.Kind) *styled.Fragment {
	if u, ok := f.Unwrap(k); ok {
		tracer().Debugf("toggle: %v off", k)
		return u
	}
	tracer().Debugf("toggle: %v on", k)
	return f.Wrap(k)
}

// IsActive reports whether format k wraps all of f.
func IsActive(f *styled.Fragment, k format.Kind) bool {
	return f != nil && f.IsWrapped(k)
}

// Active returns the set of formats wrapping all of f. It is meant for
// synchronizing the state of toggle buttons with a selection.
func Active(f *styled.Fragment) format.Set {
	if f == nil {
		return 0
	}
	return f.Wrappers()
}
