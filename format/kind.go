package format

import (
	"fmt"
	"strings"
)

// Kind is a single inline text format. Kinds are bits, so they may be combined
// into a Set.
type Kind uint8

// The closed set of inline formats.
const (
	Bold Kind = 1 << iota
	Italic
	Underline
	Strikethrough
	Overline
	Subscript
	Superscript
)

// Order is the fixed order in which formats are toggled. It determines the
// nesting of wrappers produced by toggling more than one format at once.
var Order = [...]Kind{Bold, Italic, Underline, Strikethrough, Subscript, Superscript, Overline}

func kindName(k Kind) string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Strikethrough:
		return "strikethrough"
	case Overline:
		return "overline"
	case Subscript:
		return "subscript"
	case Superscript:
		return "superscript"
	}
	return ""
}

func (k Kind) String() string {
	if n := kindName(k); n != "" {
		return n
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid is true for exactly the seven defined kinds.
func (k Kind) Valid() bool {
	return kindName(k) != ""
}

// ParseKind returns the kind for a format name like "bold" or "Superscript".
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, k := range Order {
		if kindName(k) == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// --- Sets ------------------------------------------------------------------

// Set is a set of format kinds. The zero value is the empty set.
// Sets are values; adding or removing kinds returns a new set.
type Set uint8

// All contains every format kind.
const All = Set(Bold | Italic | Underline | Strikethrough | Overline | Subscript | Superscript)

// SetOf creates a set from a list of kinds.
func SetOf(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add returns s with k added.
func (s Set) Add(k Kind) Set {
	return s | Set(k)
}

// Minus returns s with k removed.
func (s Set) Minus(k Kind) Set {
	return s & ^Set(k)
}

// Toggle returns s with k added if absent and removed if present.
func (s Set) Toggle(k Kind) Set {
	return s ^ Set(k)
}

// Contains reports whether k is a member of s.
func (s Set) Contains(k Kind) bool {
	return k != 0 && s&Set(k) == Set(k)
}

// Intersect returns the kinds present in both s and other.
func (s Set) Intersect(other Set) Set {
	return s & other
}

// IsEmpty is true for the empty set.
func (s Set) IsEmpty() bool {
	return s&All == 0
}

// Kinds lists the members of s in toggle order.
func (s Set) Kinds() []Kind {
	kinds := make([]Kind, 0, len(Order))
	for _, k := range Order {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s Set) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	names := make([]string, 0, len(Order))
	for _, k := range s.Kinds() {
		names = append(names, k.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// ParseSet parses a list of format names. An empty list yields the empty set.
func ParseSet(names []string) (Set, error) {
	var s Set
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := ParseKind(name)
		if err != nil {
			return s, err
		}
		s = s.Add(k)
	}
	return s, nil
}
