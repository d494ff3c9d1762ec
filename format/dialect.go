package format

import (
	"fmt"
	"strings"
)

// Dialect is the serialization convention of a fragment.
type Dialect int

// Supported dialects.
const (
	HTML Dialect = iota
	Markdown
)

func (d Dialect) String() string {
	switch d {
	case HTML:
		return "html"
	case Markdown:
		return "markdown"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ParseDialect returns the dialect for "html" or "markdown" ("md" is accepted, too).
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "html":
		return HTML, nil
	case "markdown", "md":
		return Markdown, nil
	}
	return HTML, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
}

// FormatError is an error type for the format registry.
type FormatError string

func (e FormatError) Error() string {
	return string(e)
}

// ErrUnknownFormat is flagged for format names outside the closed set of kinds.
const ErrUnknownFormat = FormatError("unknown format")

// ErrUnknownDialect is flagged for dialect names other than html and markdown.
const ErrUnknownDialect = FormatError("unknown dialect")
