package fmtoggle

import (
	"sync"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/sanitize"
	"github.com/npillmayer/fmtoggle/styled/formatter"
	"github.com/npillmayer/fmtoggle/toggle"
	"github.com/npillmayer/uax/grapheme"
)

// Engine applies formats to text fragments. Engines are immutable and safe
// for concurrent use.
type Engine struct {
	config  Config
	display formatter.TagTable
}

// New creates an engine for a configuration. Zero values of config are
// replaced by defaults (see DefaultConfig).
func New(config Config) (*Engine, error) {
	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{config: config, display: formatter.SemanticTags}
	if config.Display == Presentational {
		e.display = formatter.PresentationalTags
	}
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// ApplyFormatting toggles every format of formats on text in dialect d.
//
// text is sanitized first. Formats are then processed in the order of
// format.Order: a format wrapping all of the text is removed, others are
// wrapped around it. Formats not enabled for the engine are ignored.
// The result is sanitized again and never contains a format immediately
// nested inside itself. Empty text is returned unchanged.
func (e *Engine) ApplyFormatting(text string, formats format.Set, d format.Dialect) string {
	if text == "" {
		return text
	}
	if ignored := formats &^ e.config.Enabled; !ignored.IsEmpty() {
		T().Debugf("apply: formats %v not enabled", ignored)
	}
	formats = formats.Intersect(e.config.Enabled)
	f := toggle.Apply(sanitize.Parse(text, d), formats)
	out := sanitize.Fragment(formatter.String(f, d), d)
	T().Debugf("apply %v (%v): %q → %q", formats, d, text, out)
	return out
}

// ToDisplayForm converts text in dialect d to sanitized HTML for display,
// using the engine's display tags (e.g., <strong> for bold).
func (e *Engine) ToDisplayForm(text string, d format.Dialect) string {
	if text == "" {
		return text
	}
	return formatter.HTMLString(sanitize.Parse(text, d), e.display)
}

// StripToPlain removes all markup from text in dialect d.
func (e *Engine) StripToPlain(text string, d format.Dialect) string {
	return sanitize.StripAllMarkup(text, d)
}

// IsFormatActiveIn reports whether format k wraps all of text, which is
// interpreted in the engine's default dialect. It is meant for synchronizing
// the state of toggle buttons with a selection.
func (e *Engine) IsFormatActiveIn(text string, k format.Kind) bool {
	return toggle.IsActive(sanitize.Parse(text, e.config.Dialect), k)
}

// ActiveFormats returns the formats wrapping all of text in dialect d.
func (e *Engine) ActiveFormats(text string, d format.Dialect) format.Set {
	return toggle.Active(sanitize.Parse(text, d)).Intersect(e.config.Enabled)
}

// VisibleLength counts the user-perceived characters (grapheme clusters) of
// text in dialect d, markup not included.
func (e *Engine) VisibleLength(text string, d format.Dialect) int {
	plain := e.StripToPlain(text, d)
	if plain == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return grapheme.StringFromString(plain).Len()
}

// WithinLimit reports whether the visible length of text does not exceed the
// configured maximum length. It is always true if no maximum is configured.
// The engine itself never rejects over-length text.
func (e *Engine) WithinLimit(text string, d format.Dialect) bool {
	if e.config.MaxLength == 0 {
		return true
	}
	return e.VisibleLength(text, d) <= e.config.MaxLength
}

var setupGraphemes sync.Once

// --- Default engine --------------------------------------------------------

var std = func() *Engine {
	e, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return e
}()

// Default returns the engine used by the package-level functions.
func Default() *Engine {
	return std
}

// ApplyFormatting toggles formats on text, using the default engine.
// See Engine.ApplyFormatting.
func ApplyFormatting(text string, formats format.Set, d format.Dialect) string {
	return std.ApplyFormatting(text, formats, d)
}

// ToDisplayForm converts text to HTML for display, using the default engine.
// See Engine.ToDisplayForm.
func ToDisplayForm(text string, d format.Dialect) string {
	return std.ToDisplayForm(text, d)
}

// StripToPlain removes all markup from text.
func StripToPlain(text string, d format.Dialect) string {
	return std.StripToPlain(text, d)
}

// IsFormatActiveIn reports whether format k wraps all of an HTML fragment.
func IsFormatActiveIn(text string, k format.Kind) bool {
	return std.IsFormatActiveIn(text, k)
}
