package fmtoggle

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"github.com/npillmayer/fmtoggle/format"
)

// Display selects the tag table used by ToDisplayForm.
type Display int

const (
	// Semantic displays <strong>, <em>, <u>, <del>, <sub>, <sup>.
	Semantic Display = iota
	// Presentational displays the registry's tags <b>, <i>, <u>, <s>, <sub>, <sup>.
	Presentational
)

func (d Display) String() string {
	if d == Presentational {
		return "presentational"
	}
	return "semantic"
}

// ParseDisplay returns the display style for "semantic" or "presentational".
func ParseDisplay(name string) (Display, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "semantic":
		return Semantic, nil
	case "presentational":
		return Presentational, nil
	}
	return Semantic, fmt.Errorf("%w: %q", ErrInvalidDisplay, name)
}

// Config holds the settings of an engine.
type Config struct {
	Dialect   format.Dialect // dialect for calls without a dialect argument
	Enabled   format.Set     // formats offered to users; 0 means all
	Display   Display        // tag table for display
	MaxLength int            // visible characters, 0 for no limit
}

// DefaultConfig returns a configuration for HTML with every format enabled,
// semantic display and no length limit.
func DefaultConfig() Config {
	return Config{Dialect: format.HTML, Enabled: format.All, Display: Semantic}
}

func (c Config) withDefaults() Config {
	if c.Enabled.IsEmpty() {
		c.Enabled = format.All
	}
	return c
}

// Validate checks a configuration and reports all problems found.
func (c Config) Validate() error {
	var err error
	if c.Dialect != format.HTML && c.Dialect != format.Markdown {
		err = multierr.Append(err, fmt.Errorf("%w: %v", format.ErrUnknownDialect, c.Dialect))
	}
	if c.Display != Semantic && c.Display != Presentational {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrInvalidDisplay, int(c.Display)))
	}
	if c.MaxLength < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrInvalidMaxLength, c.MaxLength))
	}
	return err
}

// fileConfig is the YAML representation of Config.
type fileConfig struct {
	Dialect   string   `yaml:"dialect"`
	Enabled   []string `yaml:"enabled"`
	Display   string   `yaml:"display"`
	MaxLength int      `yaml:"max_length"`
}

// LoadConfig reads a configuration in YAML format:
//
//	dialect: markdown
//	enabled: [bold, italic, strikethrough]
//	display: semantic
//	max_length: 280
//
// Missing keys take their default values. All invalid entries are reported
// together.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	var fc fileConfig
	if err := yaml.NewDecoder(r).Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("unable to decode configuration: %w", err)
	}
	var err error
	if fc.Dialect != "" {
		d, e := format.ParseDialect(fc.Dialect)
		err = multierr.Append(err, e)
		config.Dialect = d
	}
	if len(fc.Enabled) > 0 {
		s, e := format.ParseSet(fc.Enabled)
		err = multierr.Append(err, e)
		config.Enabled = s
	}
	d, e := ParseDisplay(fc.Display)
	err = multierr.Append(err, e)
	config.Display = d
	config.MaxLength = fc.MaxLength
	if e := config.Validate(); e != nil {
		err = multierr.Append(err, e)
	}
	if err != nil {
		return DefaultConfig(), err
	}
	return config.withDefaults(), nil
}

// Dump returns c in the YAML format read by LoadConfig.
func Dump(c Config) ([]byte, error) {
	fc := fileConfig{
		Dialect:   c.Dialect.String(),
		Display:   c.Display.String(),
		MaxLength: c.MaxLength,
	}
	for _, k := range c.Enabled.Kinds() {
		fc.Enabled = append(fc.Enabled, k.String())
	}
	return yaml.Marshal(&fc)
}
