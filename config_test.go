package fmtoggle

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	yml := `
dialect: markdown
enabled: [bold, italic, strikethrough]
display: presentational
max_length: 280
`
	config, err := LoadConfig(strings.NewReader(yml))
	if err != nil {
		t.Fatal(err)
	}
	if config.Dialect != format.Markdown || config.Display != Presentational || config.MaxLength != 280 {
		t.Errorf("unexpected config %+v", config)
	}
	if config.Enabled != format.SetOf(format.Bold, format.Italic, format.Strikethrough) {
		t.Errorf("unexpected enabled formats %v", config.Enabled)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	config, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if config != DefaultConfig() {
		t.Errorf("expected default config, have %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	yml := `
dialect: rtf
enabled: [bold, blink]
display: fancy
max_length: -3
`
	_, err := LoadConfig(strings.NewReader(yml))
	if err == nil {
		t.Fatalf("expected errors")
	}
	errs := multierr.Errors(err)
	if len(errs) != 4 {
		t.Errorf("expected 4 errors, have %d: %v", len(errs), err)
	}
	if !errors.Is(err, format.ErrUnknownFormat) || !errors.Is(err, ErrInvalidDisplay) {
		t.Errorf("expected errors to wrap the error constants, have %v", err)
	}
	if _, err := LoadConfig(strings.NewReader("dialect: [")); err == nil {
		t.Errorf("expected YAML syntax error")
	}
}

func TestDumpConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fmtoggle")
	defer teardown()
	//
	c := Config{
		Dialect:   format.Markdown,
		Enabled:   format.SetOf(format.Overline, format.Subscript),
		Display:   Presentational,
		MaxLength: 42,
	}
	data, err := Dump(c)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("config:\n%s", data)
	loaded, err := LoadConfig(strings.NewReader(string(data)))
	if err != nil {
		t.Fatal(err)
	}
	if loaded != c {
		t.Errorf("expected %+v, have %+v", c, loaded)
	}
}
