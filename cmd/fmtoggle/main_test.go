package main

import (
	"context"
	"testing"

	cli "github.com/urfave/cli/v3"

	"github.com/npillmayer/fmtoggle/format"
)

func TestFormatFlags(t *testing.T) {
	var set format.Set
	cmd := &cli.Command{
		Name:  "apply",
		Flags: []cli.Flag{&cli.StringSliceFlag{Name: "format"}},
		Action: func(_ context.Context, cmd *cli.Command) (err error) {
			set, err = formats(cmd)
			return
		},
	}
	err := cmd.Run(context.Background(), []string{"apply", "--format", "bold,italic", "--format", "overline"})
	if err != nil {
		t.Fatal(err)
	}
	if set != format.SetOf(format.Bold, format.Italic, format.Overline) {
		t.Errorf("unexpected formats %v", set)
	}
	err = cmd.Run(context.Background(), []string{"apply", "--format", "blink"})
	if err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestSpliceBuffer(t *testing.T) {
	b := &textBuffer{text: "abc"}
	b.SetText("<b>abc</b>")
	b.SetCaret(10)
	if b.Text() != "<b>abc</b>" || b.caret != 10 {
		t.Errorf("unexpected buffer state %+v", b)
	}
}
