package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/npillmayer/fmtoggle"
	"github.com/npillmayer/fmtoggle/format"
	"github.com/npillmayer/fmtoggle/sanitize"
	"github.com/npillmayer/fmtoggle/splice"
	"github.com/npillmayer/fmtoggle/styled/formatter"
	"github.com/npillmayer/uax/uax11"
)

// input returns the command's arguments as text, or stdin if there are none.
func input(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return strings.Join(cmd.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func dialect(cmd *cli.Command, e *env) (format.Dialect, error) {
	name := cmd.String("dialect")
	if name == "" {
		return e.config.Dialect, nil
	}
	return format.ParseDialect(name)
}

func formats(cmd *cli.Command) (format.Set, error) {
	var names []string
	for _, n := range cmd.StringSlice("format") {
		names = append(names, strings.Split(n, ",")...)
	}
	return format.ParseSet(names)
}

// prepare collects what all subcommands working on a fragment need.
func prepare(ctx context.Context, cmd *cli.Command) (*env, string, format.Dialect, error) {
	e := envFromContext(ctx)
	d, err := dialect(cmd, e)
	if err != nil {
		return e, "", d, err
	}
	text, err := input(cmd)
	return e, text, d, err
}

func runApply(ctx context.Context, cmd *cli.Command) error {
	e, text, d, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}
	set, err := formats(cmd)
	if err != nil {
		return err
	}
	out := e.engine.ApplyFormatting(text, set, d)
	e.log.Debug("Formats applied", zap.Stringer("formats", set), zap.Stringer("dialect", d))
	if !e.engine.WithinLimit(out, d) {
		e.log.Warn("Text exceeds maximum length",
			zap.Int("length", e.engine.VisibleLength(out, d)), zap.Int("max", e.config.MaxLength))
	}
	fmt.Println(out)
	return nil
}

func runDisplay(ctx context.Context, cmd *cli.Command) error {
	e, text, d, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}
	fmt.Println(e.engine.ToDisplayForm(text, d))
	return nil
}

func runStrip(ctx context.Context, cmd *cli.Command) error {
	e, text, d, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}
	fmt.Println(e.engine.StripToPlain(text, d))
	return nil
}

func runActive(ctx context.Context, cmd *cli.Command) error {
	e, text, d, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}
	fmt.Println(e.engine.ActiveFormats(text, d))
	return nil
}

// textBuffer is a buffer without a widget: it accepts text and caret at once.
type textBuffer struct {
	text  string
	caret int
}

func (b *textBuffer) Text() string     { return b.text }
func (b *textBuffer) SetText(s string) { b.text = s }
func (b *textBuffer) SetCaret(pos int) { b.caret = pos }

func runSplice(ctx context.Context, cmd *cli.Command) error {
	e, text, d, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}
	set, err := formats(cmd)
	if err != nil {
		return err
	}
	buf := &textBuffer{text: text}
	s := splice.New(buf, e.engine, d)
	r := splice.Range{Start: int(cmd.Int("from")), End: int(cmd.Int("to"))}
	res, err := s.Apply(r, set)
	if err != nil {
		return err
	}
	s.Settle()
	if res.Clamped {
		e.log.Warn("Selection out of range, clamped", zap.Int("from", r.Start), zap.Int("to", r.End))
	}
	if r.IsEmpty() {
		e.log.Info("Empty selection, formats armed for next input", zap.Stringer("armed", s.Armed()))
	}
	fmt.Println(buf.text)
	fmt.Printf("caret: %d\n", buf.caret)
	return nil
}

func runPrint(ctx context.Context, cmd *cli.Command) error {
	_, text, d, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}
	config := formatter.ConfigFromTerminal(int(os.Stdout.Fd()))
	config.Context = uax11.ContextFromEnvironment()
	if w := int(cmd.Int("width")); w > 0 {
		config.LineWidth = w
	}
	return formatter.NewConsole(config, nil).Print(sanitize.Parse(text, d), os.Stdout)
}

func runDumpConfig(ctx context.Context, _ *cli.Command) error {
	data, err := fmtoggle.Dump(envFromContext(ctx).config)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
