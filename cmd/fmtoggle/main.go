// Command fmtoggle applies inline formats to text fragments from the command
// line. It is a thin shell around package fmtoggle, meant for trying out the
// engine and for scripting.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/npillmayer/fmtoggle"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// env holds what subcommands share; it travels in the context.
type env struct {
	log    *zap.Logger
	config fmtoggle.Config
	engine *fmtoggle.Engine
}

type envKey struct{}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop()}
}

func newLogger(debug bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := envFromContext(ctx)
	e.log = newLogger(cmd.Bool("debug"))
	gtrace.CoreTracer = gologadapter.New()
	if cmd.Bool("debug") {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	e.config = fmtoggle.DefaultConfig()
	if fname := cmd.String("config"); fname != "" {
		f, err := os.Open(fname)
		if err != nil {
			return ctx, fmt.Errorf("unable to open configuration: %w", err)
		}
		defer f.Close()
		if e.config, err = fmtoggle.LoadConfig(f); err != nil {
			return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
		}
		e.log.Debug("Configuration loaded", zap.String("file", fname))
	}
	var err error
	if e.engine, err = fmtoggle.New(e.config); err != nil {
		return ctx, fmt.Errorf("unable to create engine: %w", err)
	}
	e.log.Debug("Program started", zap.Strings("args", os.Args),
		zap.Stringer("dialect", e.config.Dialect), zap.Stringer("enabled", e.config.Enabled))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	e := envFromContext(ctx)
	if e.log == nil {
		return nil
	}
	e.log.Debug("Program ended")
	_ = e.log.Sync() // stderr cannot be synced on most terminals
	return nil
}

var errWasHandled bool

// this is called before the app context is destroyed, so we have a chance to
// properly log any error from a subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	if e := envFromContext(ctx); e.log != nil {
		e.log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.WithValue(context.Background(), envKey{}, &env{}),
		os.Interrupt, syscall.SIGTERM)

	dialectFlag := &cli.StringFlag{Name: "dialect", Aliases: []string{"d"},
		Usage: "markup `DIALECT` of the text (html or markdown), defaults to the configured dialect"}
	formatFlag := &cli.StringSliceFlag{Name: "format", Aliases: []string{"f"},
		Usage: "`FORMAT` to toggle (bold, italic, underline, strikethrough, overline, subscript, superscript), may be repeated"}

	app := &cli.Command{
		Name:            "fmtoggle",
		Usage:           "toggles inline formats on HTML and Markdown fragments",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Usage: "log and trace at debug level"},
		},
		Commands: []*cli.Command{
			{
				Name:      "apply",
				Usage:     "Toggles formats on a fragment",
				Flags:     []cli.Flag{dialectFlag, formatFlag},
				ArgsUsage: "[TEXT]",
				Action:    runApply,
			},
			{
				Name:      "display",
				Usage:     "Converts a fragment to HTML for display",
				Flags:     []cli.Flag{dialectFlag},
				ArgsUsage: "[TEXT]",
				Action:    runDisplay,
			},
			{
				Name:      "strip",
				Usage:     "Removes all markup from a fragment",
				Flags:     []cli.Flag{dialectFlag},
				ArgsUsage: "[TEXT]",
				Action:    runStrip,
			},
			{
				Name:      "active",
				Usage:     "Lists the formats wrapping a whole fragment",
				Flags:     []cli.Flag{dialectFlag},
				ArgsUsage: "[TEXT]",
				Action:    runActive,
			},
			{
				Name:  "splice",
				Usage: "Toggles formats on a selection of a text",
				Flags: []cli.Flag{dialectFlag, formatFlag,
					&cli.IntFlag{Name: "from", Usage: "start of the selection (runes)"},
					&cli.IntFlag{Name: "to", Usage: "end of the selection (runes, exclusive)"},
				},
				ArgsUsage: "[TEXT]",
				Action:    runSplice,
			},
			{
				Name:      "print",
				Usage:     "Prints a fragment styled to the terminal",
				Flags:     []cli.Flag{dialectFlag, &cli.IntFlag{Name: "width", Usage: "line `WIDTH`, defaults to the terminal's"}},
				ArgsUsage: "[TEXT]",
				Action:    runPrint,
			},
			{
				Name:   "dumpconfig",
				Usage:  "Dumps the actual configuration (YAML)",
				Action: runDumpConfig,
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
