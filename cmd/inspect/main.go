// Command inspect pretty-prints JSON documents the way the pretty package
// renders Go values.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/pretty-debug/config"
	"github.com/wippyai/pretty-debug/errors"
	"github.com/wippyai/pretty-debug/jsonvalue"
	"github.com/wippyai/pretty-debug/pretty"
	"github.com/wippyai/pretty-debug/sink"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(sink.Std()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type options struct {
	width       int
	configPath  string
	logLevel    string
	lines       bool
	watch       bool
	interactive bool
}

func newRootCmd(streams *sink.Streams) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Pretty-print JSON documents as debug values",
		Long: `inspect decodes JSON and prints it with the width-aware value printer.

Objects print as dict.from_list([...]) in member order, arrays as lists, and
objects with a string "$tag" member as tagged records.

Examples:
  # Print a file at the terminal width
  inspect data.json

  # Read newline-delimited documents from stdin at 40 columns
  cat events.jsonl | inspect --lines -w 40 -

  # Re-render whenever the file changes
  inspect --watch data.json

  # Browse documents and try different widths
  inspect -i --lines events.jsonl`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			err := run(cmd, streams, opts, path)
			if err != nil {
				fmt.Fprintf(streams.Stderr, "Error: %v\n", err)
			}
			return err
		},
	}

	cmd.SetOut(streams.Stdout)
	cmd.SetErr(streams.Stderr)

	flags := cmd.Flags()
	flags.IntVarP(&opts.width, "width", "w", 0, "break length in columns (default: terminal width or 80)")
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.lines, "lines", false, "treat each non-blank input line as a document")
	flags.BoolVar(&opts.watch, "watch", false, "re-render when the input file changes")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "browse documents in a terminal UI")

	return cmd
}

func run(cmd *cobra.Command, streams *sink.Streams, opts options, path string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, streams.Stderr)
	defer func() { _ = logger.Sync() }()
	pretty.SetLogger(logger.Named("pretty"))

	if opts.watch && path == "-" {
		return errors.InvalidInput(errors.PhaseCLI, "--watch needs a file argument")
	}
	if opts.watch && opts.interactive {
		return errors.InvalidInput(errors.PhaseCLI, "--watch and --interactive cannot be combined")
	}

	load := func() ([]any, error) {
		data, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return nil, err
		}
		return decode(data, cfg.Lines)
	}

	docs, err := load()
	if err != nil {
		return err
	}
	logger.Debug("decoded input", zap.String("path", path), zap.Int("documents", len(docs)))

	switch {
	case opts.interactive:
		streams.Suppress()
		defer streams.Restore()
		return runInteractive(docs, path, cfg.BreakLength)
	case opts.watch:
		if err := printDocuments(streams.Stdout, docs, cfg.BreakLength); err != nil {
			return err
		}
		return watchFile(cmd.Context(), path, logger, func() error {
			docs, err := load()
			if err != nil {
				// keep watching; the file may be mid-write
				fmt.Fprintf(streams.Stderr, "Error: %v\n", err)
				return nil
			}
			fmt.Fprintln(streams.Stdout)
			return printDocuments(streams.Stdout, docs, cfg.BreakLength)
		})
	default:
		return printDocuments(streams.Stdout, docs, cfg.BreakLength)
	}
}

// loadConfig reads the config file and environment, then applies flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.BreakLength = opts.width
	}
	if flags.Changed("lines") {
		cfg.Lines = opts.lines
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w zapcore.WriteSyncer) *zap.Logger {
	var enc zapcore.Encoder
	if cfg.Log.Format == "json" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.Lock(w), cfg.ZapLevel())
	return zap.New(core)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.IO(errors.PhaseCLI, "read stdin", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.PhaseCLI, "input file", path)
		}
		return nil, errors.IO(errors.PhaseCLI, "read "+path, err)
	}
	return data, nil
}

func decode(data []byte, lines bool) ([]any, error) {
	if lines {
		return jsonvalue.DecodeLines(data)
	}
	doc, err := jsonvalue.Decode(data)
	if err != nil {
		return nil, err
	}
	return []any{doc}, nil
}

// printDocuments writes one rendering per document. A zero width uses the
// terminal width.
func printDocuments(w io.Writer, docs []any, width int) error {
	for _, doc := range docs {
		if _, err := fmt.Fprintln(w, render(doc, width)); err != nil {
			return errors.IO(errors.PhaseRender, "write output", err)
		}
	}
	return nil
}

func render(doc any, width int) string {
	if width > 0 {
		return pretty.Inspect(doc, pretty.WithBreakLength(width))
	}
	return pretty.Inspect(doc)
}
