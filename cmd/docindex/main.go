package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/goquery"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by "process -". Set before calling Run().
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docindex"),
		kong.Description("Extract indexable text records from rendered HTML documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docindex --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    m.Stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Preset:   cli.Preset,
		Detector: docslog.NewLoggingDetector(goquery.NewDetector(), logger),
		Writer:   NewJSONLinesWriter(stdout),
	}
	if cli.Format == "text" {
		deps.Writer = NewTextWriter(stdout)
	}

	if cli.Config != "" {
		cfg, err := yaml.ReadConfigFile(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCINDEX_CONFIG or --config to a YAML file\n")
			return fmt.Errorf("failed to load config %q: %w", cli.Config, err)
		}
		deps.Config = cfg
	}

	return kongCtx.Run(deps)
}

// NewProcessor builds the processor for a run. A preset fills the settings
// the configuration leaves unset; "auto" picks the preset by detecting the
// framework of the sample page.
func (d *Dependencies) NewProcessor(sample func() (string, error)) (docindex.Processor, error) {
	cfg := d.Config

	if d.Preset != "" {
		framework := docindex.Framework(d.Preset)
		if d.Preset == PresetAuto {
			html, err := sample()
			if err != nil {
				return nil, err
			}
			framework = d.Detector.Detect(html)
		}
		if framework != docindex.FrameworkUnknown {
			preset, err := docindex.Preset(framework)
			if err != nil {
				return nil, err
			}
			cfg = cfg.Merge(preset)
		}
	}

	p, err := goquery.NewProcessor(cfg)
	if err != nil {
		return nil, err
	}
	return docslog.NewLoggingProcessor(p, d.Logger), nil
}
