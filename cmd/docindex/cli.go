package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docindex"
)

// PresetAuto selects the selector preset by framework detection.
const PresetAuto = "auto"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   docindex.Config
	Preset   string
	Detector docindex.FrameworkDetector
	Writer   docindex.DocumentWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" type:"path" env:"DOCINDEX_CONFIG" help:"YAML configuration file"`
	Preset  string `short:"P" help:"Selector preset: auto, docusaurus, gitbook, mkdocs, nextra, sphinx, vitepress or vuepress"`
	Format  string `short:"f" enum:"jsonl,text" default:"jsonl" help:"Output format: jsonl or text"`
	Verbose bool   `short:"v" help:"Log every processed page"`

	Process ProcessCmd `cmd:"" help:"Extract documents from a single HTML page"`
	Index   IndexCmd   `cmd:"" help:"Extract documents from every HTML page under a directory"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	File string `arg:"" help:"HTML file, or - to read standard input"`
	Path string `help:"Logical path of the page (default: the file name)"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Dir         string `arg:"" type:"existingdir" help:"Root of the content tree"`
	Concurrency int    `short:"c" default:"4" help:"Pages processed in parallel"`
}
