package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	peoplexml "github.com/theoremus-urban-solutions/people-xml"
	"github.com/theoremus-urban-solutions/people-xml/config"
	"github.com/theoremus-urban-solutions/people-xml/converter"
	"github.com/theoremus-urban-solutions/people-xml/internal"
	"github.com/theoremus-urban-solutions/people-xml/records"
)

var (
	version = "dev"
	commit  = "unknown"
)

// stdout receives documents written to "-"
var stdout io.Writer = os.Stdout

// Globals are flags shared by every command
type Globals struct {
	Config string `help:"Path to config.yml (default: search config.yml, ./configs/config.yml)." short:"c"`
}

// CLI is the top-level command structure for people2xml.
type CLI struct {
	Globals

	Version  kong.VersionFlag `help:"Show version." short:"V"`
	Convert  ConvertCmd       `cmd:"" help:"Convert a record file to XML."`
	Validate ValidateCmd      `cmd:"" help:"Check a record file without writing output."`
}

// ConvertCmd converts one input into one output document.
type ConvertCmd struct {
	Input  string `help:"Input path, http(s) URL, or - for stdin." short:"i"`
	Output string `help:"Output path, or - for stdout." short:"o"`
	Format string `help:"Output format: xml or jsonl." short:"f"`
	Strict bool   `help:"Reject repeated address or phone lines for the same record."`
}

// ValidateCmd parses and serializes an input without keeping the output.
type ValidateCmd struct {
	Input  string `help:"Input path, http(s) URL, or - for stdin." short:"i"`
	Strict bool   `help:"Reject repeated address or phone lines for the same record."`
}

// Run executes the convert command.
func (c *ConvertCmd) Run(g *Globals) error {
	cfg, log, err := g.setup(func(cfg *config.AppConfig) {
		override(&cfg.Input, c.Input)
		override(&cfg.Output, c.Output)
		override(&cfg.Format, c.Format)
		cfg.Converter.RejectDuplicates = cfg.Converter.RejectDuplicates || c.Strict
	})
	if err != nil {
		return err
	}

	in, err := newFetcher().open(cfg.Input)
	if err != nil {
		return fail(log, err)
	}
	defer func() { _ = in.Close() }()

	opts := peoplexml.Options{Format: cfg.Format, RejectDuplicates: cfg.Converter.RejectDuplicates}
	log.Debug().Str("input", cfg.Input).Str("output", cfg.Output).Str("format", cfg.Format).Msg("Converting")

	var report *converter.Report
	if cfg.Output == "-" {
		report, err = peoplexml.Convert(in, stdout, opts)
	} else {
		report, err = peoplexml.ConvertToFile(in, cfg.Output, opts)
	}
	if err != nil {
		return fail(log, err)
	}

	logReport(log, report)
	log.Info().Str("output", cfg.Output).Msg("Converting finished")
	return nil
}

// Run executes the validate command.
func (c *ValidateCmd) Run(g *Globals) error {
	cfg, log, err := g.setup(func(cfg *config.AppConfig) {
		override(&cfg.Input, c.Input)
		cfg.Converter.RejectDuplicates = cfg.Converter.RejectDuplicates || c.Strict
	})
	if err != nil {
		return err
	}

	in, err := newFetcher().open(cfg.Input)
	if err != nil {
		return fail(log, err)
	}
	defer func() { _ = in.Close() }()

	report, err := peoplexml.Validate(in, peoplexml.Options{RejectDuplicates: cfg.Converter.RejectDuplicates})
	if err != nil {
		return fail(log, err)
	}

	logReport(log, report)
	log.Info().Str("input", cfg.Input).Msg("Input is valid")
	return nil
}

// setup reads the config, applies flag overrides, validates the result
// once and builds the logger
func (g *Globals) setup(apply func(cfg *config.AppConfig)) (config.AppConfig, zerolog.Logger, error) {
	cfg, err := config.Read(g.Config)
	if err != nil {
		log := internal.InitLogging(os.Stderr, "info", "auto")
		return config.AppConfig{}, log, fail(log, err)
	}
	apply(&cfg)

	log := internal.InitLogging(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err := config.Validate(cfg); err != nil {
		return config.AppConfig{}, log, fail(log, err)
	}
	config.Config = cfg
	return cfg, log, nil
}

func override(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}

func logReport(log zerolog.Logger, report *converter.Report) {
	for _, w := range report.Warnings.All() {
		log.Warn().Str("warning", w.Type).Int("count", w.Count).Msg(w.Message())
	}
	log.Info().
		Int("lines", report.Lines).
		Int("persons", report.Persons).
		Int("familyMembers", report.FamilyMembers).
		Int("addresses", report.Addresses).
		Int("phones", report.Phones).
		Msg("Conversion summary")
}

// fail logs err and returns it for the exit code
func fail(log zerolog.Logger, err error) error {
	ev := log.Error().Err(err)
	var rerr *records.Error
	if errors.As(err, &rerr) {
		ev = ev.Str("kind", string(rerr.Kind))
		if rerr.Line > 0 {
			ev = ev.Int("line", rerr.Line)
		}
	}
	ev.Msg("Error during converting")
	return err
}

// exitCode is 1 for rejected input and 2 for everything else
func exitCode(err error) int {
	if records.KindOf(err) != "" {
		return 1
	}
	return 2
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("people2xml"),
		kong.Description("Convert pipe-delimited person records to XML."),
		kong.Vars{"version": fmt.Sprintf("%s (%s)", version, commit)},
	)
	if err := ctx.Run(&cli.Globals); err != nil {
		os.Exit(exitCode(err))
	}
}
