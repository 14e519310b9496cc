// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Command usdaiexport exports the materials of a scene document to usda.
//
// Usage:
//
//	usdaiexport [options] <scene.yaml>
//
// Examples:
//
//	usdaiexport scene.yaml                       # Export to stdout
//	usdaiexport -o scene.usda scene.yaml         # Export to file
//	usdaiexport -report report.yaml scene.yaml   # Also write diagnostics
//	usdaiexport -statements - scene.yaml         # Print host statements
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	usdai "github.com/PaulDoessel/usd-arnold"
	"github.com/PaulDoessel/usd-arnold/export"
	"github.com/PaulDoessel/usd-arnold/internal/config"
	"github.com/PaulDoessel/usd-arnold/internal/logger"
)

var (
	output     = flag.String("o", "", "output file (default: stdout)")
	configPath = flag.String("config", "", "TOML configuration file")
	reportPath = flag.String("report", "", "write the export report as YAML to this file")
	statements = flag.String("statements", "", "write host statements groups to this file (- for stdout)")
	version    = flag.Bool("version", false, "print version")
)

const usdaiVersion = "0.1.0-dev"

// report is the YAML document written by -report.
type report struct {
	Materials   []usdai.Material `yaml:"materials"`
	Bindings    []export.Binding `yaml:"bindings"`
	Diagnostics export.Report    `yaml:"diagnostics"`
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("usdaiexport version %s\n", usdaiVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	if err := run(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath string) error {
	// A missing .env is normal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Close()

	scope, err := cfg.Export.Scope()
	if err != nil {
		return err
	}
	opts := &export.Options{
		MaterialScope:    scope,
		ExportableParams: cfg.Export.Params,
		Logger:           &log.Logger,
	}

	res, err := usdai.ExportFile(inputPath, opts)
	if err != nil {
		return err
	}
	log.Info().
		Str("input", inputPath).
		Int("materials", len(res.Materials)).
		Int("bindings", len(res.Bindings)).
		Int("diagnostics", res.Report.Len()).
		Msg("export finished")

	if err := writeOutput(*output, func(w io.Writer) error {
		_, err := res.WriteTo(w)
		return err
	}); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if *reportPath != "" {
		if err := writeReport(*reportPath, res); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if *statements != "" {
		path := *statements
		if path == "-" {
			path = ""
		}
		if err := writeOutput(path, func(w io.Writer) error {
			return writeStatements(w, res)
		}); err != nil {
			return fmt.Errorf("writing statements: %w", err)
		}
	}

	if *output != "" {
		fmt.Fprintf(os.Stderr, "Successfully exported %s to %s (%d materials)\n", inputPath, *output, len(res.Materials))
	}
	return nil
}

// writeOutput runs write against the file at path, or stdout when path
// is empty.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeReport(path string, res *usdai.Result) error {
	return writeOutput(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report{
			Materials:   res.Materials,
			Bindings:    res.Bindings,
			Diagnostics: res.Report,
		}); err != nil {
			return err
		}
		return enc.Close()
	})
}

func writeStatements(w io.Writer, res *usdai.Result) error {
	var sb strings.Builder
	for _, s := range usdai.CollectStatements(res.Stage) {
		fmt.Fprintf(&sb, "# %s\n", s.Path)
		sb.WriteString(s.Group.String())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: usdaiexport [options] <scene.yaml>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  %s_LOG_LEVEL, %s_EXPORT_MATERIAL_SCOPE, %s_EXPORT_PARAMS override the configuration.\n",
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  usdaiexport scene.yaml                    Export to stdout\n")
	fmt.Fprintf(os.Stderr, "  usdaiexport -o scene.usda scene.yaml      Export to file\n")
	fmt.Fprintf(os.Stderr, "  usdaiexport -statements - scene.yaml      Print host statements\n")
}
