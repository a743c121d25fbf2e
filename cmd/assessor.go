package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	cattlelca "github.com/pasturelab/cattle-lca"

	"github.com/pasturelab/cattle-lca/internal/demo"
	"github.com/pasturelab/cattle-lca/internal/factordata"
	"github.com/pasturelab/cattle-lca/internal/scenario"
	"github.com/pasturelab/cattle-lca/model/tier2"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx := context.Background()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])

		flag.PrintDefaults()

		fmt.Fprint(os.Stderr, "\nFactor sets are bundled for:\n")
		for _, country := range factordata.Countries() {
			fmt.Fprintf(os.Stderr, "  %s\n", country)
		}
	}

	flagScenario := ""
	flagDemoEnabled := ""
	flagFormat := ""
	flagConcurrency := 0
	flagLogLevel := ""
	flagLogFormat := ""

	flag.StringVar(&flagScenario, "scenario", "", "path to an hjson scenario file")
	flag.StringVar(&flagDemoEnabled, "demo.enabled", "false", "assess the bundled demo herd, the 2018 irish national herd")
	flag.StringVar(&flagFormat, "format", "json", "report format (json, csv)")
	flag.IntVar(&flagConcurrency, "concurrency", 5, "farms assessed in parallel")
	flag.StringVar(&flagLogLevel, "log.level", "info", "log severity (debug, info, warn, error)")
	flag.StringVar(&flagLogFormat, "log.format", "text", "log format (text, json)")

	flag.Parse()

	initLogging(flagLogLevel, flagLogFormat)

	scenarios := loadScenarios(flagScenario, flagDemoEnabled)

	slog.Info("assessing farm scenarios", "farms", len(scenarios), "concurrency", flagConcurrency)

	reports, err := tier2.AssessBatch(ctx, newProvider, scenarios, flagConcurrency)
	if err != nil {
		slog.Error("failed to assess farm scenarios", "err", err)
		os.Exit(1)
	}

	if err := writeReports(reports, flagFormat); err != nil {
		slog.Error("failed to write reports", "format", flagFormat, "err", err)
		os.Exit(1)
	}
}

func newProvider(country string) (cattlelca.CoefficientProvider, error) {
	return factordata.NewProvider(country)
}

func loadScenarios(path string, demoEnabled string) []cattlelca.Scenario {
	if demoEnabled == "true" {
		return []cattlelca.Scenario{demo.Scenario()}
	}

	if path == "" {
		slog.Error("scenario file is not set")
		flag.PrintDefaults()
		os.Exit(1)
	}

	scenarios, err := scenario.Load(path)
	if err != nil {
		slog.Error("failed to load scenario file", "err", err)
		os.Exit(1)
	}

	return scenarios
}

// writeReports renders the reports on stdout. Logs go to stderr so the
// rendered output stays machine readable.
func writeReports(reports []*cattlelca.EmissionsReport, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	case "csv":
		return cattlelca.WriteCSV(os.Stdout, reports...)
	}

	return fmt.Errorf("unsupported report format: %s", format)
}

func initLogging(logLevel string, logFormat string) {
	switch logFormat {
	case "text":
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:   slogLevel(logLevel),
			NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
		})))
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel(logLevel),
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.LevelKey:
					a.Key = "severity"
					return a
				case slog.MessageKey:
					a.Key = "message"
					return a
				default:
					return a
				}
			},
		})))
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
