// Command gtfs-validator validates a GTFS Schedule feed and writes
// report.json, system_errors.json and report.html describing its
// conformance. Grounded on the teacher's cmd/gtfsrt-to-siri/main.go (flag
// parsing, InitLogging, LoadAppConfig, panic-on-fatal-error) and
// bartekus-cortex's root-command wiring, adapted from "fetch and convert
// one GTFS-RT feed" to "load, validate and report one GTFS Schedule feed".
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/transitdata/gtfs-validator/config"
	"github.com/transitdata/gtfs-validator/internal/feedsource"
	"github.com/transitdata/gtfs-validator/internal/loader"
	"github.com/transitdata/gtfs-validator/internal/logging"
	"github.com/transitdata/gtfs-validator/internal/report"
	"github.com/transitdata/gtfs-validator/internal/rowparser"
	"github.com/transitdata/gtfs-validator/internal/schema"
	"github.com/transitdata/gtfs-validator/internal/scheduler"

	// Registers the built-in single-file and cross-file validators via
	// their package init() functions.
	_ "github.com/transitdata/gtfs-validator/internal/validators"
)

func main() {
	fs := flag.NewFlagSet("gtfs-validator", flag.ExitOnError)
	yamlPath := fs.String("config", "", "optional YAML config file, overridden by any flag below")
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("gtfs-validator: %v", err)
	}

	logging.Init()

	cfg, err := config.Load(*yamlPath, *flags)
	if err != nil {
		log.Fatalf("gtfs-validator: %v", err)
	}

	os.Exit(run(cfg))
}

// run executes one full validation pipeline and returns the process exit
// code, kept separate from main so it's callable without os.Exit side
// effects if this command ever grows a test entrypoint.
func run(cfg config.Config) int {
	ctx := context.Background()

	source, err := feedsource.Detect(ctx, cfg.Gtfs)
	if err != nil {
		log.Fatalf("gtfs-validator: cannot open feed %s: %v", cfg.Gtfs, err)
	}
	defer source.Close()

	feed, loadNotices := loader.LoadFeed(source, schema.Default(), cfg.NumThreads, rowparser.CountryCode(cfg.CountryCode))
	result := scheduler.Run(feed, cfg.NumThreads)
	result.Merge(loadNotices)

	validation := report.BuildValidationReport(result)
	systemErrors := report.BuildSystemErrorsReport(result)

	if err := report.WriteJSON(filepath.Join(cfg.OutputBase, cfg.ValidationReportName), validation); err != nil {
		log.Fatalf("gtfs-validator: %v", err)
	}
	if err := report.WriteJSON(filepath.Join(cfg.OutputBase, cfg.SystemErrorsReportName), systemErrors); err != nil {
		log.Fatalf("gtfs-validator: %v", err)
	}
	if err := report.WriteHTML(filepath.Join(cfg.OutputBase, cfg.HtmlReportName), validation, systemErrors); err != nil {
		log.Fatalf("gtfs-validator: %v", err)
	}

	return report.ExitCode(validation, systemErrors)
}
