package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults mirror spec.md §6: num_threads falls back to hardware
// concurrency, report names are fixed, country_code defaults to the
// "unknown" sentinel (the empty string; see rowparser.Unknown).
const (
	DefaultValidationReportName   = "report.json"
	DefaultSystemErrorsReportName = "system_errors.json"
	DefaultHTMLReportName         = "report.html"
)

// yamlConfig mirrors Config but every field is optional, since a YAML file
// may only override a subset and flags fill in the rest.
type yamlConfig struct {
	Gtfs                   string `yaml:"gtfs"`
	OutputBase             string `yaml:"output_base"`
	NumThreads             int    `yaml:"num_threads"`
	CountryCode            string `yaml:"country_code"`
	ValidationReportName   string `yaml:"validation_report_name"`
	SystemErrorsReportName string `yaml:"system_errors_report_name"`
	HtmlReportName         string `yaml:"html_report_name"`
}

// Load reads an optional YAML config file from yamlPath only (no other
// locations are probed; an empty yamlPath skips the file), then applies flag
// overrides already parsed into flags, and fills in defaults for anything
// still unset. The result is validated with struct tags; a failure here is
// a fatal host error since an unusable config cannot even attempt a run.
func Load(yamlPath string, flags Flags) (Config, error) {
	var y yamlConfig
	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", yamlPath, err)
		}
		if err := yaml.Unmarshal(data, &y); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", yamlPath, err)
		}
	}

	cfg := Config{
		Gtfs:                   firstNonEmpty(flags.Gtfs, y.Gtfs),
		OutputBase:             firstNonEmpty(flags.OutputBase, y.OutputBase),
		NumThreads:             firstPositive(flags.NumThreads, y.NumThreads),
		CountryCode:            firstNonEmpty(flags.CountryCode, y.CountryCode),
		ValidationReportName:   firstNonEmpty(flags.ValidationReportName, y.ValidationReportName, DefaultValidationReportName),
		SystemErrorsReportName: firstNonEmpty(flags.SystemErrorsReportName, y.SystemErrorsReportName, DefaultSystemErrorsReportName),
		HtmlReportName:         firstNonEmpty(flags.HtmlReportName, y.HtmlReportName, DefaultHTMLReportName),
	}
	if cfg.NumThreads == 0 {
		cfg.NumThreads = runtime.NumCPU()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// Flags holds the command-line flag values the CLI layer parsed, kept
// separate from Config so callers don't need the flag package to build one.
type Flags struct {
	Gtfs                   string
	OutputBase             string
	NumThreads             int
	CountryCode            string
	ValidationReportName   string
	SystemErrorsReportName string
	HtmlReportName         string
}

// RegisterFlags wires fs to a Flags value matching spec.md §6's option
// table; call fs.Parse afterward and pass the Flags to Load.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Gtfs, "gtfs", "", "path or URL to the GTFS feed")
	fs.StringVar(&f.OutputBase, "output_base", "", "directory for validation reports")
	fs.IntVar(&f.NumThreads, "num_threads", 0, "worker-pool size (default: hardware concurrency)")
	fs.StringVar(&f.CountryCode, "country_code", "", "ISO 3166 country code for phone validation")
	fs.StringVar(&f.ValidationReportName, "validation_report_name", "", "file name for the validation report")
	fs.StringVar(&f.SystemErrorsReportName, "system_errors_report_name", "", "file name for the system errors report")
	fs.StringVar(&f.HtmlReportName, "html_report_name", "", "file name for the HTML report")
	return f
}
