package config

// Config is the fully resolved, validated configuration for one validation
// run, assembled from an optional YAML file and command-line flag overrides
// per spec.md §6's configuration options table.
type Config struct {
	Gtfs                   string `yaml:"gtfs" validate:"required"`
	OutputBase             string `yaml:"output_base" validate:"required"`
	NumThreads             int    `yaml:"num_threads" validate:"gte=0"`
	CountryCode            string `yaml:"country_code"`
	ValidationReportName   string `yaml:"validation_report_name" validate:"required"`
	SystemErrorsReportName string `yaml:"system_errors_report_name" validate:"required"`
	HtmlReportName         string `yaml:"html_report_name" validate:"required"`
}
