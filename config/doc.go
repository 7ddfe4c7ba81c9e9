// Package config handles application configuration loading and validation
// for the GTFS validator: an optional YAML file overridden by command-line
// flags, validated with struct tags before the pipeline ever opens a feed.
package config
