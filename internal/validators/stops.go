package validators

import (
	"github.com/transitdata/gtfs-validator/internal/feed"
	"github.com/transitdata/gtfs-validator/internal/notice"
	"github.com/transitdata/gtfs-validator/internal/validator"
)

func init() {
	validator.Register(validator.Descriptor{
		Name: "stop_location_detail", Kind: validator.SingleFile, File: "stops.txt",
		Run: checkStopLocationDetail,
	})
}

// locationTypeStop and locationTypeStation are the two location_type
// values (GTFS stops.txt) that must carry their own name and coordinates
// rather than inheriting them from a parent_station.
const (
	locationTypeStop    = 0
	locationTypeStation = 1
)

// checkStopLocationDetail re-checks stop_name/stop_lat/stop_lon presence
// for STOP and STATION rows over the already-loaded table, demonstrating a
// row-level validator that runs after the accessor-level checks in the row
// parser (spec.md §4.13): stop_lat/stop_lon are declared
// conditionally-required in the schema, so the parser never flags a missing
// cell on its own; this validator resolves the condition.
func checkStopLocationDetail(f *feed.Feed, notices *notice.Container) {
	table := f.Get("stops.txt")
	for _, row := range table.Rows {
		locationType, hasType := row.Get("location_type").(int)
		if hasType && locationType != locationTypeStop && locationType != locationTypeStation {
			continue
		}
		if _, ok := row.GetString("stop_name"); !ok {
			notices.AddValidationNotice(notice.New(notice.CodeMissingRequiredField, notice.SeverityError, "stops.txt", row.Number, "stop_name", nil))
		}
		if _, ok := row.Get("stop_lat").(float64); !ok {
			notices.AddValidationNotice(notice.New(notice.CodeMissingRequiredField, notice.SeverityError, "stops.txt", row.Number, "stop_lat", nil))
		}
		if _, ok := row.Get("stop_lon").(float64); !ok {
			notices.AddValidationNotice(notice.New(notice.CodeMissingRequiredField, notice.SeverityError, "stops.txt", row.Number, "stop_lon", nil))
		}
	}
}
