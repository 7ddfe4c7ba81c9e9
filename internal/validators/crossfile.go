package validators

import (
	"github.com/transitdata/gtfs-validator/internal/feed"
	"github.com/transitdata/gtfs-validator/internal/notice"
	"github.com/transitdata/gtfs-validator/internal/validator"
)

func init() {
	validator.Register(validator.Descriptor{Name: "trip_route_usage", Kind: validator.CrossFile, Run: checkTripRouteUsage})
	validator.Register(validator.Descriptor{Name: "stop_time_usage", Kind: validator.CrossFile, Run: checkStopTimeUsage})
	validator.Register(validator.Descriptor{Name: "agency_consistency", Kind: validator.CrossFile, Run: checkAgencyConsistency})
}

// checkTripRouteUsage ensures every trips.txt row's route_id exists in
// routes.txt, one of the two foreign keys spec.md §4.13 names explicitly.
func checkTripRouteUsage(f *feed.Feed, notices *notice.Container) {
	routes := f.Get("routes.txt")
	trips := f.Get("trips.txt")
	for _, row := range trips.Rows {
		routeID, ok := row.GetString("route_id")
		if !ok {
			continue
		}
		if !routes.HasPrimaryKey(routeID) {
			notices.AddValidationNotice(notice.New(notice.CodeForeignKeyViolation, notice.SeverityError, "trips.txt", row.Number, "route_id",
				map[string]any{"value": routeID, "referencedFile": "routes.txt"}))
		}
	}
}

// checkStopTimeUsage ensures every stop_times.txt row's trip_id/stop_id
// exist in trips.txt/stops.txt, and that stop_sequence is strictly
// increasing within each trip. Grounded on the teacher's stop_times.txt
// sort-by-sequence logic in gtfs/loader.go's consumeCSV case, generalized
// from "sort for output" to "validate monotonicity" per spec.md §4.13.
func checkStopTimeUsage(f *feed.Feed, notices *notice.Container) {
	stops := f.Get("stops.txt")
	trips := f.Get("trips.txt")
	stopTimes := f.Get("stop_times.txt")

	lastSequenceByTrip := make(map[string]int)
	seenByTrip := make(map[string]bool)

	for _, row := range stopTimes.Rows {
		tripID, hasTrip := row.GetString("trip_id")
		stopID, hasStop := row.GetString("stop_id")

		if hasTrip && !trips.HasPrimaryKey(tripID) {
			notices.AddValidationNotice(notice.New(notice.CodeForeignKeyViolation, notice.SeverityError, "stop_times.txt", row.Number, "trip_id",
				map[string]any{"value": tripID, "referencedFile": "trips.txt"}))
		}
		if hasStop && !stops.HasPrimaryKey(stopID) {
			notices.AddValidationNotice(notice.New(notice.CodeForeignKeyViolation, notice.SeverityError, "stop_times.txt", row.Number, "stop_id",
				map[string]any{"value": stopID, "referencedFile": "stops.txt"}))
		}

		if !hasTrip {
			continue
		}
		sequence, ok := row.Get("stop_sequence").(int)
		if !ok {
			continue
		}
		if seenByTrip[tripID] && sequence <= lastSequenceByTrip[tripID] {
			notices.AddValidationNotice(notice.New(notice.CodeStopTimeSequenceOutOfOrder, notice.SeverityError, "stop_times.txt", row.Number, "stop_sequence",
				map[string]any{"tripId": tripID, "value": sequence}))
		}
		lastSequenceByTrip[tripID] = sequence
		seenByTrip[tripID] = true
	}
}

// checkAgencyConsistency enforces GTFS's documented conditional-required
// rule: routes.txt must set agency_id on every row once agency.txt carries
// more than one agency.
func checkAgencyConsistency(f *feed.Feed, notices *notice.Container) {
	agency := f.Get("agency.txt")
	if len(agency.Rows) <= 1 {
		return
	}
	routes := f.Get("routes.txt")
	for _, row := range routes.Rows {
		if _, ok := row.GetString("agency_id"); !ok {
			notices.AddValidationNotice(notice.New(notice.CodeMissingAgencyID, notice.SeverityError, "routes.txt", row.Number, "agency_id", nil))
		}
	}
}
