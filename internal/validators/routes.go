package validators

import (
	"github.com/transitdata/gtfs-validator/internal/feed"
	"github.com/transitdata/gtfs-validator/internal/notice"
	"github.com/transitdata/gtfs-validator/internal/validator"
)

func init() {
	validator.Register(validator.Descriptor{
		Name: "route_short_or_long_name", Kind: validator.SingleFile, File: "routes.txt",
		Run: checkRouteNamePresence,
	})
}

// checkRouteNamePresence enforces GTFS's conditionally-required pair:
// every route must set route_short_name, route_long_name, or both.
// Grounded on the original tool's MissingRequiredFieldNotice family,
// generalized here to a two-column conditional rule (spec.md §4.13).
func checkRouteNamePresence(f *feed.Feed, notices *notice.Container) {
	table := f.Get("routes.txt")
	for _, row := range table.Rows {
		_, hasShort := row.GetString("route_short_name")
		_, hasLong := row.GetString("route_long_name")
		if !hasShort && !hasLong {
			notices.AddValidationNotice(notice.New(notice.CodeMissingRouteName, notice.SeverityError, "routes.txt", row.Number, "", nil))
		}
	}
}
