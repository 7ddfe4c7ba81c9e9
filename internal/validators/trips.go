package validators

import (
	"github.com/transitdata/gtfs-validator/internal/feed"
	"github.com/transitdata/gtfs-validator/internal/notice"
	"github.com/transitdata/gtfs-validator/internal/validator"
)

func init() {
	validator.Register(validator.Descriptor{
		Name: "trip_direction_range", Kind: validator.SingleFile, File: "trips.txt",
		Run: checkTripDirectionRange,
	})
}

// checkTripDirectionRange re-validates direction_id against its enum range
// over the loaded table, as a single-file post-load pass. The route_id
// foreign key needs routes.txt too and is checked by the cross-file
// trip_route_usage validator; shape_id is not checked against shapes.txt.
func checkTripDirectionRange(f *feed.Feed, notices *notice.Container) {
	table := f.Get("trips.txt")
	for _, row := range table.Rows {
		v, ok := row.Get("direction_id").(int)
		if ok && v != 0 && v != 1 {
			notices.AddValidationNotice(notice.New(notice.CodeUnexpectedEnumValue, notice.SeverityError, "trips.txt", row.Number, "direction_id",
				map[string]any{"value": v}))
		}
	}
}
