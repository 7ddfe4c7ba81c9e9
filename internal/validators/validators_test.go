package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transitdata/gtfs-validator/internal/feed"
	"github.com/transitdata/gtfs-validator/internal/notice"
)

func hasCode(notices *notice.Container, code string) bool {
	for _, g := range notices.Export() {
		if g.Code == code {
			return true
		}
	}
	return false
}

func TestCheckStopLocationDetail_MissingCoordinatesOnStop(t *testing.T) {
	f := feed.New()
	table := feed.NewTable("stops.txt")
	table.Append(feed.Row{Number: 2, Values: map[string]any{"stop_id": "S1", "location_type": 0}})
	f.Put(table)

	notices := notice.NewContainer()
	checkStopLocationDetail(f, notices)
	assert.True(t, hasCode(notices, notice.CodeMissingRequiredField))
}

func TestCheckStopLocationDetail_EntranceInheritsFromParent(t *testing.T) {
	f := feed.New()
	table := feed.NewTable("stops.txt")
	table.Append(feed.Row{Number: 2, Values: map[string]any{"stop_id": "E1", "location_type": 2}})
	f.Put(table)

	notices := notice.NewContainer()
	checkStopLocationDetail(f, notices)
	assert.False(t, hasCode(notices, notice.CodeMissingRequiredField))
}

func TestCheckRouteNamePresence(t *testing.T) {
	f := feed.New()
	table := feed.NewTable("routes.txt")
	table.Append(feed.Row{Number: 2, Values: map[string]any{"route_id": "R1"}})
	table.Append(feed.Row{Number: 3, Values: map[string]any{"route_id": "R2", "route_short_name": "42"}})
	f.Put(table)

	notices := notice.NewContainer()
	checkRouteNamePresence(f, notices)
	g := notices.Export()
	assert.Len(t, g, 1)
	assert.EqualValues(t, 1, g[0].TotalNotices)
}

func TestCheckTripRouteUsage_OrphanTrip(t *testing.T) {
	f := feed.New()
	routes := feed.NewTable("routes.txt")
	routes.IndexPrimaryKey("R1", routes.Append(feed.Row{Number: 2, Values: map[string]any{"route_id": "R1"}}))
	trips := feed.NewTable("trips.txt")
	trips.Append(feed.Row{Number: 2, Values: map[string]any{"trip_id": "T1", "route_id": "R404"}})
	f.Put(routes)
	f.Put(trips)

	notices := notice.NewContainer()
	checkTripRouteUsage(f, notices)
	assert.True(t, hasCode(notices, notice.CodeForeignKeyViolation))
}

func TestCheckStopTimeUsage_OutOfOrderSequence(t *testing.T) {
	f := feed.New()
	stops := feed.NewTable("stops.txt")
	stops.IndexPrimaryKey("S1", stops.Append(feed.Row{Number: 2, Values: map[string]any{"stop_id": "S1"}}))
	trips := feed.NewTable("trips.txt")
	trips.IndexPrimaryKey("T1", trips.Append(feed.Row{Number: 2, Values: map[string]any{"trip_id": "T1"}}))
	stopTimes := feed.NewTable("stop_times.txt")
	stopTimes.Append(feed.Row{Number: 2, Values: map[string]any{"trip_id": "T1", "stop_id": "S1", "stop_sequence": 2}})
	stopTimes.Append(feed.Row{Number: 3, Values: map[string]any{"trip_id": "T1", "stop_id": "S1", "stop_sequence": 1}})
	f.Put(stops)
	f.Put(trips)
	f.Put(stopTimes)

	notices := notice.NewContainer()
	checkStopTimeUsage(f, notices)
	assert.True(t, hasCode(notices, notice.CodeStopTimeSequenceOutOfOrder))
}

func TestCheckAgencyConsistency_RequiresAgencyIDWithMultipleAgencies(t *testing.T) {
	f := feed.New()
	agency := feed.NewTable("agency.txt")
	agency.Append(feed.Row{Number: 2, Values: map[string]any{"agency_id": "A1"}})
	agency.Append(feed.Row{Number: 3, Values: map[string]any{"agency_id": "A2"}})
	routes := feed.NewTable("routes.txt")
	routes.Append(feed.Row{Number: 2, Values: map[string]any{"route_id": "R1"}})
	f.Put(agency)
	f.Put(routes)

	notices := notice.NewContainer()
	checkAgencyConsistency(f, notices)
	assert.True(t, hasCode(notices, notice.CodeMissingAgencyID))
}

func TestCheckAgencyConsistency_SingleAgencySkipsCheck(t *testing.T) {
	f := feed.New()
	agency := feed.NewTable("agency.txt")
	agency.Append(feed.Row{Number: 2, Values: map[string]any{"agency_id": "A1"}})
	routes := feed.NewTable("routes.txt")
	routes.Append(feed.Row{Number: 2, Values: map[string]any{"route_id": "R1"}})
	f.Put(agency)
	f.Put(routes)

	notices := notice.NewContainer()
	checkAgencyConsistency(f, notices)
	assert.False(t, hasCode(notices, notice.CodeMissingAgencyID))
}
